package main

import (
	"context"
	"dusk-rpg/internal/server"
	"dusk-rpg/internal/version"
	"dusk-rpg/pkg/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve game sessions over WebSocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}

		logger.Log.Info("Starting Dusk server...")
		logger.Log.Info(version.String())

		srv := server.New(cfg, store)
		errCh := make(chan error, 1)
		go func() { errCh <- srv.Run() }()

		// Graceful Shutdown
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-stop:
		}

		logger.Log.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
		logger.Log.Info("Done.")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port (overrides config)")
}
