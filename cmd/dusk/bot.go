package main

import (
	"context"
	"dusk-rpg/internal/agent"
	"dusk-rpg/internal/engine"
	"dusk-rpg/pkg/api"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	botName    string
	botClass   string
	botBattles int
	botLoad    string
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Let the computer play a series of battles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}

		session := engine.NewSession(store, cfg.NewRNG())
		start, err := botStartCommand()
		if err != nil {
			return err
		}
		if resp := session.ProcessCommand(start); resp.Type == "ERROR" {
			return fmt.Errorf("bot start: %s", resp.Error)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		report, runErr := agent.NewBot(session).Run(ctx, botBattles)
		// Прерванный посреди боя прогон засчитывает поражение
		if err := session.Close(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Save:      %s\n", session.Player.ID)
		fmt.Fprintf(out, "Battles:   %d (won %d, lost %d, %d rounds)\n",
			report.Battles, report.Victories, report.Defeats, report.Rounds)
		fmt.Fprintf(out, "Purchases: %d\n", report.Purchases)
		fmt.Fprintf(out, "Level:     %d, gold %d, %s\n", report.Level, report.Gold, report.Phase)

		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			return runErr
		}
		return nil
	},
}

func botStartCommand() (api.ClientCommand, error) {
	if botLoad != "" {
		return api.NewCommand("LOAD", api.LoadPayload{SaveID: botLoad})
	}
	return api.NewCommand("NEW", api.NewGamePayload{Name: botName, Class: botClass})
}

func init() {
	botCmd.Flags().StringVar(&botName, "name", "Bot", "character name")
	botCmd.Flags().StringVar(&botClass, "class", "Warrior", "character class (Warrior, Mage, Rogue)")
	botCmd.Flags().IntVarP(&botBattles, "battles", "n", 10, "number of battles to play")
	botCmd.Flags().StringVar(&botLoad, "load", "", "continue an existing save instead of creating a character")
}
