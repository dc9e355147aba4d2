package main

import (
	"dusk-rpg/internal/engine"
	"dusk-rpg/internal/infrastructure/storage"
	"dusk-rpg/internal/version"
	"dusk-rpg/pkg/logger"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	saveDir string
	seed    int64
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "dusk",
	Short:         "Dusk - turn-based RPG engine",
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: false,
	Long: `Dusk - a small turn-based RPG: create a Warrior, Mage or Rogue,
fight enemies that change with the time of day, rest, shop and level up.

Play in the terminal with "dusk play" or serve WebSocket clients with "dusk serve".
Configuration comes from an optional YAML file (--config), a .env file
and DUSK_* environment variables; flags override everything.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&saveDir, "save-dir", "", "directory for save files (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "combat RNG seed (0 for random)")

	rootCmd.AddCommand(playCmd, serveCmd, savesCmd, botCmd)
}

// loadConfig собирает конфиг и применяет флаги поверх файла и окружения.
func loadConfig(cmd *cobra.Command) (engine.Config, error) {
	cfg, err := engine.LoadConfig(cfgFile)
	if err != nil {
		return engine.Config{}, err
	}
	if cmd.Flags().Changed("save-dir") {
		cfg.SaveDir = saveDir
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func openStore(cfg engine.Config) (*storage.SaveService, error) {
	store, err := storage.NewSaveService(afero.NewOsFs(), cfg.SaveDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open save directory: %w", err)
	}
	return store, nil
}
