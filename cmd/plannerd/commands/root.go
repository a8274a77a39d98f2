// Package commands implements the plannerd CLI (serve, plan).
package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mallaplan/planner/internal/config"
	"github.com/mallaplan/planner/internal/obslog"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "plannerd",
	Short: "plannerd serves university class-schedule planning requests",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.Verbose = true
		}
		if err := obslog.Init(cfg.LogDir, cfg.Verbose); err != nil {
			return err
		}

		log.Info().Str("version", Version).Msg("plannerd starting")
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(planCmd)
}
