package cmd

import (
	"os"

	"arcade-snake/config"
	"arcade-snake/game"
	"arcade-snake/game/timer"
	"arcade-snake/ui"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "snake is a small arcade snake game",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		return cfg.ApplyLogLevel()
	},
	RunE: func(c *cobra.Command, args []string) error {
		return runWindow(cfg)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func runWindow(cfg *config.Config) error {
	log.WithField("seed", cfg.ResolveSeed()).Debug("starting window")

	window := ui.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.FPS)
	defer window.Close()

	g := game.NewGame(cfg.GameOptions(timer.NewMonotonicClock()))
	return g.Run(window)
}

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for fruit placement, 0 picks one from the clock")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&cfg.FPS, "fps", cfg.FPS, "target frames per second")
	rootCmd.PersistentFlags().DurationVar(&cfg.Interval, "interval", cfg.Interval, "time between snake moves")

	rootCmd.AddCommand(headlessCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("snake failed")
		os.Exit(1)
	}
}
