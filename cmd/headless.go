package cmd

import (
	"arcade-snake/config"
	"arcade-snake/game"
	"arcade-snake/game/timer"
	"arcade-snake/ui"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "run a session without a window, driven by a key script",
	RunE: func(c *cobra.Command, args []string) error {
		_, err := runHeadless(cfg)
		return err
	},
}

func init() {
	headlessCmd.Flags().IntVar(&cfg.Frames, "frames", cfg.Frames, "number of frames to run")
	headlessCmd.Flags().StringVar(&cfg.Script, "script", cfg.Script, "key presses as frame:key pairs, e.g. 10:down,40:left")
	headlessCmd.Flags().StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "write the last frame to this PNG file")
}

func runHeadless(cfg *config.Config) (*game.Game, error) {
	script, err := ui.ParseScript(cfg.Script)
	if err != nil {
		return nil, err
	}

	log.WithField("seed", cfg.ResolveSeed()).Debug("starting headless run")

	clock := timer.NewManualClock()
	backend := ui.NewHeadless(cfg.Width, cfg.Height, cfg.FPS, cfg.Frames, clock, script)
	g := game.NewGame(cfg.GameOptions(clock))

	if err := g.Run(backend); err != nil {
		return g, err
	}

	if cfg.Snapshot != "" {
		if err := backend.SavePNG(cfg.Snapshot); err != nil {
			return g, err
		}
		log.WithField("path", cfg.Snapshot).Info("snapshot written")
	}
	return g, nil
}
