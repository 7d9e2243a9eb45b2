package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/platform/canvas"
	"github.com/vovakirdan/sky-runner/internal/registry"
)

var (
	flagScale float64
	flagMute  bool
)

var canvasCmd = &cobra.Command{
	Use:   "canvas [mode]",
	Short: "Play in a window with sound",
	Long: `Open a window drawing the run at native 800x400 resolution with
synthesized jump and collision sounds.

Controls:
  Space/Up/W/Click - Jump (again in the air to double jump)
  R/Click          - Restart after game over
  Esc/Q            - Quit

Examples:
  runner canvas
  runner canvas runner_classic --scale 2
  runner canvas --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCanvas,
}

func init() {
	canvasCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
	canvasCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runCanvas(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	gameID := "runner"
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'runner list' to see available modes", err)
	}

	cfg, err := loadConfig(modeFor(gameID))
	if err != nil {
		return err
	}

	return canvas.Run(canvas.Options{
		Title:    game.Title(),
		Config:   cfg,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Scale:    flagScale,
		Mute:     flagMute,
		Logger:   logger,
	})
}
