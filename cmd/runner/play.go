package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/games/runner"
	"github.com/vovakirdan/sky-runner/internal/platform/tui"
	"github.com/vovakirdan/sky-runner/internal/registry"
)

var (
	flagBell      bool
	flagAutopilot bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Without a mode a menu lists every mode and
the best scores of this session; after a run you return to the menu.

Controls:
  Space/Up/W - Jump (again in the air to double jump)
  P          - Pause
  R          - Restart (after game over)
  Esc/B      - Back to menu
  Ctrl+S     - Save screenshot
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play runner_classic
  runner play --seed 42 --log-file runner.log
  runner play --autopilot`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on collision")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot press jump")
}

func runPlay(_ *cobra.Command, args []string) error {
	// The alt-screen owns stdout, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	session := tui.NewSession()

	if len(args) == 1 {
		_, err := playOne(args[0], cfg, session, logger)
		return err
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(session, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(session, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		res, err := playOne(menuResult.GameID, cfg, session, logger)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		cfg = res.Config
	}
}

// playOne runs a single mode until the player quits or goes back.
func playOne(gameID string, cfg core.RuntimeConfig, session *tui.Session, logger *log.Logger) (tui.RunResult, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return tui.RunResult{}, fmt.Errorf("%w, run 'runner list' to see available modes", err)
	}

	opts := tui.Options{Logger: logger, Session: session}
	if flagBell {
		opts.Bell = os.Stdout
	}
	if flagAutopilot {
		if rg, ok := game.(*runner.Game); ok {
			ap := runner.DefaultAutopilot()
			opts.Autopilot = func() bool {
				return ap.Decide(rg.Run().Snapshot())
			}
		}
	}

	return tui.Run(game, cfg, opts)
}
