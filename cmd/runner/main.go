// runner is an endless side-scroller: jump spike groups, land on platforms
// and survive as long as possible, in the terminal or in a window.
//
// Usage:
//
//	runner list                - List available modes
//	runner play [mode]         - Play in the terminal (menu when no mode is given)
//	runner canvas [mode]       - Play in a window with sound
//	runner simulate            - Run headless autopilot games in parallel
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Custom runner config YAML
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Sky Runner - an endless runner for the terminal and the desktop",
	Long: `Sky Runner is a side-scrolling endless runner. Jump over spike groups,
land on platforms and double-jump out of trouble.

Available commands:
  list      - Show all modes
  play      - Play in the terminal
  canvas    - Play in a window with sound
  simulate  - Headless autopilot runs

Examples:
  runner list
  runner play
  runner play runner_classic
  runner canvas --scale 1.5
  runner simulate --runs 16 --seed 42`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		runner.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(canvasCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the CLI logger. Output goes to --log-file when set and to
// fallback otherwise. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, closer, nil
}

// modeFor maps a registered game id to its config preset.
func modeFor(gameID string) config.Mode {
	if gameID == "runner_classic" {
		return config.ModeClassic
	}
	return config.ModeFull
}

// loadConfig loads and validates the runner config for a mode.
func loadConfig(mode config.Mode) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyMode(&cfg, mode)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
