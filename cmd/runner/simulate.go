package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/games/runner"
	"github.com/vovakirdan/sky-runner/internal/simulate"
)

var (
	flagRuns      int
	flagMaxTicks  int
	flagWorkers   int
	flagMode      string
	flagLookahead float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot games in parallel",
	Long: `Play independent runs without a frontend, each driven by the
autopilot, and print score, ticks and state digest per run. Run i uses
seed+i, so the same flags always print the same table.

Examples:
  runner simulate
  runner simulate --runs 32 --seed 7 --max-ticks 20000
  runner simulate --mode classic --workers 4`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 8, "Number of runs")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 36000, "Stop a run after this many ticks (0 = until game over)")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel runs (0 = all at once)")
	simulateCmd.Flags().StringVar(&flagMode, "mode", "full", "Mode preset: full, classic")
	simulateCmd.Flags().Float64Var(&flagLookahead, "lookahead", runner.DefaultAutopilot().Lookahead, "Autopilot jump distance in pixels")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	mode, ok := config.ParseMode(flagMode)
	if !ok {
		return fmt.Errorf("unknown mode %q (use full or classic)", flagMode)
	}
	cfg, err := loadConfig(mode)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := simulate.Run(ctx, simulate.Options{
		Runs:      flagRuns,
		Seed:      seed,
		MaxTicks:  flagMaxTicks,
		Workers:   flagWorkers,
		Config:    cfg,
		Autopilot: runner.Autopilot{Lookahead: flagLookahead},
		Logger:    logger,
	})
	if err != nil && len(results) == 0 {
		return err
	}
	logger.Info("simulation finished", "runs", len(results), "elapsed", time.Since(start))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Seed", "Score", "Ticks", "Jumps", "Result", "Digest")
	for _, r := range results {
		outcome := "game over"
		if !r.GameOver {
			outcome = "survived"
		}
		t.Row(
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Score),
			strconv.FormatUint(r.Ticks, 10),
			strconv.Itoa(r.Jumps),
			outcome,
			fmt.Sprintf("%016x", r.Digest),
		)
	}
	fmt.Println(t.Render())

	sum := simulate.Summarize(results)
	fmt.Printf("\n%d runs  best %d  mean %.1f  survived %d\n", sum.Runs, sum.Best, sum.Mean, sum.Survived)
	return err
}
