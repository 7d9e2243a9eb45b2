// Package simulate plays headless runs driven by the autopilot.
package simulate

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/games/runner"
	"github.com/vovakirdan/sky-runner/internal/loop"
)

// Options configures a batch of simulated runs.
type Options struct {
	Runs      int
	Seed      int64 // run i uses Seed+i
	MaxTicks  int   // 0 means until game over
	Workers   int   // 0 means one goroutine per run
	Config    config.RunnerConfig
	Autopilot runner.Autopilot
	Logger    *log.Logger
}

// Result describes one finished run.
type Result struct {
	ID       uuid.UUID
	Seed     int64
	Score    int
	Ticks    uint64
	Jumps    int
	GameOver bool
	Digest   uint64
}

// Run plays opts.Runs independent runs in parallel and returns their results
// ordered by seed.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Runs <= 0 {
		return nil, nil
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	results := make([]Result, opts.Runs)
	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i := range results {
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			res, err := playOne(gctx, opts, seed, logger)
			if err != nil {
				return fmt.Errorf("run seed=%d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func playOne(ctx context.Context, opts Options, seed int64, logger *log.Logger) (Result, error) {
	res := Result{ID: uuid.New(), Seed: seed}

	state, err := runner.NewRunState(opts.Config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return res, err
	}

	frame := func() error {
		if opts.Autopilot.Decide(state.Snapshot()) && state.Jump() {
			res.Jumps++
		}
		state.Tick()
		state.DrainEvents()

		if state.IsOver() || (opts.MaxTicks > 0 && state.Score() >= opts.MaxTicks) {
			return loop.ErrHalt
		}
		return nil
	}

	sched := loop.New(0, frame, logger)
	if err := sched.Start(ctx); err != nil {
		return res, err
	}
	if err := sched.Wait(); err != nil {
		return res, err
	}

	snap := state.Snapshot()
	res.Score = snap.DisplayScore()
	res.Ticks = snap.Tick
	res.GameOver = snap.GameOver
	res.Digest = snap.Digest()

	logger.Debug("run finished",
		"id", res.ID,
		"seed", seed,
		"score", res.Score,
		"ticks", res.Ticks,
		"game_over", res.GameOver,
	)
	return res, nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Runs     int
	Best     int
	Mean     float64
	Survived int // runs that reached MaxTicks without a game over
}

// Summarize computes the summary of results.
func Summarize(results []Result) Summary {
	sum := Summary{Runs: len(results)}
	if len(results) == 0 {
		return sum
	}
	total := 0
	for _, r := range results {
		total += r.Score
		if r.Score > sum.Best {
			sum.Best = r.Score
		}
		if !r.GameOver {
			sum.Survived++
		}
	}
	sum.Mean = float64(total) / float64(len(results))
	return sum
}
