// Package loop provides a fixed-rate frame scheduler with explicit
// cancellation.
package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrRunning is returned by Start when the scheduler is already running.
	ErrRunning = errors.New("loop: already running")

	// ErrHalt is returned by a frame func to stop the loop from inside.
	// It is not reported by Wait.
	ErrHalt = errors.New("loop: halt")
)

// FrameFunc advances the simulation by one frame.
type FrameFunc func() error

// Scheduler calls a FrameFunc at a fixed rate on its own goroutine.
// A tick rate of 0 runs frames back to back, for headless simulation.
type Scheduler struct {
	interval time.Duration
	frame    FrameFunc
	logger   *log.Logger
	frames   atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// New creates a stopped scheduler. A nil logger uses the default logger.
func New(tickRate int, frame FrameFunc, logger *log.Logger) *Scheduler {
	var interval time.Duration
	if tickRate > 0 {
		interval = time.Second / time.Duration(tickRate)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		interval: interval,
		frame:    frame,
		logger:   logger,
	}
}

// Start launches the loop. Each call gets a fresh cancellation token derived
// from ctx, so a stopped scheduler can be started again.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.err = nil

	s.logger.Debug("loop started", "interval", s.interval)
	go s.run(ctx, cancel, done)
	return nil
}

func (s *Scheduler) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer s.release(cancel, done)

	var tick <-chan time.Time
	if s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return
		}

		err := s.frame()
		s.frames.Add(1)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrHalt) {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
			s.logger.Error("loop stopped", "err", err)
		} else {
			s.logger.Debug("loop halted", "frames", s.frames.Load())
		}
		return
	}
}

// release clears the running state if it still belongs to this run.
func (s *Scheduler) release(cancel context.CancelFunc, done chan struct{}) {
	cancel()
	s.mu.Lock()
	if s.done == done {
		s.cancel = nil
	}
	s.mu.Unlock()
}

// Stop cancels the loop and waits for the current frame to finish.
// The scheduler stays running, and Start keeps failing with ErrRunning,
// until that frame returns. Stopping a stopped scheduler is a no-op.
// Stop must not be called from inside a frame func; return ErrHalt instead.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Wait blocks until the current run ends and returns the frame error that
// ended it, if any. It returns immediately when the scheduler never started.
func (s *Scheduler) Wait() error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Running reports whether a loop goroutine is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Frames returns the number of frames run since the scheduler was created.
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}
