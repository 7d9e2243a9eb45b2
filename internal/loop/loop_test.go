package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter() (*atomic.Int64, FrameFunc) {
	var n atomic.Int64
	return &n, func() error {
		n.Add(1)
		return nil
	}
}

func TestStartStop(t *testing.T) {
	n, frame := counter()
	s := New(1000, frame, nil)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.Running())
	assert.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, time.Millisecond)

	s.Stop()
	assert.False(t, s.Running())

	stopped := n.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, n.Load(), "no frames after Stop")
}

func TestStartWhileRunning(t *testing.T) {
	_, frame := counter()
	s := New(1000, frame, nil)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.ErrorIs(t, s.Start(context.Background()), ErrRunning)
}

func TestStopIsIdempotent(t *testing.T) {
	_, frame := counter()
	s := New(1000, frame, nil)

	s.Stop()
	require.NoError(t, s.Start(context.Background()))
	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
}

func TestStartFailsUntilStoppedFrameReturns(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var active atomic.Int32
	var overlap atomic.Bool

	s := New(0, func() error {
		if active.Add(1) > 1 {
			overlap.Store(true)
		}
		defer active.Add(-1)
		select {
		case entered <- struct{}{}:
			<-release
		default:
		}
		return nil
	}, nil)

	require.NoError(t, s.Start(context.Background()))
	<-entered

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	// Stop is now waiting on the blocked frame.
	time.Sleep(20 * time.Millisecond)
	assert.True(t, s.Running())
	assert.ErrorIs(t, s.Start(context.Background()), ErrRunning)

	close(release)
	<-stopped
	assert.False(t, s.Running())

	require.NoError(t, s.Start(context.Background()))
	s.Stop()
	assert.False(t, overlap.Load(), "two frame goroutines ran at once")
}

func TestRestartAfterStop(t *testing.T) {
	n, frame := counter()
	s := New(1000, frame, nil)

	require.NoError(t, s.Start(context.Background()))
	s.Stop()
	before := n.Load()

	require.NoError(t, s.Start(context.Background()))
	assert.Eventually(t, func() bool { return n.Load() > before }, time.Second, time.Millisecond)
	s.Stop()
}

func TestHaltFromFrame(t *testing.T) {
	var n int
	s := New(0, func() error {
		n++
		if n == 5 {
			return ErrHalt
		}
		return nil
	}, nil)

	require.NoError(t, s.Start(context.Background()))
	assert.NoError(t, s.Wait())
	assert.Equal(t, 5, n)
	assert.Equal(t, uint64(5), s.Frames())
	assert.False(t, s.Running())

	// halted schedulers can be started again
	n = 0
	require.NoError(t, s.Start(context.Background()))
	assert.NoError(t, s.Wait())
	assert.Equal(t, 5, n)
}

func TestFrameError(t *testing.T) {
	boom := errors.New("boom")
	s := New(0, func() error { return boom }, nil)

	require.NoError(t, s.Start(context.Background()))
	assert.ErrorIs(t, s.Wait(), boom)
	assert.False(t, s.Running())
}

func TestParentCancel(t *testing.T) {
	_, frame := counter()
	s := New(1000, frame, nil)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	cancel()

	assert.NoError(t, s.Wait())
	assert.False(t, s.Running())
}

func TestWaitWithoutStart(t *testing.T) {
	_, frame := counter()
	s := New(60, frame, nil)
	assert.NoError(t, s.Wait())
}
