// Package registry maps mode ids such as "runner" and "runner_classic" to
// the factories that build them. Modes register from init, so the CLI and
// the menus only see ids and titles.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// ErrUnknownMode is wrapped by Create for an id nothing registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Game is one playable mode as the terminal platform drives it: fixed ticks
// in, a screen buffer out.
type Game interface {
	ID() string
	Title() string

	// Reset starts a run. It is called before the first Step and on every
	// restart; cfg carries the screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// ModeInfo names a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, not yet Reset, game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode. The title is read from one throwaway instance.
// Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = entry{title: f().Title(), factory: f}
}

// List returns every mode ordered by id.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ModeInfo, 0, len(modes))
	for id, e := range modes {
		out = append(out, ModeInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b ModeInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return e.factory(), nil
}
