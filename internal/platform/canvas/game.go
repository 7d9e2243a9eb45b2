// Package canvas is the windowed frontend: it runs the simulation inside the
// Ebitengine loop at native canvas resolution with synthesized sound.
package canvas

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/games/runner"
)

// errQuit ends RunGame without reporting a failure.
var errQuit = errors.New("quit")

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// Options configures a windowed run.
type Options struct {
	Title    string
	Config   config.RunnerConfig
	Seed     int64 // 0 picks a time-based seed
	TickRate int   // 0 means 60
	Scale    float64
	Mute     bool
	Logger   *log.Logger
}

// Game implements ebiten.Game around one RunState.
type Game struct {
	run     *runner.RunState
	sink    runner.AudioSink
	sprites *Sprites
	logger  *log.Logger

	runID   uuid.UUID
	touches []ebiten.TouchID
	wasOver bool
}

// NewGame builds the run and its audio sink.
func NewGame(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	run, err := runner.NewRunState(opts.Config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	var sink runner.AudioSink = Mute{}
	if !opts.Mute {
		sink = NewSynth(opts.Logger)
	}

	cfg := opts.Config
	g := &Game{
		run:     run,
		sink:    sink,
		sprites: NewSprites(cfg.Player.Size, cfg.Decor.CatSize, cfg.Obstacles.SpikeGap),
		logger:  opts.Logger,
	}
	g.runID = uuid.New()
	g.logger.Info("run started", "run", g.runID, "seed", seed)
	return g, nil
}

// restart begins a new run. The RNG continues from the previous run, so
// there is no new seed to report.
func (g *Game) restart() {
	g.run.Reset()
	g.runID = uuid.New()
	g.wasOver = false
	g.logger.Info("run restarted", "run", g.runID)
}

// pressedJumps counts the jump intents that arrived since the last Update.
func (g *Game) pressedJumps() int {
	n := 0
	for _, k := range jumpKeys {
		if inpututil.IsKeyJustPressed(k) {
			n++
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		n++
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	return n + len(g.touches)
}

// Update applies queued jumps and advances one tick. After game over any
// jump intent or R starts a new run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}

	jumps := g.pressedJumps()

	if g.run.IsOver() {
		if jumps > 0 || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		return nil
	}

	for i := 0; i < jumps; i++ {
		g.run.Jump()
	}
	g.run.Tick()

	if g.run.IsOver() && !g.wasOver {
		g.wasOver = true
		g.logger.Info("game over", "run", g.runID, "score", g.run.DisplayScore(), "ticks", g.run.Snapshot().Tick)
	}
	return nil
}

// Draw renders the snapshot and plays the events of the last ticks.
func (g *Game) Draw(screen *ebiten.Image) {
	runner.Present(g.run, NewRenderer(screen, g.sprites), g.sink)
}

// Layout keeps the logical canvas fixed; Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.run.Config()
	return int(cfg.View.Width), int(cfg.View.Height)
}

func tps(rate int) int {
	if rate <= 0 {
		return 60
	}
	return rate
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}

	cfg := opts.Config
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(cfg.View.Width*scale), int(cfg.View.Height*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps(opts.TickRate))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}
