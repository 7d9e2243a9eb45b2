package runner

import (
	"fmt"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// Status is the lifecycle state of a run.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusGameOver {
		return "game over"
	}
	return "running"
}

// RunState is one run of the simulation: the player, the terrain, the
// decorations, and the score. It is advanced only by Tick and Jump and has
// no knowledge of timing, rendering, or input devices.
type RunState struct {
	cfg     config.RunnerConfig
	physics Physics
	terrain *Terrain
	flock   *flock

	player Player
	score  int
	speed  float64
	tick   uint64
	status Status
	events []Event
}

// NewRunState validates cfg and creates a run ready for its first tick.
// All randomness is drawn from rng.
func NewRunState(cfg config.RunnerConfig, rng Random) (*RunState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new run: %w", err)
	}

	s := &RunState{cfg: cfg}
	s.physics = NewPhysics(&s.cfg)
	s.terrain = NewTerrain(&s.cfg, rng)
	s.flock = newFlock(&s.cfg, rng)
	s.resetRun()
	return s, nil
}

// Reset starts a new run. Terrain and decorations are regenerated from the
// same random source, so they differ from the previous run.
func (s *RunState) Reset() {
	s.terrain.Reset()
	s.flock.reset()
	s.resetRun()
}

func (s *RunState) resetRun() {
	s.player = s.physics.NewPlayer(s.terrain.GroundTop())
	s.score = 0
	s.speed = s.cfg.Physics.GameSpeed
	s.tick = 0
	s.status = StatusRunning
	s.events = s.events[:0]
}

// Tick advances the run by one fixed step. It reports false, and changes
// nothing, once the run is over.
func (s *RunState) Tick() bool {
	if s.status == StatusGameOver {
		return false
	}

	s.physics.Integrate(&s.player)
	s.terrain.AdvanceGround(s.speed)
	s.terrain.AdvanceObstacles(s.speed)
	s.flock.advance()

	if c := s.physics.ResolveContacts(&s.player, s.terrain.Segments(), s.terrain.Obstacles()); c.Bounced() {
		s.emit(EventJumped, PitchBounce)
	}

	s.terrain.Recycle()
	s.score++
	s.tick++

	if _, hit := FindLethal(s.player.Box(), s.terrain.Obstacles()); hit {
		s.status = StatusGameOver
		s.emit(EventCollided, PitchCollision)
	}
	return true
}

// Jump applies a jump intent. A grounded player jumps, harder when standing
// on a platform; an airborne player may jump once more if double jump is
// enabled. It reports whether the intent had any effect.
func (s *RunState) Jump() bool {
	if s.status == StatusGameOver {
		return false
	}

	ph := s.cfg.Physics
	p := &s.player

	if !p.Jumping {
		force, pitch := ph.JumpForce, PitchJump
		if p.Support == SupportPlatform {
			force, pitch = ph.PlatformJumpForce, PitchPlatformJump
		}
		p.VelocityY = force
		p.Jumping = true
		p.CanDoubleJump = ph.DoubleJump
		p.Rotation = 0
		p.Support = SupportNone
		s.emit(EventJumped, pitch)
		return true
	}

	if p.CanDoubleJump {
		p.VelocityY = ph.DoubleJumpForce
		p.CanDoubleJump = false
		s.emit(EventJumped, PitchDoubleJump)
		return true
	}
	return false
}

func (s *RunState) emit(kind EventKind, pitch float64) {
	if len(s.events) >= maxPendingEvents {
		s.events = append(s.events[:0], s.events[1:]...)
	}
	s.events = append(s.events, Event{Kind: kind, Pitch: pitch, Tick: s.tick})
}

// DrainEvents returns the events emitted since the last call and clears the
// buffer.
func (s *RunState) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// IsOver reports whether the run has ended.
func (s *RunState) IsOver() bool {
	return s.status == StatusGameOver
}

// Status returns the run status.
func (s *RunState) Status() Status {
	return s.status
}

// Score returns the number of ticks survived.
func (s *RunState) Score() int {
	return s.score
}

// DisplayScore is the score shown to the player.
func (s *RunState) DisplayScore() int {
	return s.score / 10
}

// Player returns a copy of the player.
func (s *RunState) Player() Player {
	return s.player
}

// Config returns the config the run was created with.
func (s *RunState) Config() config.RunnerConfig {
	return s.cfg
}
