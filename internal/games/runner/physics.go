package runner

import (
	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

// Support records what the player stood on after the last contact pass.
type Support int

const (
	SupportNone Support = iota
	SupportGround
	SupportPlatform
)

// Player is the square avatar. X, Y is the top-left corner.
type Player struct {
	X             float64
	Y             float64
	Size          float64
	VelocityY     float64
	Jumping       bool
	CanDoubleJump bool
	Rotation      float64
	Support       Support
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// Contact is the outcome of one contact resolution pass.
type Contact int

const (
	ContactNone Contact = iota
	ContactGround
	ContactPlatformTop
	ContactPlatformLeft
	ContactPlatformRight
)

// Bounced reports whether the contact was a side hit on a platform.
func (c Contact) Bounced() bool {
	return c == ContactPlatformLeft || c == ContactPlatformRight
}

// Physics integrates the player and resolves non-lethal contacts.
type Physics struct {
	cfg    config.RunnerPhysics
	player config.RunnerPlayer
}

// NewPhysics creates a physics stepper from the config.
func NewPhysics(cfg *config.RunnerConfig) Physics {
	return Physics{cfg: cfg.Physics, player: cfg.Player}
}

// NewPlayer returns a player resting on a ground whose top is groundTop.
func (ph Physics) NewPlayer(groundTop float64) Player {
	return Player{
		X:       ph.player.X,
		Y:       groundTop - ph.player.Size,
		Size:    ph.player.Size,
		Support: SupportGround,
	}
}

// Integrate applies gravity and rotation for one tick and eases the player
// back toward its lane after a side bounce pushed it away.
// Support is cleared; ResolveContacts sets it again.
func (ph Physics) Integrate(p *Player) {
	p.VelocityY += ph.cfg.Gravity
	p.Y += p.VelocityY
	if p.Jumping {
		p.Rotation += ph.cfg.RotationSpeed
	}
	p.Support = SupportNone

	p.X = core.Approach(p.X, ph.player.X, ph.player.LaneRecovery)
	if p.X < 0 {
		p.X = 0
	}
}

// ResolveContacts checks the ground first and, only when the ground did not
// catch the player, platforms in list order. The first matching contact wins.
// Spike groups are never considered here.
func (ph Physics) ResolveContacts(p *Player, segments []GroundSegment, obstacles []Obstacle) Contact {
	for _, seg := range segments {
		if ph.landsOn(p, seg.Box()) {
			ph.land(p, seg.Y, SupportGround)
			return ContactGround
		}
	}

	for _, o := range obstacles {
		if !o.Kind.Landable() {
			continue
		}
		if c := ph.platformContact(p, o); c != ContactNone {
			return c
		}
	}
	return ContactNone
}

func (ph Physics) platformContact(p *Player, o Obstacle) Contact {
	pb := p.Box()
	ob := o.Box()

	if ph.landsOn(p, ob) {
		ph.land(p, o.Y, SupportPlatform)
		return ContactPlatformTop
	}

	if !pb.OverlapsY(ob) {
		return ContactNone
	}

	band := ph.cfg.SideBand
	switch {
	case pb.Right() >= ob.X && pb.Right() < ob.X+band:
		p.X = ob.X - p.Size
		ph.bounce(p)
		return ContactPlatformLeft
	case pb.X > ob.Right()-band && pb.X <= ob.Right():
		p.X = ob.Right()
		ph.bounce(p)
		return ContactPlatformRight
	}
	return ContactNone
}

// landsOn reports whether a falling player's bottom edge is within the
// landing window of surface: at or below its top, and less than
// LandingTolerance below its bottom.
func (ph Physics) landsOn(p *Player, surface core.Box) bool {
	pb := p.Box()
	bottom := pb.Bottom()
	return p.VelocityY > 0 &&
		pb.OverlapsX(surface) &&
		bottom >= surface.Y &&
		bottom < surface.Bottom()+ph.cfg.LandingTolerance
}

func (ph Physics) land(p *Player, top float64, s Support) {
	p.Y = top - p.Size
	p.VelocityY = 0
	p.Jumping = false
	p.CanDoubleJump = false
	p.Rotation = 0
	p.Support = s
}

func (ph Physics) bounce(p *Player) {
	p.VelocityY = ph.cfg.JumpForce * ph.cfg.BounceFactor
	p.Jumping = false
	p.CanDoubleJump = false
	p.Rotation = 0
}
