package runner

// Autopilot is a simple controller used for demo play and headless
// simulation. It looks only at a Snapshot, like a human would.
type Autopilot struct {
	// Lookahead is how far ahead of the player's front edge, in pixels,
	// a spike group triggers a jump.
	Lookahead float64
}

// DefaultAutopilot returns an autopilot tuned for the default physics.
func DefaultAutopilot() Autopilot {
	return Autopilot{Lookahead: 60}
}

// Decide reports whether to send a jump intent before the next tick.
func (a Autopilot) Decide(s Snapshot) bool {
	if s.GameOver {
		return false
	}

	p := s.Player
	pb := p.Box()

	next, ok := nextSpikes(s.Obstacles, pb.X)
	if !ok {
		return false
	}
	dist := next.X - pb.Right()

	if !p.Jumping {
		return dist <= a.Lookahead
	}

	// Falling onto spikes: spend the double jump.
	if p.CanDoubleJump && p.VelocityY > 0 {
		return dist <= 0 && pb.Bottom() < next.Y
	}
	return false
}

// nextSpikes returns the nearest spike group whose right edge is still ahead
// of x.
func nextSpikes(obstacles []Obstacle, x float64) (Obstacle, bool) {
	for _, o := range obstacles {
		if o.Kind.Lethal() && o.Right() > x {
			return o, true
		}
	}
	return Obstacle{}, false
}
