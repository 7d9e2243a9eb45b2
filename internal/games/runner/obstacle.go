package runner

import (
	"github.com/vovakirdan/sky-runner/internal/core"
)

// ObstacleKind distinguishes landable platforms from lethal spike groups.
type ObstacleKind int

const (
	KindPlatform ObstacleKind = iota
	KindSpikeGroup
)

// String returns the kind name used in logs and test output.
func (k ObstacleKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindSpikeGroup:
		return "spikes"
	default:
		return "unknown"
	}
}

// Lethal reports whether touching the obstacle ends the run.
func (k ObstacleKind) Lethal() bool {
	return k == KindSpikeGroup
}

// Landable reports whether the player can stand on or bounce off the obstacle.
func (k ObstacleKind) Landable() bool {
	return k == KindPlatform
}

// Obstacle is a platform or a group of spikes resting on the ground.
// Y is always the ground top minus Height.
type Obstacle struct {
	Kind   ObstacleKind
	X      float64
	Y      float64
	Width  float64
	Height float64

	// SpikeHeights holds one entry per spike, left to right.
	// Empty for platforms.
	SpikeHeights []float64
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Right returns the x coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// clone returns a copy that does not share SpikeHeights.
func (o Obstacle) clone() Obstacle {
	if o.SpikeHeights != nil {
		o.SpikeHeights = append([]float64(nil), o.SpikeHeights...)
	}
	return o
}

// GroundSegment is one fixed-width slice of the ground strip.
type GroundSegment struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Box returns the segment's bounding box.
func (s GroundSegment) Box() core.Box {
	return core.NewBox(s.X, s.Y, s.Width, s.Height)
}

// Right returns the x coordinate of the segment's right edge.
func (s GroundSegment) Right() float64 {
	return s.X + s.Width
}
