// Package config provides YAML-based configuration loading for the runner.
package config

// RunnerConfig contains all tunables of the endless runner simulation.
// Distances are canvas pixels, speeds are pixels per tick.
type RunnerConfig struct {
	View      RunnerView      `yaml:"view"`
	Physics   RunnerPhysics   `yaml:"physics"`
	Player    RunnerPlayer    `yaml:"player"`
	Terrain   RunnerTerrain   `yaml:"terrain"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Decor     RunnerDecor     `yaml:"decor"`
}

// RunnerView defines the logical canvas the simulation runs on.
type RunnerView struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerPhysics defines physics parameters.
type RunnerPhysics struct {
	Gravity           float64 `yaml:"gravity"`
	JumpForce         float64 `yaml:"jump_force"`
	PlatformJumpForce float64 `yaml:"platform_jump_force"`
	DoubleJumpForce   float64 `yaml:"double_jump_force"`
	DoubleJump        bool    `yaml:"double_jump"`
	RotationSpeed     float64 `yaml:"rotation_speed"` // radians per tick while airborne
	GameSpeed         float64 `yaml:"game_speed"`
	BounceFactor      float64 `yaml:"bounce_factor"`     // fraction of jump_force applied on a side bounce
	LandingTolerance  float64 `yaml:"landing_tolerance"` // extra depth below a surface that still counts as landing
	SideBand          float64 `yaml:"side_band"`         // width of the side-contact band of a platform
}

// RunnerPlayer defines player parameters.
type RunnerPlayer struct {
	X            float64 `yaml:"x"`
	Size         float64 `yaml:"size"`
	LaneRecovery float64 `yaml:"lane_recovery"` // pixels per tick back toward X after a bounce
}

// RunnerTerrain defines the ground strip and its oscillation.
type RunnerTerrain struct {
	GroundHeight float64 `yaml:"ground_height"`
	SegmentWidth float64 `yaml:"segment_width"`
	MoveSpeed    float64 `yaml:"move_speed"`
	MoveRange    float64 `yaml:"move_range"`
}

// RunnerObstacles defines obstacle generation parameters.
type RunnerObstacles struct {
	MaxHeight         float64 `yaml:"max_height"`
	PlatformChance    float64 `yaml:"platform_chance"`
	PlatformWidth     float64 `yaml:"platform_width"`
	PlatformMinHeight float64 `yaml:"platform_min_height"`
	SpikeWidth        float64 `yaml:"spike_width"`
	SpikeGap          float64 `yaml:"spike_gap"`
	MaxSpikes         int     `yaml:"max_spikes"`
	SpikeMinBase      float64 `yaml:"spike_min_base"`
	SpikeScaleMin     float64 `yaml:"spike_scale_min"`
	SpikeScaleMax     float64 `yaml:"spike_scale_max"`
	MinSpacing        float64 `yaml:"min_spacing"`
	MaxSpacing        float64 `yaml:"max_spacing"`
}

// RunnerDecor defines the decorative flying cats.
type RunnerDecor struct {
	Cats       int     `yaml:"cats"`
	CatSize    float64 `yaml:"cat_size"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Spin       float64 `yaml:"spin"`
	SkyHeight  float64 `yaml:"sky_height"` // cats fly in [0, sky_height)
	BobHeight  float64 `yaml:"bob_height"`
	BobSeconds float64 `yaml:"bob_seconds"`
}

// Mode selects a preset layered on top of the loaded config.
type Mode string

const (
	// ModeFull is the complete game: oscillating ground, spike groups,
	// double jump and flying cats.
	ModeFull Mode = "full"
	// ModeClassic is the first version of the game: flat ground, single
	// block obstacles, no double jump, no decorations.
	ModeClassic Mode = "classic"
)

// ParseMode converts a CLI string to a Mode. Empty means ModeFull.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case "", ModeFull:
		return ModeFull, true
	case ModeClassic:
		return ModeClassic, true
	default:
		return "", false
	}
}
