package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		View: RunnerView{
			Width:  800,
			Height: 400,
		},
		Physics: RunnerPhysics{
			Gravity:           0.5,
			JumpForce:         -12,
			PlatformJumpForce: -15.6,
			DoubleJumpForce:   -10,
			DoubleJump:        true,
			RotationSpeed:     0.2,
			GameSpeed:         5,
			BounceFactor:      0.5,
			LandingTolerance:  10,
			SideBand:          10,
		},
		Player: RunnerPlayer{
			X:            100,
			Size:         30,
			LaneRecovery: 1,
		},
		Terrain: RunnerTerrain{
			GroundHeight: 40,
			SegmentWidth: 100,
			MoveSpeed:    0.25,
			MoveRange:    30,
		},
		Obstacles: RunnerObstacles{
			MaxHeight:         60,
			PlatformChance:    0.3,
			PlatformWidth:     100,
			PlatformMinHeight: 30,
			SpikeWidth:        20,
			SpikeGap:          4,
			MaxSpikes:         3,
			SpikeMinBase:      20,
			SpikeScaleMin:     0.5,
			SpikeScaleMax:     0.9,
			MinSpacing:        250,
			MaxSpacing:        450,
		},
		Decor: RunnerDecor{
			Cats:       3,
			CatSize:    24,
			MinSpeed:   1,
			MaxSpeed:   3,
			Spin:       0.05,
			SkyHeight:  160,
			BobHeight:  12,
			BobSeconds: 1.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}

// ApplyMode modifies the config according to a mode preset.
// ModeClassic reproduces the first version of the game: a flat ground line,
// one-block obstacles 30px wide, and a single jump.
func ApplyMode(cfg *RunnerConfig, mode Mode) {
	if mode != ModeClassic {
		return
	}

	cfg.Terrain.MoveSpeed = 0
	cfg.Terrain.GroundHeight = 10
	cfg.Physics.DoubleJump = false

	cfg.Obstacles.SpikeWidth = 30
	cfg.Obstacles.SpikeGap = 0
	cfg.Obstacles.MaxSpikes = 1
	cfg.Obstacles.SpikeMinBase = 30
	cfg.Obstacles.SpikeScaleMin = 1
	cfg.Obstacles.SpikeScaleMax = 1

	cfg.Decor.Cats = 0
}
