package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid runner config")

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err = parseOverDefaults(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseOverDefaults(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parseOverDefaults(data); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseOverDefaults decodes data on top of the hardcoded defaults so a partial
// file only overrides the keys it names.
func parseOverDefaults(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks the invariants the simulation relies on. Terrain coverage
// needs every tick to scroll less than one ground segment, and obstacle
// extension needs the minimum spacing to exceed one tick of scroll.
func (c RunnerConfig) Validate() error {
	switch {
	case c.View.Width <= 0 || c.View.Height <= 0:
		return fmt.Errorf("%w: view must be positive, got %vx%v", ErrInvalid, c.View.Width, c.View.Height)
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalid)
	case c.Physics.GameSpeed <= 0:
		return fmt.Errorf("%w: game_speed must be positive", ErrInvalid)
	case c.Terrain.SegmentWidth <= c.Physics.GameSpeed:
		return fmt.Errorf("%w: segment_width (%v) must exceed game_speed (%v)",
			ErrInvalid, c.Terrain.SegmentWidth, c.Physics.GameSpeed)
	case c.Terrain.MoveSpeed < 0 || c.Terrain.MoveRange < 0:
		return fmt.Errorf("%w: ground oscillation must be non-negative", ErrInvalid)
	case c.Obstacles.MinSpacing <= c.Physics.GameSpeed:
		return fmt.Errorf("%w: min_spacing (%v) must exceed game_speed (%v)",
			ErrInvalid, c.Obstacles.MinSpacing, c.Physics.GameSpeed)
	case c.Obstacles.MaxSpacing < c.Obstacles.MinSpacing:
		return fmt.Errorf("%w: max_spacing below min_spacing", ErrInvalid)
	case c.Obstacles.MaxSpikes < 1:
		return fmt.Errorf("%w: max_spikes must be at least 1", ErrInvalid)
	case c.Obstacles.PlatformMinHeight > c.Obstacles.MaxHeight || c.Obstacles.SpikeMinBase > c.Obstacles.MaxHeight:
		return fmt.Errorf("%w: platform_min_height and spike_min_base must not exceed max_height (%v)",
			ErrInvalid, c.Obstacles.MaxHeight)
	case c.Obstacles.SpikeScaleMin <= 0 || c.Obstacles.SpikeScaleMin > c.Obstacles.SpikeScaleMax:
		return fmt.Errorf("%w: spike scale range [%v, %v] is empty or not positive",
			ErrInvalid, c.Obstacles.SpikeScaleMin, c.Obstacles.SpikeScaleMax)
	case c.Obstacles.PlatformChance < 0 || c.Obstacles.PlatformChance > 1:
		return fmt.Errorf("%w: platform_chance must be in [0, 1]", ErrInvalid)
	case c.Decor.Cats < 0:
		return fmt.Errorf("%w: cats must be non-negative", ErrInvalid)
	case c.Decor.Cats > 0 && c.Decor.BobSeconds <= 0:
		return fmt.Errorf("%w: bob_seconds must be positive when cats fly", ErrInvalid)
	case c.Decor.Cats > 0 && (c.Decor.MinSpeed <= 0 || c.Decor.MaxSpeed < c.Decor.MinSpeed):
		return fmt.Errorf("%w: cat speeds must be positive with min_speed <= max_speed", ErrInvalid)
	}
	return nil
}
