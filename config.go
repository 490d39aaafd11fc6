package shapeswarm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// PlacementMode selects where particles start before drifting to their
// destinations. Kept as a string so config files can carry any value; an
// unrecognized mode is rejected by Swarm.Init.
type PlacementMode string

const (
	// ModeSides starts each particle on a random edge of the surface.
	ModeSides PlacementMode = "sides"
	// ModeEvenly starts each particle anywhere on the surface.
	ModeEvenly PlacementMode = "evenly"
	// ModeInside starts each particle on its destination.
	ModeInside PlacementMode = "inside"
)

// Valid reports whether m is one of the known placement modes.
func (m PlacementMode) Valid() bool {
	switch m {
	case ModeSides, ModeEvenly, ModeInside:
		return true
	}
	return false
}

// Config holds every option of one swarm instance. Start from DefaultConfig
// and override fields; New copies the config, so later edits have no effect.
type Config struct {
	Particles ParticleConfig `yaml:"particles" toml:"particles"`
	Physics   PhysicsConfig  `yaml:"physics" toml:"physics"`
	Fade      FadeConfig     `yaml:"fade" toml:"fade"`
	Surface   SurfaceConfig  `yaml:"surface" toml:"surface"`
}

// ParticleConfig controls how many particles exist, where they start and how
// they look.
type ParticleConfig struct {
	// Mode is the placement policy. Empty means ModeInside.
	Mode PlacementMode `yaml:"mode" toml:"mode"`
	// Size is the side length of each particle square in pixels. Values <= 0 mean 1.
	Size float64 `yaml:"size" toml:"size"`
	// Amount is the number of particles. Zero is allowed and yields an empty swarm.
	Amount int `yaml:"amount" toml:"amount"`
	// Color is the particle fill. The zero value means ColorWhite, and so does
	// "transparent", which parses to it. Use "#ffffff00" for invisible
	// particles.
	Color Color `yaml:"color" toml:"color"`
	// Blend is the compositing operation used when drawing particles.
	Blend BlendMode `yaml:"blend" toml:"blend"`
	// MaxAttempts caps rejection-sampling draws per destination. Zero means
	// no cap.
	MaxAttempts int `yaml:"max_attempts" toml:"max_attempts"`
}

// PhysicsConfig holds the force coefficients. Values are used as given;
// negative coefficients invert the force.
type PhysicsConfig struct {
	// Noise scales the per-axis uniform jitter in [-1, 1).
	Noise float64 `yaml:"noise" toml:"noise"`
	// Drift is the constant speed toward the destination in pixels per frame.
	Drift float64 `yaml:"drift" toml:"drift"`
	// Repulsion scales the inverse-square push away from the pointer.
	Repulsion float64 `yaml:"repulsion" toml:"repulsion"`
}

// FadeConfig fades the swarm in after Init.
type FadeConfig struct {
	// Frames is the fade duration in frames. Zero disables the fade.
	Frames int `yaml:"frames" toml:"frames"`
	// Ease names the easing curve. Empty means linear.
	Ease EaseName `yaml:"ease" toml:"ease"`
}

// SurfaceConfig describes the offscreen surface created by NewImageSurfaceFromConfig.
type SurfaceConfig struct {
	Width      int   `yaml:"width" toml:"width"`
	Height     int   `yaml:"height" toml:"height"`
	Background Color `yaml:"background" toml:"background"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Particles: ParticleConfig{
			Mode:   ModeInside,
			Size:   1,
			Amount: 2000,
			Color:  ColorWhite,
			Blend:  BlendNormal,
		},
		Physics: PhysicsConfig{
			Noise:     1.5,
			Drift:     1,
			Repulsion: 0.01,
		},
		Fade: FadeConfig{
			Ease: EaseLinear,
		},
		Surface: SurfaceConfig{
			Width:  800,
			Height: 600,
		},
	}
}

// withDefaults fills the fields whose zero value has no useful meaning.
// Amount and the physics coefficients are left alone: zero is meaningful there.
func (c Config) withDefaults() Config {
	if c.Particles.Mode == "" {
		c.Particles.Mode = ModeInside
	}
	if c.Particles.Size <= 0 {
		c.Particles.Size = 1
	}
	if c.Particles.Amount < 0 {
		c.Particles.Amount = 0
	}
	if c.Particles.Color.IsZero() {
		c.Particles.Color = ColorWhite
	}
	if c.Fade.Ease == "" {
		c.Fade.Ease = EaseLinear
	}
	if c.Fade.Frames < 0 {
		c.Fade.Frames = 0
	}
	return c
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file. Keys missing
// from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseConfigYAML(data)
	case ".toml":
		cfg, err = ParseConfigTOML(data)
	default:
		return Config{}, fmt.Errorf("load config %s: unknown format: %w", path, ErrInvalidConfiguration)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfigYAML decodes YAML on top of DefaultConfig.
func ParseConfigYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// ParseConfigTOML decodes TOML on top of DefaultConfig.
func ParseConfigTOML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse toml: %w", err)
	}
	return cfg, nil
}
