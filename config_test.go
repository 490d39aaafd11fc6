package shapeswarm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Particles
	if p.Mode != ModeInside || p.Size != 1 || p.Amount != 2000 || p.Color != ColorWhite {
		t.Errorf("particles = %+v", p)
	}
	if cfg.Physics != (PhysicsConfig{Noise: 1.5, Drift: 1, Repulsion: 0.01}) {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Fade.Frames != 0 {
		t.Errorf("fade frames = %d, want 0", cfg.Fade.Frames)
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Particles.Mode != ModeInside {
		t.Errorf("mode = %q, want inside", cfg.Particles.Mode)
	}
	if cfg.Particles.Size != 1 {
		t.Errorf("size = %f, want 1", cfg.Particles.Size)
	}
	if cfg.Particles.Color != ColorWhite {
		t.Errorf("color = %+v, want white", cfg.Particles.Color)
	}
	if cfg.Particles.Amount != 0 {
		t.Errorf("amount = %d, want 0 (taken literally)", cfg.Particles.Amount)
	}
	if cfg.Physics != (PhysicsConfig{}) {
		t.Errorf("physics = %+v, want zero (taken literally)", cfg.Physics)
	}

	neg := Config{Particles: ParticleConfig{Amount: -5, Size: -1}, Fade: FadeConfig{Frames: -3}}.withDefaults()
	if neg.Particles.Amount != 0 || neg.Particles.Size != 1 || neg.Fade.Frames != 0 {
		t.Errorf("negative values not clamped: %+v", neg)
	}
}

func TestWithDefaultsKeepsInvalidMode(t *testing.T) {
	cfg := Config{Particles: ParticleConfig{Mode: "spiral"}}.withDefaults()
	if cfg.Particles.Mode != "spiral" {
		t.Errorf("mode = %q, want spiral preserved for Init to reject", cfg.Particles.Mode)
	}
}

func TestPlacementModeValid(t *testing.T) {
	for _, m := range []PlacementMode{ModeSides, ModeEvenly, ModeInside} {
		if !m.Valid() {
			t.Errorf("%q should be valid", m)
		}
	}
	for _, m := range []PlacementMode{"", "Inside", "random"} {
		if m.Valid() {
			t.Errorf("%q should be invalid", m)
		}
	}
}

func TestParseConfigYAML(t *testing.T) {
	data := []byte(`
particles:
  mode: sides
  amount: 300
  color: "#ff8000"
  blend: add
physics:
  repulsion: 0.05
fade:
  frames: 30
  ease: out-cubic
surface:
  width: 320
  background: black
`)
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		t.Fatalf("ParseConfigYAML: %v", err)
	}
	if cfg.Particles.Mode != ModeSides || cfg.Particles.Amount != 300 {
		t.Errorf("particles = %+v", cfg.Particles)
	}
	if cfg.Particles.Color != (Color{R: 1, G: 128.0 / 255, B: 0, A: 1}) {
		t.Errorf("color = %+v", cfg.Particles.Color)
	}
	if cfg.Particles.Blend != BlendAdd {
		t.Errorf("blend = %v, want add", cfg.Particles.Blend)
	}
	if cfg.Particles.Size != 1 {
		t.Errorf("size = %f, want default 1", cfg.Particles.Size)
	}
	if cfg.Physics.Repulsion != 0.05 || cfg.Physics.Noise != 1.5 || cfg.Physics.Drift != 1 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Fade.Frames != 30 || cfg.Fade.Ease != EaseOutCubic {
		t.Errorf("fade = %+v", cfg.Fade)
	}
	if cfg.Surface.Width != 320 || cfg.Surface.Height != 600 || cfg.Surface.Background != ColorBlack {
		t.Errorf("surface = %+v", cfg.Surface)
	}
}

func TestTransparentColorReadsAsUnset(t *testing.T) {
	tests := []struct {
		text string
		want Color
	}{
		{"transparent", ColorWhite},
		{"#00000000", ColorWhite},
		{"#ffffff00", Color{R: 1, G: 1, B: 1, A: 0}},
	}
	for _, tt := range tests {
		cfg, err := ParseConfigYAML([]byte("particles:\n  color: \"" + tt.text + "\"\n"))
		if err != nil {
			t.Fatalf("%s: %v", tt.text, err)
		}
		if got := cfg.withDefaults().Particles.Color; got != tt.want {
			t.Errorf("%s: color = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestParseConfigYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"bad color": "particles:\n  color: teal\n",
		"bad blend": "particles:\n  blend: multiply\n",
		"not yaml":  "particles: [\n",
	}
	for name, data := range tests {
		if _, err := ParseConfigYAML([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseConfigTOML(t *testing.T) {
	data := []byte(`
[particles]
mode = "evenly"
size = 2.5
color = "#fff8"
max_attempts = 1000

[physics]
noise = 0.0
drift = 2.0

[surface]
height = 240
`)
	cfg, err := ParseConfigTOML(data)
	if err != nil {
		t.Fatalf("ParseConfigTOML: %v", err)
	}
	if cfg.Particles.Mode != ModeEvenly || cfg.Particles.Size != 2.5 || cfg.Particles.MaxAttempts != 1000 {
		t.Errorf("particles = %+v", cfg.Particles)
	}
	if cfg.Particles.Amount != 2000 {
		t.Errorf("amount = %d, want default 2000", cfg.Particles.Amount)
	}
	if a := cfg.Particles.Color.A; a != 0x88/255.0 {
		t.Errorf("color alpha = %f", a)
	}
	if cfg.Physics != (PhysicsConfig{Noise: 0, Drift: 2, Repulsion: 0.01}) {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Surface.Width != 800 || cfg.Surface.Height != 240 {
		t.Errorf("surface = %+v", cfg.Surface)
	}
}

func TestParseConfigTOMLErrors(t *testing.T) {
	if _, err := ParseConfigTOML([]byte("[particles]\ncolor = \"purple\"\n")); err == nil {
		t.Error("expected error for bad color")
	}
	if _, err := ParseConfigTOML([]byte("[particles\n")); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	yml := write("swarm.yml", "particles:\n  amount: 7\n")
	cfg, err := LoadConfig(yml)
	if err != nil {
		t.Fatalf("LoadConfig yml: %v", err)
	}
	if cfg.Particles.Amount != 7 {
		t.Errorf("yml amount = %d, want 7", cfg.Particles.Amount)
	}

	tml := write("swarm.TOML", "[particles]\namount = 9\n")
	cfg, err = LoadConfig(tml)
	if err != nil {
		t.Fatalf("LoadConfig toml: %v", err)
	}
	if cfg.Particles.Amount != 9 {
		t.Errorf("toml amount = %d, want 9", cfg.Particles.Amount)
	}

	ini := write("swarm.ini", "amount=1")
	if _, err := LoadConfig(ini); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("unknown extension err = %v, want ErrInvalidConfiguration", err)
	}

	bad := write("bad.yaml", "particles:\n  blend: nope\n")
	if _, err := LoadConfig(bad); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("bad blend err = %v, want ErrInvalidConfiguration", err)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestLoadExampleConfigs(t *testing.T) {
	for _, path := range []string{"examples/config/swarm.yaml", "examples/config/swarm.toml"} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Errorf("LoadConfig(%s): %v", path, err)
			continue
		}
		if !cfg.Particles.Mode.Valid() {
			t.Errorf("%s: invalid mode %q", path, cfg.Particles.Mode)
		}
		if _, err := cfg.Fade.Ease.Func(); err != nil {
			t.Errorf("%s: %v", path, err)
		}
	}
}
