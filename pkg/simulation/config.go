package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dotEntropy/merry-particles/pkg/physics"
)

const (
	MinSpawnScale  = 0.05
	MaxSpawnScale  = 1.0
	SpawnScaleStep = 0.05
)

// --- Environment configuration ---
type Config struct {
	Name      string          `json:"name"`
	Seed      int64           `json:"seed"`
	TPS       int             `json:"tps"`
	Audio     bool            `json:"audio"`
	Window    WindowConfig    `json:"window"`
	Attractor AttractorConfig `json:"attractor"`
	Particles ParticleConfig  `json:"particles"`
}

type WindowConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
	Background string `json:"background"`
}

type AttractorConfig struct {
	Speed      float64 `json:"speed"`
	Radius     float64 `json:"radius"`
	Gravity    int64   `json:"gravity"`
	MaxGravity int64   `json:"max_gravity"`
	Color      string  `json:"color"`
}

type ParticleConfig struct {
	Scale        float64 `json:"scale"`
	Trickle      bool    `json:"trickle"`
	JitterError  float64 `json:"jitter_error"`
	JitterOffset float64 `json:"jitter_offset"`
	Color        string  `json:"color"`
}

func DefaultConfig() Config {
	return Config{
		Name:  "default",
		TPS:   60,
		Audio: true,
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Background: "#000000",
		},
		Attractor: AttractorConfig{
			Speed:      physics.DefaultAttractorSpeed,
			Radius:     physics.DefaultAttractorRadius,
			Gravity:    physics.DefaultGravity,
			MaxGravity: physics.DefaultMaxGravity,
			Color:      "#8a5cff",
		},
		Particles: ParticleConfig{
			Scale:        MinSpawnScale,
			JitterError:  0.2,
			JitterOffset: 0.5,
			Color:        "#ffd27f",
		},
	}
}

// LoadConfig reads a JSON environment file on top of DefaultConfig, applies
// overrides from envFile (if it exists) and the process environment, and
// validates the result.
func LoadConfig(path, envFile string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides selected fields from MERRY_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("MERRY_GRAVITY"); ok {
		g, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MERRY_GRAVITY: %w", err)
		}
		c.Attractor.Gravity = g
	}
	if v, ok := lookup("MERRY_SEED"); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MERRY_SEED: %w", err)
		}
		c.Seed = s
	}
	for name, dst := range map[string]*bool{
		"MERRY_FULLSCREEN": &c.Window.Fullscreen,
		"MERRY_AUDIO":      &c.Audio,
		"MERRY_TRICKLE":    &c.Particles.Trickle,
	} {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

// Validate rejects configurations the simulation cannot start with and clamps
// the ones it can.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Attractor.Radius <= 0 {
		return fmt.Errorf("attractor radius must be positive, got %g", c.Attractor.Radius)
	}
	if c.Attractor.Speed < 0 {
		return fmt.Errorf("attractor speed must not be negative, got %g", c.Attractor.Speed)
	}
	if c.Attractor.MaxGravity < 10 {
		c.Attractor.MaxGravity = physics.DefaultMaxGravity
	}
	if c.Attractor.Gravity > c.Attractor.MaxGravity {
		c.Attractor.Gravity = c.Attractor.MaxGravity
	}
	if c.Attractor.Gravity < -c.Attractor.MaxGravity {
		c.Attractor.Gravity = -c.Attractor.MaxGravity
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	c.Particles.Scale = ClampScale(c.Particles.Scale)
	return nil
}

// ParseColor parses "#rrggbb"; anything else falls back to a pale blue.
func ParseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{200, 200, 255, 255}
}
