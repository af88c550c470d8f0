package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tuning constant of a round. Speeds and forces are in
// "design" units: per logical update at 60 updates/second.
type Config struct {
	PlayerSpeed float64 `yaml:"playerSpeed"`
	RunnerSpeed float64 `yaml:"runnerSpeed"` // max runner speed

	PlayerRadius float64 `yaml:"playerRadius"`
	RunnerRadius float64 `yaml:"runnerRadius"`
	PeelRadius   float64 `yaml:"peelRadius"`

	DangerTriggerOffset   float64 `yaml:"dangerTriggerOffset"`
	SpringRestOffset      float64 `yaml:"springRestOffset"`
	SeparationPadding     float64 `yaml:"separationPadding"`
	EdgeRepulsionMargin   float64 `yaml:"edgeRepulsionMargin"`
	EdgeVelocityClampBand float64 `yaml:"edgeVelocityClampBand"`

	RunnerCount        int     `yaml:"runnerCount"`
	RoundSeconds       float64 `yaml:"roundSeconds"`
	PeelDropInterval   float64 `yaml:"peelDropInterval"`
	PeelDropJitter     float64 `yaml:"peelDropJitter"`
	InitialPeelDelay   float64 `yaml:"initialPeelDelay"`
	PlayerStunDuration float64 `yaml:"playerStunDuration"`
	OuterBoundaryRatio float64 `yaml:"outerBoundaryRatio"`

	SpringStrength        float64 `yaml:"springStrength"`
	SpringDamping         float64 `yaml:"springDamping"`
	SeparationStrength    float64 `yaml:"separationStrength"`
	EdgeRepulsionStrength float64 `yaml:"edgeRepulsionStrength"`

	ArenaRadius     float64 `yaml:"arenaRadius"`
	SafeRadiusRatio float64 `yaml:"safeRadiusRatio"`
	SlipTauntChance float64 `yaml:"slipTauntChance"`
}

// minSeparationPadding is the floor applied to Config.SeparationPadding.
const minSeparationPadding = 2

// DefaultConfig returns the stock 99-vs-1 tuning.
func DefaultConfig() Config {
	return Config{
		PlayerSpeed: 3,
		RunnerSpeed: 1,

		PlayerRadius: 14,
		RunnerRadius: 10,
		PeelRadius:   12,

		DangerTriggerOffset:   90,
		SpringRestOffset:      40,
		SeparationPadding:     6,
		EdgeRepulsionMargin:   120,
		EdgeVelocityClampBand: 30,

		RunnerCount:        99,
		RoundSeconds:       180,
		PeelDropInterval:   6,
		PeelDropJitter:     3,
		InitialPeelDelay:   4,
		PlayerStunDuration: 3,
		OuterBoundaryRatio: 0.9,

		SpringStrength:        0.08,
		SpringDamping:         0.12,
		SeparationStrength:    0.15,
		EdgeRepulsionStrength: 0.75,

		ArenaRadius:     500,
		SafeRadiusRatio: 0.32,
		SlipTauntChance: 0.2,
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"playerSpeed", c.PlayerSpeed},
		{"runnerSpeed", c.RunnerSpeed},
		{"playerRadius", c.PlayerRadius},
		{"runnerRadius", c.RunnerRadius},
		{"peelRadius", c.PeelRadius},
		{"roundSeconds", c.RoundSeconds},
		{"peelDropInterval", c.PeelDropInterval},
		{"arenaRadius", c.ArenaRadius},
		{"edgeRepulsionMargin", c.EdgeRepulsionMargin},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.RunnerCount <= 0 {
		return fmt.Errorf("%w: runnerCount must be > 0, got %d", ErrInvalidConfig, c.RunnerCount)
	}
	if c.PeelDropJitter < 0 || c.InitialPeelDelay < 0 || c.PlayerStunDuration < 0 {
		return fmt.Errorf("%w: peel/stun timings must be >= 0", ErrInvalidConfig)
	}
	if c.OuterBoundaryRatio <= 0 || c.OuterBoundaryRatio > 1 {
		return fmt.Errorf("%w: outerBoundaryRatio must be in (0,1], got %v", ErrInvalidConfig, c.OuterBoundaryRatio)
	}
	if c.SafeRadiusRatio <= 0 || c.SafeRadiusRatio >= 1 {
		return fmt.Errorf("%w: safeRadiusRatio must be in (0,1), got %v", ErrInvalidConfig, c.SafeRadiusRatio)
	}
	if c.SlipTauntChance < 0 || c.SlipTauntChance > 1 {
		return fmt.Errorf("%w: slipTauntChance must be in [0,1], got %v", ErrInvalidConfig, c.SlipTauntChance)
	}
	return nil
}

// LoadConfig reads a YAML file over DefaultConfig. Fields absent from the file
// keep their default values. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Arena is the immutable per-round geometry derived from a Config.
type Arena struct {
	Radius             float64 // R
	SafeRadius         float64
	SpringRest         float64 // player-runner distance with zero spring force
	DangerTrigger      float64 // max distance for a danger bubble
	RepulsionMargin    float64 // soft wall band, measured inward from R
	VelocityClampBand  float64 // outward-velocity clamp band, measured inward from R
	SeparationPadding  float64
	MaxIdleSpawnRadius float64
}

// NewArena derives the arena geometry from cfg.
func NewArena(cfg Config) Arena {
	safe := cfg.ArenaRadius * cfg.SafeRadiusRatio
	pad := cfg.SeparationPadding
	if pad < minSeparationPadding {
		pad = minSeparationPadding
	}
	return Arena{
		Radius:             cfg.ArenaRadius,
		SafeRadius:         safe,
		SpringRest:         safe + cfg.SpringRestOffset,
		DangerTrigger:      safe + cfg.DangerTriggerOffset,
		RepulsionMargin:    cfg.EdgeRepulsionMargin,
		VelocityClampBand:  cfg.EdgeVelocityClampBand,
		SeparationPadding:  pad,
		MaxIdleSpawnRadius: cfg.ArenaRadius*cfg.OuterBoundaryRatio - cfg.RunnerRadius - spawnEdgeGap,
	}
}
