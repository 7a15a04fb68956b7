// Package config provides YAML-based game configuration loading and
// difficulty management for Solo Mission.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SoloConfig contains all configuration for the Solo Mission shooter.
// All distances are world units and all durations are seconds.
type SoloConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Bonus      BonusConfig      `yaml:"bonus"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the size of the visible play field.
// The origin is the bottom-left corner and Y grows upwards.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship and its weapon.
type PlayerConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	AppearDelay      float64 `yaml:"appear_delay"`    // Delay before the ship flies in
	AppearDuration   float64 `yaml:"appear_duration"` // Duration of the fly-in
	StartFraction    float64 `yaml:"start_fraction"`  // Resting Y as a fraction of world height
	VerticalMovement bool    `yaml:"vertical_movement"`
	MinYFraction     float64 `yaml:"min_y_fraction"`
	MaxYFraction     float64 `yaml:"max_y_fraction"`
	BulletWidth      float64 `yaml:"bullet_width"`
	BulletHeight     float64 `yaml:"bullet_height"`
	BulletSpeed      float64 `yaml:"bullet_speed"`
	FireCooldown     float64 `yaml:"fire_cooldown"` // 0 = unlimited fire rate
}

// EnemyConfig defines enemy waves.
type EnemyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Starting seconds between spawns
	MinInterval   float64 `yaml:"min_interval"`   // Floor for the spawn interval
	IntervalStep  float64 `yaml:"interval_step"`  // Reduction applied at each score milestone
	BaseSpeed     float64 `yaml:"base_speed"`     // World units per second before the multiplier
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Horizontal overshoot beyond the screen edges
	StartOffset   float64 `yaml:"start_offset"`   // Distance above the screen where enemies appear
	EndY          float64 `yaml:"end_y"`          // Y where an enemy path ends (below the screen)
	CurvyAmpMin   float64 `yaml:"curvy_amplitude_min"`
	CurvyAmpMax   float64 `yaml:"curvy_amplitude_max"`
	CurvyWavesMin int     `yaml:"curvy_waves_min"`
	CurvyWavesMax int     `yaml:"curvy_waves_max"`
	Reward        int     `yaml:"reward"`
}

// BonusConfig defines the rare bonus ship that crosses the screen.
type BonusConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
	Duration    float64 `yaml:"duration"` // Seconds to cross the screen
	BandMin     float64 `yaml:"band_min"` // Lowest Y as a fraction of world height
	BandMax     float64 `yaml:"band_max"` // Highest Y as a fraction of world height
	LifeReward  int     `yaml:"life_reward"`
}

// ScrollConfig defines the background and planet layers.
type ScrollConfig struct {
	Speed          float64  `yaml:"speed"`
	TileHeight     float64  `yaml:"tile_height"`
	Parallax       float64  `yaml:"parallax"` // Planet speed relative to the background
	PlanetVisuals  []string `yaml:"planet_visuals"`
	PlanetScaleMin float64  `yaml:"planet_scale_min"`
	PlanetScaleMax float64  `yaml:"planet_scale_max"`
	RespawnMin     float64  `yaml:"respawn_min"` // Distance above the screen for a respawned planet
	RespawnMax     float64  `yaml:"respawn_max"`
}

// GameplayConfig defines scoring, lives and effects.
type GameplayConfig struct {
	Lives               int     `yaml:"lives"`
	GodMode             bool    `yaml:"god_mode"`
	ScoreMilestone      int     `yaml:"score_milestone"`      // Spawn interval shrinks at multiples of this
	DifficultyMilestone int     `yaml:"difficulty_milestone"` // Speed multiplier grows at multiples of this
	SpeedStep           float64 `yaml:"speed_step"`
	ExplosionScale      float64 `yaml:"explosion_scale"` // Seconds for an explosion to grow
	ExplosionFade       float64 `yaml:"explosion_fade"`  // Seconds for an explosion to fade out
	CollisionMode       string  `yaml:"collision_mode"`  // "frame" or "host"
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // Milestone-driven progression
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines how the initial level shapes the opening of a run.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Extra starting multiplier at level 1.0
	IntervalReduction float64 `yaml:"interval_reduction"` // Seconds removed from the spawn interval at level 1.0
}

// Collision modes.
const (
	CollisionFrame = "frame"
	CollisionHost  = "host"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the configuration for values the simulation cannot run with.
func (c SoloConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size %.0fx%.0f: %w", c.World.Width, c.World.Height, ErrInvalidConfig)
	case c.Scroll.TileHeight <= 0:
		return fmt.Errorf("config: scroll.tile_height must be positive: %w", ErrInvalidConfig)
	case c.Enemies.SpawnInterval <= 0:
		return fmt.Errorf("config: enemies.spawn_interval must be positive: %w", ErrInvalidConfig)
	case c.Enemies.MinInterval <= 0 || c.Enemies.MinInterval > c.Enemies.SpawnInterval:
		return fmt.Errorf("config: enemies.min_interval must be in (0, spawn_interval]: %w", ErrInvalidConfig)
	case c.Enemies.BaseSpeed <= 0:
		return fmt.Errorf("config: enemies.base_speed must be positive: %w", ErrInvalidConfig)
	case c.Enemies.CurvyAmpMin > c.Enemies.CurvyAmpMax:
		return fmt.Errorf("config: enemies curvy amplitude range is inverted: %w", ErrInvalidConfig)
	case c.Enemies.CurvyWavesMin > c.Enemies.CurvyWavesMax:
		return fmt.Errorf("config: enemies curvy waves range is inverted: %w", ErrInvalidConfig)
	case c.Bonus.MinInterval <= 0 || c.Bonus.MinInterval > c.Bonus.MaxInterval:
		return fmt.Errorf("config: bonus interval range is invalid: %w", ErrInvalidConfig)
	case c.Bonus.BandMin > c.Bonus.BandMax:
		return fmt.Errorf("config: bonus band is inverted: %w", ErrInvalidConfig)
	case c.Scroll.PlanetScaleMin > c.Scroll.PlanetScaleMax:
		return fmt.Errorf("config: planet scale range is inverted: %w", ErrInvalidConfig)
	case c.Scroll.RespawnMin > c.Scroll.RespawnMax:
		return fmt.Errorf("config: planet respawn range is inverted: %w", ErrInvalidConfig)
	case c.Player.MinYFraction > c.Player.MaxYFraction:
		return fmt.Errorf("config: player y fraction range is inverted: %w", ErrInvalidConfig)
	case c.Player.BulletSpeed <= 0:
		return fmt.Errorf("config: player.bullet_speed must be positive: %w", ErrInvalidConfig)
	case c.Gameplay.ScoreMilestone <= 0 || c.Gameplay.DifficultyMilestone <= 0:
		return fmt.Errorf("config: gameplay milestones must be positive: %w", ErrInvalidConfig)
	case c.Gameplay.CollisionMode != CollisionFrame && c.Gameplay.CollisionMode != CollisionHost:
		return fmt.Errorf("config: unknown collision mode %q: %w", c.Gameplay.CollisionMode, ErrInvalidConfig)
	}
	return nil
}
