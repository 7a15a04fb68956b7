package config

import (
	_ "embed"
)

//go:embed defaults/solo.yaml
var defaultSoloYAML []byte

// DefaultSoloConfig returns the hardcoded Solo Mission configuration.
// It mirrors defaults/solo.yaml and is used when the embedded file cannot be parsed.
func DefaultSoloConfig() SoloConfig {
	return SoloConfig{
		World: WorldConfig{
			Width:  750,
			Height: 1334,
		},
		Player: PlayerConfig{
			Width:          60,
			Height:         100,
			AppearDelay:    0.5,
			AppearDuration: 0.3,
			StartFraction:  0.2,
			MinYFraction:   0.1,
			MaxYFraction:   0.5,
			BulletWidth:    10,
			BulletHeight:   40,
			BulletSpeed:    1200,
		},
		Enemies: EnemyConfig{
			Width:         60,
			Height:        80,
			SpawnInterval: 4,
			MinInterval:   1,
			IntervalStep:  0.5,
			BaseSpeed:     300,
			SpawnMargin:   40,
			StartOffset:   200,
			EndY:          -100,
			CurvyAmpMin:   40,
			CurvyAmpMax:   120,
			CurvyWavesMin: 1,
			CurvyWavesMax: 3,
			Reward:        100,
		},
		Bonus: BonusConfig{
			Width:       80,
			Height:      50,
			MinInterval: 20,
			MaxInterval: 50,
			Duration:    6,
			BandMin:     0.55,
			BandMax:     0.85,
			LifeReward:  1,
		},
		Scroll: ScrollConfig{
			Speed:          150,
			TileHeight:     1334,
			Parallax:       1.1,
			PlanetVisuals:  []string{"planet1", "planet2", "planet3"},
			PlanetScaleMin: 0.3,
			PlanetScaleMax: 1.0,
			RespawnMin:     200,
			RespawnMax:     800,
		},
		Gameplay: GameplayConfig{
			Lives:               3,
			ScoreMilestone:      1000,
			DifficultyMilestone: 2000,
			SpeedStep:           0.1,
			ExplosionScale:      0.2,
			ExplosionFade:       0.3,
			CollisionMode:       CollisionFrame,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 1.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `solo config dump`.
func DefaultYAML() []byte {
	return defaultSoloYAML
}
