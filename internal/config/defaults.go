package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the default starfall tuning.
// Kept in sync with defaults/starfall.yaml; used as the last-resort
// fallback if the embedded YAML somehow fails to parse.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		Player: PlayerConfig{
			MaxSpeed:  3.4,
			Size:      18,
			Smoothing: 0.15,
		},
		Pointer: PointerConfig{
			DeadZone:     8,
			Gain:         0.15,
			RampDistance: 60,
		},
		Weapon: WeaponConfig{
			CooldownMs:  120,
			BulletSpeed: 7,
			BulletSize:  6,
			BulletTTLMs: 4000,
		},
		Enemies: EnemyConfig{
			SpawnChance: 0.015,
			Speed:       2.0,
			Size:        16,
		},
		Stars: StarConfig{
			Count:    60,
			MinSpeed: 0.5,
			MaxSpeed: 2.0,
		},
		Session: SessionConfig{
			HitPoints:    3,
			ScorePerKill: 100,
		},
	}
}
