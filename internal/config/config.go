// Package config provides YAML-based game configuration loading and
// difficulty presets for the starfall platform.
package config

// StarfallConfig contains all tuning for the starfall shooter.
// Every value lives in logical playfield units (320x568) or milliseconds.
type StarfallConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Pointer PointerConfig `yaml:"pointer"`
	Weapon  WeaponConfig  `yaml:"weapon"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Stars   StarConfig    `yaml:"stars"`
	Session SessionConfig `yaml:"session"`
}

// PlayerConfig defines ship movement parameters.
type PlayerConfig struct {
	MaxSpeed  float64 `yaml:"max_speed"` // Units per tick, also caps pursuit velocity
	Size      float64 `yaml:"size"`      // Hit-circle diameter
	Smoothing float64 `yaml:"smoothing"` // Velocity lerp factor per tick (0..1)
}

// PointerConfig defines mouse-pursuit parameters.
type PointerConfig struct {
	DeadZone     float64 `yaml:"dead_zone"`     // No pursuit inside this distance
	Gain         float64 `yaml:"gain"`          // Offset-to-velocity factor
	RampDistance float64 `yaml:"ramp_distance"` // Full gain reached at this distance
}

// WeaponConfig defines firing parameters.
type WeaponConfig struct {
	CooldownMs  float64 `yaml:"cooldown_ms"`   // Wall-clock gap between shots
	BulletSpeed float64 `yaml:"bullet_speed"`  // Upward units per tick
	BulletSize  float64 `yaml:"bullet_size"`   // Hit-circle diameter
	BulletTTLMs float64 `yaml:"bullet_ttl_ms"` // Safety expiry for stray bullets
}

// EnemyConfig defines spawn and motion parameters for the basic enemy.
type EnemyConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Independent probability per tick
	Speed       float64 `yaml:"speed"`        // Downward units per tick
	Size        float64 `yaml:"size"`         // Hit-circle diameter
}

// StarConfig defines the background star field.
type StarConfig struct {
	Count    int     `yaml:"count"`     // Fixed per-session star count
	MinSpeed float64 `yaml:"min_speed"` // Slowest downward drift per tick
	MaxSpeed float64 `yaml:"max_speed"` // Fastest downward drift per tick
}

// SessionConfig defines session-level scalars.
type SessionConfig struct {
	HitPoints    int `yaml:"hit_points"`     // Starting and maximum HP
	ScorePerKill int `yaml:"score_per_kill"` // Score bonus per destroyed enemy
}

// DifficultyPreset represents a named difficulty level.
// Presets scale the spawn pressure before the session starts; there is
// no in-session progression.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyStarfallPreset scales the config for a difficulty preset.
// DifficultyFixed and unknown presets leave the config untouched.
func ApplyStarfallPreset(cfg *StarfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.SpawnChance *= 0.6
		cfg.Enemies.Speed *= 0.8
	case DifficultyHard:
		cfg.Enemies.SpawnChance *= 1.7
		cfg.Enemies.Speed *= 1.3
	}
}
