package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStarfallEmbeddedDefaults(t *testing.T) {
	// No custom path and (almost certainly) no user config in the test
	// environment, so the embedded YAML should win.
	cfg, err := LoadStarfall("")
	if err != nil {
		t.Fatalf("LoadStarfall() error: %v", err)
	}

	def := DefaultStarfallConfig()
	if cfg != def {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, def)
	}
}

func TestLoadStarfallCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := `
player:
  max_speed: 9.9
  size: 10
  smoothing: 0.5
session:
  hit_points: 5
  score_per_kill: 250
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("writing custom config: %v", err)
	}

	cfg, err := LoadStarfall(path)
	if err != nil {
		t.Fatalf("LoadStarfall(custom) error: %v", err)
	}

	if cfg.Player.MaxSpeed != 9.9 {
		t.Errorf("MaxSpeed = %f, expected 9.9", cfg.Player.MaxSpeed)
	}
	if cfg.Session.HitPoints != 5 {
		t.Errorf("HitPoints = %d, expected 5", cfg.Session.HitPoints)
	}
	// Sections absent from the file stay at their zero values; callers
	// are expected to provide complete files.
	if cfg.Enemies.SpawnChance != 0 {
		t.Errorf("SpawnChance = %f, expected 0 for omitted section", cfg.Enemies.SpawnChance)
	}
}

func TestLoadStarfallMissingCustomPath(t *testing.T) {
	_, err := LoadStarfall(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadStarfall with missing custom path should fail")
	}
}

func TestApplyStarfallPreset(t *testing.T) {
	tests := []struct {
		name        string
		preset      DifficultyPreset
		wantsChange bool
	}{
		{"easy lowers pressure", DifficultyEasy, true},
		{"hard raises pressure", DifficultyHard, true},
		{"normal is baseline", DifficultyNormal, false},
		{"fixed is baseline", DifficultyFixed, false},
		{"unknown is ignored", DifficultyPreset("nightmare"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStarfallConfig()
			base := cfg.Enemies
			ApplyStarfallPreset(&cfg, tc.preset)

			changed := cfg.Enemies != base
			if changed != tc.wantsChange {
				t.Errorf("preset %q changed=%v, expected %v", tc.preset, changed, tc.wantsChange)
			}
		})
	}

	// Direction checks
	easy := DefaultStarfallConfig()
	ApplyStarfallPreset(&easy, DifficultyEasy)
	if easy.Enemies.SpawnChance >= DefaultStarfallConfig().Enemies.SpawnChance {
		t.Error("easy preset should lower spawn chance")
	}

	hard := DefaultStarfallConfig()
	ApplyStarfallPreset(&hard, DifficultyHard)
	if hard.Enemies.Speed <= DefaultStarfallConfig().Enemies.Speed {
		t.Error("hard preset should raise enemy speed")
	}
}
