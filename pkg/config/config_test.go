package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

func TestLoadGameConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Mode != ModeRogue {
		t.Errorf("Mode = %s, want %s", cfg.Mode, ModeRogue)
	}
	if cfg.Difficulty != DifficultyNormal {
		t.Errorf("Difficulty = %d, want %d", cfg.Difficulty, DifficultyNormal)
	}
}

func TestLoadGameConfigFromFile(t *testing.T) {
	path := writeTempConfig(t, "game.yaml", "mode: arcade\ndifficulty: 2\nverbose: true\n")

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Mode != ModeArcade {
		t.Errorf("Mode = %s, want %s", cfg.Mode, ModeArcade)
	}
	if cfg.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %d, want %d", cfg.Difficulty, DifficultyHard)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadGameConfigNormalizesInvalidValues(t *testing.T) {
	path := writeTempConfig(t, "game.yaml", "mode: banana\ndifficulty: 99\n")

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Mode != ModeRogue {
		t.Errorf("invalid mode normalized to %s, want %s", cfg.Mode, ModeRogue)
	}
	if cfg.Difficulty != DifficultyNormal {
		t.Errorf("invalid difficulty normalized to %d, want %d", cfg.Difficulty, DifficultyNormal)
	}
}

func TestLoadGameConfigParseError(t *testing.T) {
	path := writeTempConfig(t, "game.yaml", "mode: [unclosed\n")

	if _, err := LoadGameConfig(path); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestLoadLevelGenConfigDefaults(t *testing.T) {
	cfg, err := LoadLevelGenConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("LoadLevelGenConfig failed: %v", err)
	}
	if cfg.MinRooms != 8 || cfg.MaxRooms != 15 {
		t.Errorf("room range = [%d, %d], want [8, 15]", cfg.MinRooms, cfg.MaxRooms)
	}
	if cfg.BaseChance != 0.7 {
		t.Errorf("BaseChance = %v, want 0.7", cfg.BaseChance)
	}
}

func TestLoadLevelGenConfigNormalizes(t *testing.T) {
	path := writeTempConfig(t, "level.yaml",
		"minRooms: 0\nmaxRooms: -5\nbaseChance: 3.0\ndistancePenalty: -1\nmaxDifficulty: 0.1\ndifficultyBase: 1.0\n")

	cfg, err := LoadLevelGenConfig(path)
	if err != nil {
		t.Fatalf("LoadLevelGenConfig failed: %v", err)
	}
	if cfg.MinRooms < 1 {
		t.Errorf("MinRooms = %d, want >= 1", cfg.MinRooms)
	}
	if cfg.MaxRooms < cfg.MinRooms {
		t.Errorf("MaxRooms %d < MinRooms %d", cfg.MaxRooms, cfg.MinRooms)
	}
	if cfg.BaseChance > 1 {
		t.Errorf("BaseChance = %v, want <= 1", cfg.BaseChance)
	}
	if cfg.DistancePenalty < 0 {
		t.Errorf("DistancePenalty = %v, want >= 0", cfg.DistancePenalty)
	}
	if cfg.MaxDifficulty < cfg.DifficultyBase {
		t.Errorf("MaxDifficulty %v < DifficultyBase %v", cfg.MaxDifficulty, cfg.DifficultyBase)
	}
}

func TestLoadEnemyStatsConfigDefaults(t *testing.T) {
	cfg, err := LoadEnemyStatsConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("LoadEnemyStatsConfig failed: %v", err)
	}

	kinds := []string{EnemyFly, EnemySpider, EnemyBlob, EnemyHopper, EnemyShooter, EnemyCharger}
	for _, kind := range kinds {
		stats, ok := cfg.Enemies[kind]
		if !ok {
			t.Errorf("missing default enemy %s", kind)
			continue
		}
		if stats.Health <= 0 || stats.Speed <= 0 || stats.Behavior == "" {
			t.Errorf("enemy %s has invalid defaults: %+v", kind, stats)
		}
	}
}

func TestLoadEnemyStatsConfigMergesOverrides(t *testing.T) {
	path := writeTempConfig(t, "enemies.yaml", `enemies:
  spider:
    health: 99
    speed: 10
    damage: 3
    size: 32
    behavior: chase
    score: 200
    color: [1, 2, 3]
`)

	cfg, err := LoadEnemyStatsConfig(path)
	if err != nil {
		t.Fatalf("LoadEnemyStatsConfig failed: %v", err)
	}

	// 覆盖的条目生效
	spider := cfg.Enemies[EnemySpider]
	if spider.Health != 99 || spider.Score != 200 {
		t.Errorf("spider override not applied: %+v", spider)
	}

	// 未覆盖的条目保留内置默认值
	fly := cfg.Enemies[EnemyFly]
	if fly.Health != 2 || fly.Behavior != "fly_random" {
		t.Errorf("fly defaults lost after merge: %+v", fly)
	}
}
