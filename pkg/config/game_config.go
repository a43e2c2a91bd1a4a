package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 游戏模式
const (
	// ModeRogue 地牢模式：程序生成的房间图，房间内钳制边界
	ModeRogue = "rogue"
	// ModeArcade 街机模式：单一环绕场地，无尽波次
	ModeArcade = "arcade"
)

// GameConfig 游戏全局配置
// 从 yaml 文件加载，文件缺失时使用默认值（不报错）
type GameConfig struct {
	Mode       string `yaml:"mode"`       // 游戏模式："rogue" 或 "arcade"
	Difficulty int    `yaml:"difficulty"` // 难度 0=简单 1=普通 2=困难
	Verbose    bool   `yaml:"verbose"`    // 是否输出详细日志
}

// DefaultGameConfig 返回默认游戏配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Mode:       ModeRogue,
		Difficulty: DifficultyNormal,
	}
}

// LoadGameConfig 从 yaml 文件加载游戏配置
// 文件不存在时返回默认配置；解析失败才返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize 修正非法配置值
func (c *GameConfig) normalize() {
	if c.Mode != ModeRogue && c.Mode != ModeArcade {
		c.Mode = ModeRogue
	}
	if c.Difficulty < DifficultyEasy || c.Difficulty > DifficultyHard {
		c.Difficulty = DifficultyNormal
	}
}
