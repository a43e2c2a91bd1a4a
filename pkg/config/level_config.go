package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LevelGenConfig 地牢生成参数
// 决定 BFS 生成的房间数量、特殊房间概率和难度曲线
type LevelGenConfig struct {
	MinRooms int `yaml:"minRooms"` // 房间数下限（含起始房）
	MaxRooms int `yaml:"maxRooms"` // 房间数上限

	// 接受概率 = BaseChance - DistancePenalty × 曼哈顿距离，钳制到 [0,1]
	// 随距离单调递减，防止地图无限蔓延
	BaseChance      float64 `yaml:"baseChance"`
	DistancePenalty float64 `yaml:"distancePenalty"`

	ShopChance     float64 `yaml:"shopChance"`     // 新房间成为商店的独立概率
	TreasureChance float64 `yaml:"treasureChance"` // 新房间成为宝藏房的独立概率

	// 房间难度 = clamp(DifficultyBase + 距离 × DifficultyPerRoom, MaxDifficulty)
	DifficultyBase    float64 `yaml:"difficultyBase"`
	DifficultyPerRoom float64 `yaml:"difficultyPerRoom"`
	MaxDifficulty     float64 `yaml:"maxDifficulty"`
}

// DefaultLevelGenConfig 返回默认生成参数
func DefaultLevelGenConfig() *LevelGenConfig {
	return &LevelGenConfig{
		MinRooms:          8,
		MaxRooms:          15,
		BaseChance:        0.7,
		DistancePenalty:   0.1,
		ShopChance:        0.05,
		TreasureChance:    0.1,
		DifficultyBase:    1.0,
		DifficultyPerRoom: 0.15,
		MaxDifficulty:     3.0,
	}
}

// LoadLevelGenConfig 从 yaml 文件加载生成参数
// 文件不存在时返回默认值
func LoadLevelGenConfig(path string) (*LevelGenConfig, error) {
	cfg := DefaultLevelGenConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read level config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize 修正非法配置值，保证生成器总能终止
func (c *LevelGenConfig) normalize() {
	if c.MinRooms < 1 {
		c.MinRooms = 1
	}
	if c.MaxRooms < c.MinRooms {
		c.MaxRooms = c.MinRooms
	}
	if c.BaseChance > 1 {
		c.BaseChance = 1
	}
	if c.BaseChance < 0 {
		c.BaseChance = 0
	}
	if c.DistancePenalty < 0 {
		c.DistancePenalty = 0
	}
	if c.MaxDifficulty < c.DifficultyBase {
		c.MaxDifficulty = c.DifficultyBase
	}
}
