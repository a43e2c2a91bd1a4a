package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnemyStats 单种敌人的属性
type EnemyStats struct {
	Health   int     `yaml:"health"`   // 生命值
	Speed    float64 `yaml:"speed"`    // 移动速度（像素/秒）
	Damage   int     `yaml:"damage"`   // 接触伤害（半心）
	Size     float64 `yaml:"size"`     // 外形直径（像素）
	Behavior string  `yaml:"behavior"` // 行为模式ID
	Score    int     `yaml:"score"`    // 击杀得分
	Color    [3]int  `yaml:"color"`    // RGB 颜色
}

// EnemyStatsConfig 敌人属性配置表
type EnemyStatsConfig struct {
	Enemies map[string]EnemyStats `yaml:"enemies"`
}

// 敌人种类ID
const (
	EnemyFly     = "fly"
	EnemySpider  = "spider"
	EnemyBlob    = "blob"
	EnemyHopper  = "hopper"
	EnemyShooter = "shooter"
	EnemyCharger = "charger"
)

// DefaultEnemyStatsConfig 返回内置敌人属性表
func DefaultEnemyStatsConfig() *EnemyStatsConfig {
	return &EnemyStatsConfig{
		Enemies: map[string]EnemyStats{
			EnemyFly:     {Health: 2, Speed: 150, Damage: 1, Size: 24, Behavior: "fly_random", Score: 10, Color: [3]int{100, 80, 60}},
			EnemySpider:  {Health: 4, Speed: 80, Damage: 1, Size: 32, Behavior: "chase", Score: 20, Color: [3]int{60, 40, 40}},
			EnemyBlob:    {Health: 6, Speed: 40, Damage: 1, Size: 40, Behavior: "wander", Score: 30, Color: [3]int{80, 150, 80}},
			EnemyHopper:  {Health: 3, Speed: 200, Damage: 1, Size: 28, Behavior: "hop", Score: 25, Color: [3]int{150, 100, 150}},
			EnemyShooter: {Health: 5, Speed: 60, Damage: 1, Size: 36, Behavior: "shoot", Score: 40, Color: [3]int{180, 60, 60}},
			EnemyCharger: {Health: 8, Speed: 250, Damage: 2, Size: 44, Behavior: "charge", Score: 50, Color: [3]int{200, 100, 50}},
		},
	}
}

// LoadEnemyStatsConfig 从 yaml 文件加载敌人属性表
// 文件中的条目覆盖同名内置条目，未覆盖的保留默认值
func LoadEnemyStatsConfig(path string) (*EnemyStatsConfig, error) {
	cfg := DefaultEnemyStatsConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read enemy config %s: %w", path, err)
	}

	var loaded EnemyStatsConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse enemy config %s: %w", path, err)
	}

	for kind, stats := range loaded.Enemies {
		cfg.Enemies[kind] = stats
	}
	return cfg, nil
}

// Get 查询指定种类的属性，种类不存在时返回 false
func (c *EnemyStatsConfig) Get(kind string) (EnemyStats, bool) {
	stats, ok := c.Enemies[kind]
	return stats, ok
}

// Kinds 返回所有敌人种类ID
func (c *EnemyStatsConfig) Kinds() []string {
	kinds := make([]string, 0, len(c.Enemies))
	for k := range c.Enemies {
		kinds = append(kinds, k)
	}
	return kinds
}
