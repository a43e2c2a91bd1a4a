package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 成就ID
const (
	AchFirstBlood     = "first_blood"     // 击毁第一个目标
	AchAsteroidMiner  = "asteroid_miner"  // 累计击毁 100 颗小行星
	AchExterminator   = "exterminator"    // 累计击杀 50 个敌人
	AchBossSlayer     = "boss_slayer"     // 击败第一个 Boss
	AchDungeonCrawler = "dungeon_crawler" // 累计肃清 50 个房间
	AchRichPilot      = "rich_pilot"      // 累计收集 500 金币
	AchScoreHunter    = "score_hunter"    // 单局得分 10000
)

// Achievement 一项成就的定义和解锁状态
type Achievement struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Threshold   int    `yaml:"threshold"` // 达成所需的计数
	Progress    int    `yaml:"progress"`  // 当前累计计数
	Unlocked    bool   `yaml:"unlocked"`
}

type achievementData struct {
	Achievements []Achievement `yaml:"achievements"`
}

// defaultAchievements 内置成就表
func defaultAchievements() []Achievement {
	return []Achievement{
		{ID: AchFirstBlood, Name: "初战告捷", Description: "击毁第一个目标", Threshold: 1},
		{ID: AchAsteroidMiner, Name: "行星矿工", Description: "累计击毁 100 颗小行星", Threshold: 100},
		{ID: AchExterminator, Name: "清剿专家", Description: "累计击杀 50 个敌人", Threshold: 50},
		{ID: AchBossSlayer, Name: "屠龙者", Description: "击败第一个 Boss", Threshold: 1},
		{ID: AchDungeonCrawler, Name: "地牢行者", Description: "累计肃清 50 个房间", Threshold: 50},
		{ID: AchRichPilot, Name: "富有的飞行员", Description: "累计收集 500 金币", Threshold: 500},
		{ID: AchScoreHunter, Name: "得分猎手", Description: "单局得分达到 10000", Threshold: 10000},
	}
}

// AchievementManager 成就管理器
// 成就进度跨局累计（AchScoreHunter 例外，用单局得分直接判定）
type AchievementManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	achievements []Achievement
	// 本次会话新解锁的成就ID，HUD 弹提示用
	newlyUnlocked []string
}

const (
	achievementObject   = "achievements"
	achievementProperty = "progress"
)

// NewAchievementManager 创建成就管理器并加载进度
func NewAchievementManager(gdataManager *gdata.Manager) (*AchievementManager, error) {
	am := &AchievementManager{
		gdataManager: gdataManager,
		achievements: defaultAchievements(),
	}

	if err := am.Load(); err != nil {
		log.Printf("[AchievementManager] Warning: Failed to load achievements: %v (starting fresh)", err)
	}

	return am, nil
}

// Load 从 gdata 加载成就进度
// 已保存的进度按 ID 合并到内置成就表，未知 ID 被丢弃
func (am *AchievementManager) Load() error {
	if am.gdataManager == nil {
		return nil
	}

	if !am.gdataManager.ObjectPropExists(achievementObject, achievementProperty) {
		return nil
	}

	data, err := am.gdataManager.LoadObjectProp(achievementObject, achievementProperty)
	if err != nil {
		return fmt.Errorf("failed to load achievements: %w", err)
	}

	var loaded achievementData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal achievements: %w", err)
	}

	saved := make(map[string]Achievement, len(loaded.Achievements))
	for _, a := range loaded.Achievements {
		saved[a.ID] = a
	}
	for i := range am.achievements {
		if s, ok := saved[am.achievements[i].ID]; ok {
			am.achievements[i].Progress = s.Progress
			am.achievements[i].Unlocked = s.Unlocked
		}
	}
	return nil
}

// Save 保存成就进度到 gdata
func (am *AchievementManager) Save() error {
	if am.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&achievementData{Achievements: am.achievements})
	if err != nil {
		return fmt.Errorf("failed to marshal achievements: %w", err)
	}

	if err := am.gdataManager.SaveObjectProp(achievementObject, achievementProperty, data); err != nil {
		return fmt.Errorf("failed to save achievements: %w", err)
	}
	return nil
}

// AddProgress 给指定成就累加进度，达到阈值时解锁
func (am *AchievementManager) AddProgress(id string, amount int) {
	for i := range am.achievements {
		a := &am.achievements[i]
		if a.ID != id || a.Unlocked {
			continue
		}
		a.Progress += amount
		if a.Progress >= a.Threshold {
			am.unlock(a)
		}
		return
	}
}

// SetProgress 直接设置进度值（用于"单局最高"类成就）
// 只会抬高进度，不会降低
func (am *AchievementManager) SetProgress(id string, value int) {
	for i := range am.achievements {
		a := &am.achievements[i]
		if a.ID != id || a.Unlocked {
			continue
		}
		if value > a.Progress {
			a.Progress = value
		}
		if a.Progress >= a.Threshold {
			am.unlock(a)
		}
		return
	}
}

func (am *AchievementManager) unlock(a *Achievement) {
	a.Unlocked = true
	am.newlyUnlocked = append(am.newlyUnlocked, a.ID)
	log.Printf("[AchievementManager] 解锁成就: %s", a.Name)
}

// RecordRun 把一局的统计并入成就进度并持久化
func (am *AchievementManager) RecordRun(score int, stats RunStats) error {
	am.AddProgress(AchFirstBlood, stats.AsteroidsDestroyed+stats.EnemiesKilled)
	am.AddProgress(AchAsteroidMiner, stats.AsteroidsDestroyed)
	am.AddProgress(AchExterminator, stats.EnemiesKilled)
	am.AddProgress(AchBossSlayer, stats.BossesKilled)
	am.AddProgress(AchDungeonCrawler, stats.RoomsCleared)
	am.AddProgress(AchRichPilot, stats.CoinsCollected)
	am.SetProgress(AchScoreHunter, score)
	return am.Save()
}

// Achievements 返回成就表的只读副本
func (am *AchievementManager) Achievements() []Achievement {
	out := make([]Achievement, len(am.achievements))
	copy(out, am.achievements)
	return out
}

// IsUnlocked 检查指定成就是否已解锁
func (am *AchievementManager) IsUnlocked(id string) bool {
	for _, a := range am.achievements {
		if a.ID == id {
			return a.Unlocked
		}
	}
	return false
}

// DrainNewlyUnlocked 取走本次会话新解锁的成就ID列表
func (am *AchievementManager) DrainNewlyUnlocked() []string {
	out := am.newlyUnlocked
	am.newlyUnlocked = nil
	return out
}
