package game

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// maxHighscoreEntries 排行榜保留的条目数
const maxHighscoreEntries = 10

// HighscoreEntry 排行榜中的一条记录
type HighscoreEntry struct {
	Score      int    `yaml:"score"`
	Wave       int    `yaml:"wave"`       // 街机模式的波次 / 地牢模式的层数
	Difficulty int    `yaml:"difficulty"` // 达成时的难度设置
	Date       string `yaml:"date"`       // YYYY-MM-DD
}

type highscoreData struct {
	Entries []HighscoreEntry `yaml:"entries"`
}

// HighscoreManager 排行榜管理器
// 保留得分最高的前 10 条记录，按得分降序排列
type HighscoreManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存记录）
	entries      []HighscoreEntry
}

const (
	highscoreObject   = "highscores"
	highscoreProperty = "table"
)

// NewHighscoreManager 创建排行榜管理器并加载已有记录
func NewHighscoreManager(gdataManager *gdata.Manager) (*HighscoreManager, error) {
	hm := &HighscoreManager{
		gdataManager: gdataManager,
	}

	if err := hm.Load(); err != nil {
		log.Printf("[HighscoreManager] Warning: Failed to load highscores: %v (starting empty)", err)
	}

	return hm, nil
}

// Load 从 gdata 加载排行榜
func (hm *HighscoreManager) Load() error {
	if hm.gdataManager == nil {
		return nil
	}

	if !hm.gdataManager.ObjectPropExists(highscoreObject, highscoreProperty) {
		return nil
	}

	data, err := hm.gdataManager.LoadObjectProp(highscoreObject, highscoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load highscores: %w", err)
	}

	var loaded highscoreData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal highscores: %w", err)
	}

	hm.entries = loaded.Entries
	hm.sortAndTrim()
	return nil
}

// Save 保存排行榜到 gdata
func (hm *HighscoreManager) Save() error {
	if hm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&highscoreData{Entries: hm.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal highscores: %w", err)
	}

	if err := hm.gdataManager.SaveObjectProp(highscoreObject, highscoreProperty, data); err != nil {
		return fmt.Errorf("failed to save highscores: %w", err)
	}
	return nil
}

// Submit 提交一局的成绩
// 返回是否进入排行榜；进榜时立即持久化
func (hm *HighscoreManager) Submit(score, wave, difficulty int) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	entry := HighscoreEntry{
		Score:      score,
		Wave:       wave,
		Difficulty: difficulty,
		Date:       time.Now().Format("2006-01-02"),
	}

	hm.entries = append(hm.entries, entry)
	hm.sortAndTrim()

	// 检查刚提交的成绩是否还在榜上
	qualified := false
	for _, e := range hm.entries {
		if e == entry {
			qualified = true
			break
		}
	}
	if !qualified {
		return false, nil
	}

	return true, hm.Save()
}

// IsHighscore 检查给定得分能否进榜（不修改榜单）
func (hm *HighscoreManager) IsHighscore(score int) bool {
	if score <= 0 {
		return false
	}
	if len(hm.entries) < maxHighscoreEntries {
		return true
	}
	return score > hm.entries[len(hm.entries)-1].Score
}

// Entries 返回榜单的只读副本，按得分降序
func (hm *HighscoreManager) Entries() []HighscoreEntry {
	out := make([]HighscoreEntry, len(hm.entries))
	copy(out, hm.entries)
	return out
}

// Best 返回最高分，榜单为空时返回 0
func (hm *HighscoreManager) Best() int {
	if len(hm.entries) == 0 {
		return 0
	}
	return hm.entries[0].Score
}

// sortAndTrim 按得分降序排序并截断到上限
// 同分时较早的记录排前
func (hm *HighscoreManager) sortAndTrim() {
	sort.SliceStable(hm.entries, func(i, j int) bool {
		return hm.entries[i].Score > hm.entries[j].Score
	})
	if len(hm.entries) > maxHighscoreEntries {
		hm.entries = hm.entries[:maxHighscoreEntries]
	}
}
