package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 升级项ID
const (
	UpgradeMaxHealth      = "max_health"      // 每级 +1 半心
	UpgradeDamage         = "damage"          // 每级子弹伤害 +1
	UpgradeFireRate       = "fire_rate"       // 每级射击冷却 -10%
	UpgradeSpeed          = "speed"           // 每级推进加速度 +10%
	UpgradeStartingCoins  = "starting_coins"  // 每级开局金币 +10
	UpgradeCoinMultiplier = "coin_multiplier" // 每级局终金币转换 +25%
)

// UpgradeDef 一项升级的定义
type UpgradeDef struct {
	ID       string
	Name     string
	MaxLevel int
	BaseCost int // 第 1 级的价格，之后每级翻倍
}

// UpgradeDefs 内置升级表
var UpgradeDefs = []UpgradeDef{
	{ID: UpgradeMaxHealth, Name: "装甲强化", MaxLevel: 3, BaseCost: 50},
	{ID: UpgradeDamage, Name: "火力强化", MaxLevel: 3, BaseCost: 80},
	{ID: UpgradeFireRate, Name: "射速强化", MaxLevel: 3, BaseCost: 60},
	{ID: UpgradeSpeed, Name: "引擎强化", MaxLevel: 3, BaseCost: 40},
	{ID: UpgradeStartingCoins, Name: "启动资金", MaxLevel: 3, BaseCost: 30},
	{ID: UpgradeCoinMultiplier, Name: "贸易许可", MaxLevel: 2, BaseCost: 100},
}

// ConvertRunCoins 计算局终时并入货币的金币数
// 基准转换率 50%，每级贸易许可 +25%
func (pm *ProgressManager) ConvertRunCoins(runCoins int) int {
	rate := 0.5 + 0.25*float64(pm.UpgradeLevel(UpgradeCoinMultiplier))
	return int(float64(runCoins) * rate)
}

// StartingCoins 开局自带的金币数
func (pm *ProgressManager) StartingCoins() int {
	return 10 * pm.UpgradeLevel(UpgradeStartingCoins)
}

// progressData 持久化的元进度
type progressData struct {
	Currency int            `yaml:"currency"` // 跨局货币
	Upgrades map[string]int `yaml:"upgrades"` // 升级ID -> 已购等级
}

// ProgressManager 元进度管理器
// 货币和永久升级跨局保留，每局结束时把拾取的金币并入货币
type ProgressManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	data         progressData
}

const (
	progressObject   = "progress"
	progressProperty = "meta"
)

// NewProgressManager 创建元进度管理器并加载存档
func NewProgressManager(gdataManager *gdata.Manager) (*ProgressManager, error) {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		data:         progressData{Upgrades: make(map[string]int)},
	}

	if err := pm.Load(); err != nil {
		log.Printf("[ProgressManager] Warning: Failed to load progress: %v (starting fresh)", err)
	}

	return pm, nil
}

// Load 从 gdata 加载元进度
func (pm *ProgressManager) Load() error {
	if pm.gdataManager == nil {
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var loaded progressData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	if loaded.Upgrades == nil {
		loaded.Upgrades = make(map[string]int)
	}
	pm.data = loaded
	return nil
}

// Save 保存元进度到 gdata
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&pm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Currency 当前货币余额
func (pm *ProgressManager) Currency() int {
	return pm.data.Currency
}

// AddCurrency 增加货币并持久化
func (pm *ProgressManager) AddCurrency(amount int) error {
	if amount <= 0 {
		return nil
	}
	pm.data.Currency += amount
	return pm.Save()
}

// UpgradeLevel 查询某项升级的已购等级
func (pm *ProgressManager) UpgradeLevel(id string) int {
	return pm.data.Upgrades[id]
}

// UpgradeCost 下一级的价格
// 已满级返回 0 和 false
func (pm *ProgressManager) UpgradeCost(id string) (int, bool) {
	def := findUpgradeDef(id)
	if def == nil {
		return 0, false
	}
	level := pm.data.Upgrades[id]
	if level >= def.MaxLevel {
		return 0, false
	}
	return def.BaseCost << level, true
}

// PurchaseUpgrade 购买一级升级
// 货币不足、ID 未知或已满级时返回错误，成功时扣款并持久化
func (pm *ProgressManager) PurchaseUpgrade(id string) error {
	cost, ok := pm.UpgradeCost(id)
	if !ok {
		return fmt.Errorf("upgrade %q is unknown or maxed out", id)
	}
	if pm.data.Currency < cost {
		return fmt.Errorf("insufficient currency: have %d, need %d", pm.data.Currency, cost)
	}

	pm.data.Currency -= cost
	pm.data.Upgrades[id]++
	log.Printf("[ProgressManager] 购买升级 %s -> 等级 %d", id, pm.data.Upgrades[id])
	return pm.Save()
}

func findUpgradeDef(id string) *UpgradeDef {
	for i := range UpgradeDefs {
		if UpgradeDefs[i].ID == id {
			return &UpgradeDefs[i]
		}
	}
	return nil
}
