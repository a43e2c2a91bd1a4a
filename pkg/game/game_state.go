// Package game 提供运行时状态、持久化管理器和场景框架
package game

import "log"

// RunStats 单局统计，用于结算界面和成就判定
type RunStats struct {
	AsteroidsDestroyed int
	EnemiesKilled      int
	BossesKilled       int
	RoomsCleared       int
	CoinsCollected     int
	PowerUpsCollected  int
	ShotsFired         int
	DamageTaken        int
}

// GameState 一局游戏的可变状态
// 由当前对局的所有系统共享，每局开新实例；不做全局单例，
// 调用方显式创建并传递，场景切换时旧状态自然废弃
type GameState struct {
	Score int
	Coins int // 本局拾取的金币（结算时并入元进度货币）
	Wave  int // 街机模式的当前波次
	Level int // 地牢模式的当前层数

	Difficulty int // config.DifficultyEasy/Normal/Hard

	Stats RunStats

	GameOver bool
	Paused   bool
}

// NewGameState 创建一局新游戏的状态
func NewGameState(difficulty int) *GameState {
	return &GameState{
		Difficulty: difficulty,
		Level:      1,
		Wave:       1,
	}
}

// AddScore 累加得分（调用方已按难度倍率换算）
func (gs *GameState) AddScore(points int) {
	gs.Score += points
}

// AddCoins 累加金币
func (gs *GameState) AddCoins(amount int) {
	gs.Coins += amount
	gs.Stats.CoinsCollected += amount
}

// SpendCoins 扣减金币，余额不足时不扣并返回 false
// 花掉的金币不回退 Stats.CoinsCollected，统计记录的是累计拾取量
func (gs *GameState) SpendCoins(amount int) bool {
	if amount > gs.Coins {
		return false
	}
	gs.Coins -= amount
	return true
}

// EndRun 标记本局结束
// 幂等，重复调用只记录一次
func (gs *GameState) EndRun() {
	if gs.GameOver {
		return
	}
	gs.GameOver = true
	log.Printf("[GameState] 本局结束: 得分 %d, 金币 %d, 层数 %d", gs.Score, gs.Coins, gs.Level)
}
