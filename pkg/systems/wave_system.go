package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/game"
	"github.com/gonewx/tolik/pkg/utils"
)

// WaveSystem 街机模式的无尽波次
// 场上敌对单位清零后短暂停顿，然后刷新下一波，
// 小行星数量随波次递增，高波次混入敌人
type WaveSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	enemyStats    *config.EnemyStatsConfig
	rng           *rand.Rand

	breakTimer float64 // 波次间歇倒计时，<=0 表示战斗中
	started    bool
}

// waveBreakDuration 两波之间的间歇（秒）
const waveBreakDuration = 2.0

// NewWaveSystem 创建波次系统
func NewWaveSystem(em *ecs.EntityManager, gs *game.GameState, enemyStats *config.EnemyStatsConfig, rng *rand.Rand) *WaveSystem {
	return &WaveSystem{
		entityManager: em,
		gameState:     gs,
		enemyStats:    enemyStats,
		rng:           rng,
	}
}

// Update 推进波次状态机
func (s *WaveSystem) Update(deltaTime float64) {
	if s.gameState.GameOver {
		return
	}

	if !s.started {
		s.started = true
		s.spawnWave()
		return
	}

	if s.breakTimer > 0 {
		s.breakTimer -= deltaTime
		if s.breakTimer <= 0 {
			s.gameState.Wave++
			s.spawnWave()
		}
		return
	}

	if HostileCount(s.entityManager) == 0 {
		s.breakTimer = waveBreakDuration
	}
}

// spawnWave 刷新当前波次的敌对单位
func (s *WaveSystem) spawnWave() {
	wave := s.gameState.Wave
	asteroids := config.DifficultyAsteroidCount[s.gameState.Difficulty] + (wave-1)/2

	for i := 0; i < asteroids; i++ {
		if _, err := entities.NewAsteroidAtRandomEdge(s.entityManager, s.rng, s.gameState.Difficulty, components.BoundsWrap); err != nil {
			log.Printf("[Wave] 生成小行星失败: %v", err)
		}
	}

	// 第 3 波起混入敌人，数量缓慢增长
	enemyCount := 0
	if wave >= 3 {
		enemyCount = 1 + (wave-3)/3
	}
	difficulty := 1.0 + float64(wave)*0.1
	for i := 0; i < enemyCount; i++ {
		pos := utils.NewVector2D(
			config.RoomOffsetX+s.rng.Float64()*config.RoomWidth,
			config.RoomOffsetY+s.rng.Float64()*config.RoomHeight,
		)
		kind := entities.RandomEnemyKind(s.rng, difficulty)
		if _, err := entities.NewEnemy(s.entityManager, s.enemyStats, s.rng, kind, pos); err != nil {
			log.Printf("[Wave] 生成敌人失败: %v", err)
		}
	}

	log.Printf("[Wave] 第 %d 波: %d 小行星, %d 敌人", wave, asteroids, enemyCount)
}
