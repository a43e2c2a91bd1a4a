package scenes

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/dungeon"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/game"
	"github.com/gonewx/tolik/pkg/systems"
	"github.com/gonewx/tolik/pkg/utils"
)

// updateSystem 战斗场景按固定顺序驱动的逻辑系统
type updateSystem interface {
	Update(deltaTime float64)
}

// BattleScene 战斗场景
// 持有本局的 ECS 世界和全部系统，按固定顺序每帧推进：
// 输入 → 玩家状态 → AI → 运动 → 弹体 → 拾取物 → 粒子 →
// 生命周期 → 战斗结算 → 房间/波次 → 实体压缩
type BattleScene struct {
	ctx           *Context
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rng           *rand.Rand

	updateSystems []updateSystem
	renderSystem  *systems.RenderSystem
	hudSystem     *systems.HUDRenderSystem
	roomSystem    *systems.RoomSystem // 地牢模式专用，街机模式为 nil

	level      *dungeon.Level
	boundsMode components.BoundsMode

	// 局终/换层的延迟计时
	gameOverTimer float64
	descendTimer  float64
	finalized     bool
}

// NewBattleScene 开一局新游戏
func NewBattleScene(ctx *Context, difficulty int) *BattleScene {
	s := &BattleScene{
		ctx:           ctx,
		entityManager: ecs.NewEntityManager(),
		gameState:     game.NewGameState(difficulty),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	s.gameState.Coins = ctx.Progress.StartingCoins()

	s.boundsMode = components.BoundsClamp
	if ctx.GameConfig.Mode == config.ModeArcade {
		s.boundsMode = components.BoundsWrap
	}

	if _, err := s.spawnPlayer(); err != nil {
		log.Printf("[Battle] 创建玩家失败: %v", err)
	}

	s.buildSystems()

	if s.ctx.GameConfig.Mode == config.ModeRogue {
		log.Printf("[Battle] 开局: 地牢模式, 难度 %d", difficulty)
	} else {
		log.Printf("[Battle] 开局: 街机模式, 难度 %d", difficulty)
	}
	return s
}

// spawnPlayer 创建玩家飞船并应用元进度升级
func (s *BattleScene) spawnPlayer() (ecs.EntityID, error) {
	center := utils.NewVector2D(config.RoomOffsetX+config.RoomWidth/2, config.RoomOffsetY+config.RoomHeight/2)
	id, err := entities.NewPlayerShip(s.entityManager, center, s.boundsMode)
	if err != nil {
		return 0, err
	}

	progress := s.ctx.Progress
	player := ecs.MustGetComponent[*components.PlayerComponent](s.entityManager, id)
	health := ecs.MustGetComponent[*components.HealthComponent](s.entityManager, id)

	health.Max = config.ShipMaxHealth + progress.UpgradeLevel(game.UpgradeMaxHealth)
	health.Current = health.Max
	player.Damage = 1 + progress.UpgradeLevel(game.UpgradeDamage)
	player.FireRateBonus = 1 + 0.1*float64(progress.UpgradeLevel(game.UpgradeFireRate))
	player.SpeedBonus = 1 + 0.1*float64(progress.UpgradeLevel(game.UpgradeSpeed))

	return id, nil
}

// buildSystems 装配本局的系统管线
func (s *BattleScene) buildSystems() {
	em := s.entityManager
	gs := s.gameState
	audio := s.ctx.Audio

	s.updateSystems = []updateSystem{
		systems.NewInputSystem(em, gs, audio),
		systems.NewPlayerSystem(em),
		systems.NewEnemySystem(em, s.rng),
		systems.NewBossSystem(em, s.rng),
		systems.NewMovementSystem(em),
		systems.NewProjectileSystem(em),
		systems.NewPickupSystem(em),
		systems.NewParticleSystem(em),
		systems.NewLifetimeSystem(em),
		systems.NewCombatSystem(em, gs, audio, s.rng, s.boundsMode),
	}

	if s.ctx.GameConfig.Mode == config.ModeRogue {
		s.level = dungeon.GenerateLevel(s.ctx.LevelConfig, s.gameState.Level, gs.Difficulty, s.rng)
		s.roomSystem = systems.NewRoomSystem(em, gs, audio, s.level, s.ctx.EnemyStats, s.rng)
		s.updateSystems = append(s.updateSystems, s.roomSystem)
	} else {
		s.updateSystems = append(s.updateSystems, systems.NewWaveSystem(em, gs, s.ctx.EnemyStats, s.rng))
	}

	showMinimap := s.ctx.Settings.GetSettings().ShowMinimap
	s.renderSystem = systems.NewRenderSystem(em, s.level)
	s.hudSystem = systems.NewHUDRenderSystem(em, gs, s.level, showMinimap)
}

// Update 推进一帧
func (s *BattleScene) Update(deltaTime float64) {
	// 钳制单帧时间，防止窗口挂起后物理跳变
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	if s.gameState.Paused && !s.gameState.GameOver {
		// 暂停时只跑输入系统以响应解除暂停
		s.updateSystems[0].Update(deltaTime)
		return
	}

	for _, sys := range s.updateSystems {
		sys.Update(deltaTime)
	}
	s.entityManager.RemoveMarkedEntities()

	if s.gameState.GameOver {
		s.handleGameOver(deltaTime)
		return
	}
	if s.level != nil && s.level.IsComplete() {
		s.handleDescend(deltaTime)
	}
}

// handleGameOver 结算并延迟切到结算场景
func (s *BattleScene) handleGameOver(deltaTime float64) {
	if !s.finalized {
		s.finalized = true
		s.finalizeRun()
	}

	s.gameOverTimer += deltaTime
	if s.gameOverTimer >= 2.0 {
		s.ctx.SceneManager.SwitchTo(NewGameOverScene(s.ctx, s.gameState))
	}
}

// finalizeRun 把本局成绩写入各持久化管理器
func (s *BattleScene) finalizeRun() {
	gs := s.gameState

	wave := gs.Wave
	if s.ctx.GameConfig.Mode == config.ModeRogue {
		wave = gs.Level
	}
	if _, err := s.ctx.Highscores.Submit(gs.Score, wave, gs.Difficulty); err != nil {
		log.Printf("[Battle] 提交排行榜失败: %v", err)
	}

	if err := s.ctx.Achievements.RecordRun(gs.Score, gs.Stats); err != nil {
		log.Printf("[Battle] 保存成就失败: %v", err)
	}

	converted := s.ctx.Progress.ConvertRunCoins(gs.Coins)
	if err := s.ctx.Progress.AddCurrency(converted); err != nil {
		log.Printf("[Battle] 保存元进度失败: %v", err)
	}
	log.Printf("[Battle] 结算: 得分 %d, 金币 %d -> 货币 +%d", gs.Score, gs.Coins, converted)
}

// handleDescend Boss 层肃清后延迟进入下一层
func (s *BattleScene) handleDescend(deltaTime float64) {
	s.descendTimer += deltaTime
	if s.descendTimer < 2.0 {
		return
	}
	s.descendTimer = 0
	s.nextLevel()
}

// nextLevel 生成下一层地牢并重置房间相关状态
func (s *BattleScene) nextLevel() {
	s.gameState.Level++
	s.level = dungeon.GenerateLevel(s.ctx.LevelConfig, s.gameState.Level, s.gameState.Difficulty, s.rng)

	// 清掉上一层残留的非玩家实体
	systems.FlushProjectiles(s.entityManager)
	for _, id := range ecs.GetEntitiesWith1[*components.BehaviorComponent](s.entityManager) {
		if _, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok {
			continue
		}
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	// 玩家回到新层起始房中央
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)
		transform.Position = utils.NewVector2D(config.RoomOffsetX+config.RoomWidth/2, config.RoomOffsetY+config.RoomHeight/2)
		transform.Velocity = utils.Vector2D{}
	}

	// 替换房间系统引用的层，并给新层的当前房间布防
	for i, sys := range s.updateSystems {
		if _, ok := sys.(*systems.RoomSystem); ok {
			s.roomSystem = systems.NewRoomSystem(s.entityManager, s.gameState, s.ctx.Audio, s.level, s.ctx.EnemyStats, s.rng)
			s.updateSystems[i] = s.roomSystem
			break
		}
	}
	s.roomSystem.PopulateCurrentRoom()
	s.renderSystem.SetLevel(s.level)
	s.hudSystem.SetLevel(s.level)

	s.ctx.Audio.PlaySound(game.SoundDoor)
	log.Printf("[Battle] 进入第 %d 层", s.gameState.Level)
}

// Draw 渲染一帧
func (s *BattleScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.hudSystem.Draw(screen)

	if s.gameState.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", config.WindowWidth/2-24, config.WindowHeight/2)
	}
	if s.gameState.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", config.WindowWidth/2-32, config.WindowHeight/2)
	}
	if s.level != nil && s.level.IsComplete() && !s.gameState.GameOver {
		ebitenutil.DebugPrintAt(screen, "FLOOR CLEARED - DESCENDING...", config.WindowWidth/2-100, config.WindowHeight/2-40)
	}
}
