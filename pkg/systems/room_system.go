package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/dungeon"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/game"
	"github.com/gonewx/tolik/pkg/utils"
)

// RoomSystem 地牢模式的房间逻辑
// 负责房间肃清判定、门的穿越、换房时的实体重建
type RoomSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audioManager  *game.AudioManager
	level         *dungeon.Level
	enemyStats    *config.EnemyStatsConfig
	rng           *rand.Rand
}

// NewRoomSystem 创建房间系统
func NewRoomSystem(em *ecs.EntityManager, gs *game.GameState, am *game.AudioManager, level *dungeon.Level, enemyStats *config.EnemyStatsConfig, rng *rand.Rand) *RoomSystem {
	return &RoomSystem{
		entityManager: em,
		gameState:     gs,
		audioManager:  am,
		level:         level,
		enemyStats:    enemyStats,
		rng:           rng,
	}
}

// Level 返回当前地牢层
func (s *RoomSystem) Level() *dungeon.Level {
	return s.level
}

// Update 每帧检查房间肃清和门的穿越
func (s *RoomSystem) Update(deltaTime float64) {
	if s.gameState.GameOver {
		return
	}

	room := s.level.Current
	if room == nil {
		return
	}

	s.checkRoomCleared(room)
	s.checkDoorTransition(room)
}

// checkRoomCleared 战斗房间的敌对单位清零时肃清房间
func (s *RoomSystem) checkRoomCleared(room *dungeon.Room) {
	if room.Cleared || !room.IsCombatRoom() {
		return
	}
	if HostileCount(s.entityManager) > 0 {
		return
	}

	room.Clear()
	s.gameState.Stats.RoomsCleared++
	s.audioManager.PlaySound(game.SoundDoor)

	// 肃清奖励金币在房间中心散落
	center := utils.NewVector2D(config.RoomOffsetX+config.RoomWidth/2, config.RoomOffsetY+config.RoomHeight/2)
	reward := 2 + s.rng.Intn(3) + int(room.Difficulty)
	_ = entities.SpawnCoinBurst(s.entityManager, s.rng, center, reward)

	log.Printf("[Room] 肃清房间 %v", room.Pos)
}

// checkDoorTransition 玩家贴近打开的门时穿越到相邻房间
func (s *RoomSystem) checkDoorTransition(room *dungeon.Room) {
	playerID, _, ok := s.findPlayer()
	if !ok {
		return
	}
	transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, playerID)

	dir, touching := doorTouched(transform.Position)
	if !touching {
		return
	}
	door := room.GetDoor(dir)
	if door == nil || !door.Open {
		return
	}

	target := s.level.RoomAt(door.Target)
	if target == nil {
		return
	}
	s.transition(playerID, transform, dir, target)
}

// doorTouched 检查位置是否进入某个方向的门触发区
// 门开在每面墙的中段，要求玩家既贴近墙又在门的宽度范围内
func doorTouched(pos utils.Vector2D) (dungeon.Direction, bool) {
	const doorHalfWidth = 60.0
	centerX := float64(config.RoomOffsetX + config.RoomWidth/2)
	centerY := float64(config.RoomOffsetY + config.RoomHeight/2)

	nearCenterX := pos.X > centerX-doorHalfWidth && pos.X < centerX+doorHalfWidth
	nearCenterY := pos.Y > centerY-doorHalfWidth && pos.Y < centerY+doorHalfWidth

	switch {
	case nearCenterX && pos.Y < config.RoomOffsetY+config.DoorThreshold:
		return dungeon.DirTop, true
	case nearCenterX && pos.Y > config.RoomOffsetY+config.RoomHeight-config.DoorThreshold:
		return dungeon.DirBottom, true
	case nearCenterY && pos.X < config.RoomOffsetX+config.DoorThreshold:
		return dungeon.DirLeft, true
	case nearCenterY && pos.X > config.RoomOffsetX+config.RoomWidth-config.DoorThreshold:
		return dungeon.DirRight, true
	}
	return 0, false
}

// transition 执行换房
// 清空上个房间的所有非玩家实体，把玩家放到对侧入口，
// 进入未肃清的战斗房间时重新布防；首次进入商店/宝藏房上货
func (s *RoomSystem) transition(playerID ecs.EntityID, transform *components.TransformComponent, dir dungeon.Direction, target *dungeon.Room) {
	FlushProjectiles(s.entityManager)
	s.despawnRoomEntities(playerID)

	firstVisit := !target.Visited
	s.level.EnterRoom(target)
	transform.Position = entryPosition(dir.Opposite())
	transform.Velocity = utils.Vector2D{}

	switch {
	case target.IsCombatRoom() && !target.Cleared:
		s.populateRoom(target)
		// 进房短暂无敌，避免落点正好压在敌人身上
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID); ok {
			player.InvulnerableTimer = 1.0
		}
	case target.Type == dungeon.RoomShop && firstVisit:
		s.stockShop()
	case target.Type == dungeon.RoomTreasure && firstVisit:
		s.spawnTreasure()
	}

	s.audioManager.PlaySound(game.SoundDoor)
	log.Printf("[Room] 进入房间 %v (%s)", target.Pos, target.Type)
}

// stockShop 首次进入商店时摆出货架商品
// 商品只上一次货，没买的商品离开后不再出现
func (s *RoomSystem) stockShop() {
	if _, err := entities.SpawnShopItems(s.entityManager, s.rng, 3); err != nil {
		log.Printf("[Room] 上架商品失败: %v", err)
	}
}

// spawnTreasure 首次进入宝藏房时散落金币，概率附赠一件增益道具
func (s *RoomSystem) spawnTreasure() {
	count := 5 + s.rng.Intn(6)
	values := []int{components.CoinValueSmall, components.CoinValueMedium, components.CoinValueLarge}
	for i := 0; i < count; i++ {
		pos := s.randomRoomPosition()
		value := values[s.rng.Intn(len(values))]
		if _, err := entities.NewCoin(s.entityManager, s.rng, pos, value); err != nil {
			log.Printf("[Room] 生成宝藏金币失败: %v", err)
		}
	}

	if s.rng.Float64() < 0.5 {
		center := utils.NewVector2D(config.RoomOffsetX+config.RoomWidth/2, config.RoomOffsetY+config.RoomHeight/2)
		kind := entities.RandomPowerUpType(s.rng)
		if _, err := entities.NewPowerUp(s.entityManager, kind, center); err != nil {
			log.Printf("[Room] 生成宝藏道具失败: %v", err)
		}
	}
}

// randomRoomPosition 房间内与边缘保持间距的随机点
func (s *RoomSystem) randomRoomPosition() utils.Vector2D {
	const margin = 100.0
	x := config.RoomOffsetX + margin + s.rng.Float64()*(config.RoomWidth-2*margin)
	y := config.RoomOffsetY + margin + s.rng.Float64()*(config.RoomHeight-2*margin)
	return utils.NewVector2D(x, y)
}

// entryPosition 从指定方向的门进入时玩家的落点
func entryPosition(entrySide dungeon.Direction) utils.Vector2D {
	centerX := float64(config.RoomOffsetX + config.RoomWidth/2)
	centerY := float64(config.RoomOffsetY + config.RoomHeight/2)

	switch entrySide {
	case dungeon.DirTop:
		return utils.NewVector2D(centerX, config.RoomOffsetY+config.DoorEntryOffset)
	case dungeon.DirBottom:
		return utils.NewVector2D(centerX, config.RoomOffsetY+config.RoomHeight-config.DoorEntryOffset)
	case dungeon.DirLeft:
		return utils.NewVector2D(config.RoomOffsetX+config.DoorEntryOffset, centerY)
	default:
		return utils.NewVector2D(config.RoomOffsetX+config.RoomWidth-config.DoorEntryOffset, centerY)
	}
}

// despawnRoomEntities 移除上个房间遗留的所有非玩家实体
func (s *RoomSystem) despawnRoomEntities(playerID ecs.EntityID) {
	for _, id := range ecs.GetEntitiesWith1[*components.BehaviorComponent](s.entityManager) {
		if id == playerID {
			continue
		}
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
}

// populateRoom 给未肃清的战斗房间布防
// 普通房间混合小行星和敌人，Boss 房生成 Boss
func (s *RoomSystem) populateRoom(room *dungeon.Room) {
	if room.Type == dungeon.RoomBoss {
		center := utils.NewVector2D(config.RoomOffsetX+config.RoomWidth/2, config.RoomOffsetY+config.RoomHeight*0.3)
		if _, err := entities.NewBoss(s.entityManager, s.rng, s.level.Number, center); err != nil {
			log.Printf("[Room] 生成 Boss 失败: %v", err)
		}
		return
	}

	asteroidCount := (room.EnemyCount + 1) / 2
	enemyCount := room.EnemyCount / 2

	for i := 0; i < asteroidCount; i++ {
		if _, err := entities.NewAsteroidAtRandomEdge(s.entityManager, s.rng, s.gameState.Difficulty, components.BoundsClamp); err != nil {
			log.Printf("[Room] 生成小行星失败: %v", err)
		}
	}

	for _, pos := range room.SpawnPositions(s.rng, enemyCount) {
		kind := entities.RandomEnemyKind(s.rng, room.Difficulty)
		if _, err := entities.NewEnemy(s.entityManager, s.enemyStats, s.rng, kind, pos); err != nil {
			log.Printf("[Room] 生成敌人失败: %v", err)
		}
	}
}

// PopulateCurrentRoom 给当前房间布防（进入新一层时由场景调用）
func (s *RoomSystem) PopulateCurrentRoom() {
	room := s.level.Current
	if room != nil && room.IsCombatRoom() && !room.Cleared {
		s.populateRoom(room)
	}
}

func (s *RoomSystem) findPlayer() (ecs.EntityID, *components.PlayerComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		return id, ecs.MustGetComponent[*components.PlayerComponent](s.entityManager, id), true
	}
	return 0, nil, false
}
