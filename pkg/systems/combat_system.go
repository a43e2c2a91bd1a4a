package systems

import (
	"math/rand"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/game"
)

// CombatSystem 碰撞判定和伤害结算
//
// 每帧按固定优先级处理碰撞对，保证结算顺序与帧内遍历顺序无关：
//  1. 玩家弹体 × 小行星/敌人
//  2. 玩家 × 敌对接触（小行星、敌人、Boss）
//  3. 玩家弹体 × Boss
//  4. 敌方弹体 × 玩家
//  5. 玩家 × 拾取物
//
// 本帧已死亡的实体不再参与后续碰撞对
type CombatSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audioManager  *game.AudioManager
	rng           *rand.Rand
	boundsMode    components.BoundsMode // 分裂产物继承的边界模式

	// 本帧已结算死亡的实体，避免重复结算
	dead map[ecs.EntityID]struct{}
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(em *ecs.EntityManager, gs *game.GameState, am *game.AudioManager, rng *rand.Rand, boundsMode components.BoundsMode) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		gameState:     gs,
		audioManager:  am,
		rng:           rng,
		boundsMode:    boundsMode,
		dead:          make(map[ecs.EntityID]struct{}),
	}
}

// Update 执行本帧的全部碰撞结算
func (s *CombatSystem) Update(deltaTime float64) {
	if s.gameState.GameOver {
		return
	}

	clear(s.dead)

	s.playerShotsVsTargets()
	s.playerVsHostiles()
	s.playerShotsVsBoss()
	s.enemyShotsVsPlayer()
	s.playerVsPickups()
}

// alive 实体未被本帧结算死亡且仍然存在
func (s *CombatSystem) alive(id ecs.EntityID) bool {
	if _, gone := s.dead[id]; gone {
		return false
	}
	return s.entityManager.IsAlive(id)
}

// kill 标记实体本帧死亡并延迟销毁
func (s *CombatSystem) kill(id ecs.EntityID) {
	s.dead[id] = struct{}{}
	s.entityManager.DestroyEntity(id)
}

// collides 圆形包围盒碰撞测试
// 先用轴对齐包围盒粗筛，再做平方距离精判，避免开方
func (s *CombatSystem) collides(a, b ecs.EntityID) bool {
	ta, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, a)
	if !ok {
		return false
	}
	tb, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, b)
	if !ok {
		return false
	}
	sa, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, a)
	if !ok {
		return false
	}
	sb, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, b)
	if !ok {
		return false
	}

	sum := sa.BoundingRadius + sb.BoundingRadius
	dx := ta.Position.X - tb.Position.X
	if dx > sum || dx < -sum {
		return false
	}
	dy := ta.Position.Y - tb.Position.Y
	if dy > sum || dy < -sum {
		return false
	}
	return dx*dx+dy*dy < sum*sum
}

// playerShotsVsTargets 玩家弹体命中小行星和敌人
func (s *CombatSystem) playerShotsVsTargets() {
	shots := s.entitiesOfBehavior(components.BehaviorPlayerShot)
	targets := append(s.entitiesOfBehavior(components.BehaviorAsteroid), s.entitiesOfBehavior(components.BehaviorEnemy)...)

	for _, shotID := range shots {
		for _, targetID := range targets {
			if !s.alive(shotID) || !s.alive(targetID) {
				continue
			}
			if !s.shotHits(shotID, targetID) {
				continue
			}
			s.applyShotDamage(shotID, targetID)
		}
	}
}

// shotHits 弹体是否命中目标（穿透弹不重复命中同一目标）
func (s *CombatSystem) shotHits(shotID, targetID ecs.EntityID) bool {
	proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, shotID)
	if proj.Piercing && proj.HasHit(targetID) {
		return false
	}
	return s.collides(shotID, targetID)
}

// applyShotDamage 结算一次弹体命中
func (s *CombatSystem) applyShotDamage(shotID, targetID ecs.EntityID) {
	proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, shotID)

	if proj.Piercing {
		proj.MarkHit(targetID)
	} else {
		s.kill(shotID)
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, targetID)
	if !ok {
		return
	}
	if !health.Damage(proj.Damage) {
		// 受击未死，敌人闪白
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, targetID); ok {
			enemy.FlashTimer = 0.1
		}
		return
	}

	behavior := ecs.MustGetComponent[*components.BehaviorComponent](s.entityManager, targetID)
	switch behavior.Type {
	case components.BehaviorAsteroid:
		s.destroyAsteroid(targetID)
	case components.BehaviorEnemy:
		s.destroyEnemy(targetID)
	}
}

// destroyAsteroid 小行星被击毁：分裂、计分、概率掉落道具
func (s *CombatSystem) destroyAsteroid(id ecs.EntityID) {
	transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)
	asteroid := ecs.MustGetComponent[*components.AsteroidComponent](s.entityManager, id)
	shape := ecs.MustGetComponent[*components.ShapeComponent](s.entityManager, id)

	s.kill(id)
	s.addScore(asteroid.ScoreValue())
	s.gameState.Stats.AsteroidsDestroyed++

	_, _ = entities.SplitAsteroid(s.entityManager, s.rng, transform.Position, transform.Velocity, asteroid.Size, s.boundsMode)

	entities.SpawnExplosionBurst(s.entityManager, s.rng, transform.Position, 6+int(asteroid.Size)*3, shape.Color)

	if s.rng.Float64() < config.PowerUpSpawnChance {
		kind := entities.RandomPowerUpType(s.rng)
		_, _ = entities.NewPowerUp(s.entityManager, kind, transform.Position)
	}

	if asteroid.Size > components.AsteroidSizeSmall {
		s.audioManager.PlaySound(game.SoundExplosion)
	} else {
		s.audioManager.PlaySound(game.SoundExplosionSmall)
	}
}

// destroyEnemy 敌人被击杀：计分、概率掉金币
func (s *CombatSystem) destroyEnemy(id ecs.EntityID) {
	transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)
	enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
	shape := ecs.MustGetComponent[*components.ShapeComponent](s.entityManager, id)

	s.kill(id)
	s.addScore(enemy.ScoreValue)
	s.gameState.Stats.EnemiesKilled++

	entities.SpawnExplosionBurst(s.entityManager, s.rng, transform.Position, 10, shape.Color)

	if s.rng.Float64() < 0.3 {
		_, _ = entities.NewCoin(s.entityManager, s.rng, transform.Position, components.CoinValueSmall)
	}

	s.audioManager.PlaySound(game.SoundExplosionSmall)
}

// playerVsHostiles 玩家与敌对单位的接触伤害
func (s *CombatSystem) playerVsHostiles() {
	playerID, player, ok := s.findPlayer()
	if !ok || !player.CanBeHit() {
		return
	}

	hostiles := s.entitiesOfBehavior(components.BehaviorAsteroid)
	hostiles = append(hostiles, s.entitiesOfBehavior(components.BehaviorEnemy)...)
	hostiles = append(hostiles, s.entitiesOfBehavior(components.BehaviorBoss)...)

	for _, hostileID := range hostiles {
		if !s.alive(hostileID) || !s.alive(playerID) {
			return
		}
		if !s.collides(playerID, hostileID) {
			continue
		}

		damage := 1
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, hostileID); ok {
			damage = enemy.Damage
		} else if boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, hostileID); ok {
			damage = boss.Damage
		}
		s.damagePlayer(playerID, player, damage)
		return // 每帧至多结算一次接触伤害
	}
}

// playerShotsVsBoss 玩家弹体命中 Boss
func (s *CombatSystem) playerShotsVsBoss() {
	bosses := s.entitiesOfBehavior(components.BehaviorBoss)
	if len(bosses) == 0 {
		return
	}

	for _, shotID := range s.entitiesOfBehavior(components.BehaviorPlayerShot) {
		for _, bossID := range bosses {
			if !s.alive(shotID) || !s.alive(bossID) {
				continue
			}
			if !s.shotHits(shotID, bossID) {
				continue
			}

			proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, shotID)
			if proj.Piercing {
				proj.MarkHit(bossID)
			} else {
				s.kill(shotID)
			}

			health := ecs.MustGetComponent[*components.HealthComponent](s.entityManager, bossID)
			if health.Damage(proj.Damage) {
				s.destroyBoss(bossID)
			}
		}
	}
}

// destroyBoss Boss 被击败：大量计分、金币雨
func (s *CombatSystem) destroyBoss(id ecs.EntityID) {
	transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)
	shape := ecs.MustGetComponent[*components.ShapeComponent](s.entityManager, id)

	s.kill(id)
	s.addScore(config.BossKillScore)
	s.gameState.Stats.BossesKilled++

	entities.SpawnExplosionBurst(s.entityManager, s.rng, transform.Position, 40, shape.Color)

	drop := config.BossCoinDropMin + s.rng.Intn(config.BossCoinDropMax-config.BossCoinDropMin+1)
	_ = entities.SpawnCoinBurst(s.entityManager, s.rng, transform.Position, drop)

	s.audioManager.PlaySound(game.SoundExplosion)
}

// enemyShotsVsPlayer 敌方弹体命中玩家
func (s *CombatSystem) enemyShotsVsPlayer() {
	playerID, player, ok := s.findPlayer()
	if !ok {
		return
	}

	for _, shotID := range s.entitiesOfBehavior(components.BehaviorEnemyShot) {
		if !s.alive(shotID) || !s.alive(playerID) {
			return
		}
		if !s.collides(shotID, playerID) {
			continue
		}

		proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, shotID)
		s.kill(shotID) // 弹体命中护盾或无敌目标也消耗掉

		if player.CanBeHit() {
			s.damagePlayer(playerID, player, proj.Damage)
		}
	}
}

// damagePlayer 玩家受击：扣血、进入无敌、死亡时结束本局
func (s *CombatSystem) damagePlayer(playerID ecs.EntityID, player *components.PlayerComponent, damage int) {
	health := ecs.MustGetComponent[*components.HealthComponent](s.entityManager, playerID)
	transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, playerID)

	s.gameState.Stats.DamageTaken += damage
	s.audioManager.PlaySound(game.SoundHit)

	if health.Damage(damage) {
		shape := ecs.MustGetComponent[*components.ShapeComponent](s.entityManager, playerID)
		entities.SpawnExplosionBurst(s.entityManager, s.rng, transform.Position, 30, shape.Color)
		s.kill(playerID)
		s.gameState.EndRun()
		return
	}

	player.InvulnerableTimer = config.ShipInvulnerabilityTime
	player.BlinkTimer = 0
	player.Visible = false
}

// playerVsPickups 玩家拾取道具和金币
func (s *CombatSystem) playerVsPickups() {
	playerID, player, ok := s.findPlayer()
	if !ok {
		return
	}

	for _, pickupID := range ecs.GetEntitiesWith1[*components.PickupComponent](s.entityManager) {
		if !s.alive(pickupID) || !s.alive(playerID) {
			return
		}
		if !s.collides(playerID, pickupID) {
			continue
		}

		pickup := ecs.MustGetComponent[*components.PickupComponent](s.entityManager, pickupID)

		switch pickup.Kind {
		case components.PickupCoin:
			s.kill(pickupID)
			s.gameState.AddCoins(pickup.CoinValue)
			s.audioManager.PlaySound(game.SoundCoin)
		case components.PickupPowerUp:
			s.kill(pickupID)
			s.applyPowerUp(playerID, player, pickup)
			s.gameState.Stats.PowerUpsCollected++
			s.audioManager.PlaySound(game.SoundPowerUp)
		case components.PickupShopItem:
			// 余额不足时商品留在货架上
			if !s.gameState.SpendCoins(pickup.Price) {
				continue
			}
			s.kill(pickupID)
			s.applyShopEffect(playerID, player, pickup)
			s.audioManager.PlaySound(game.SoundCoin)
		}
	}
}

// applyShopEffect 应用购买的商品效果
// 属性类商品永久作用于本局，护盾/三向射击走限时增益
func (s *CombatSystem) applyShopEffect(playerID ecs.EntityID, player *components.PlayerComponent, pickup *components.PickupComponent) {
	switch pickup.Effect {
	case components.ShopEffectHeal:
		health := ecs.MustGetComponent[*components.HealthComponent](s.entityManager, playerID)
		health.Heal(2)
	case components.ShopEffectMaxHealth:
		health := ecs.MustGetComponent[*components.HealthComponent](s.entityManager, playerID)
		health.Max += 2
		health.Heal(2)
	case components.ShopEffectDamage:
		player.Damage++
	case components.ShopEffectFireRate:
		player.FireRateBonus += 0.2
	case components.ShopEffectSpeed:
		player.SpeedBonus += 0.15
	case components.ShopEffectShield:
		player.ActivatePowerUp(components.PowerUpShield, pickup.Duration)
	case components.ShopEffectTripleShot:
		player.ActivatePowerUp(components.PowerUpTripleShot, pickup.Duration)
	}
}

// applyPowerUp 应用增益道具效果
// extra_life 立即回复一颗整心，其余是限时增益
func (s *CombatSystem) applyPowerUp(playerID ecs.EntityID, player *components.PlayerComponent, pickup *components.PickupComponent) {
	if pickup.PowerUp == components.PowerUpExtraLife {
		health := ecs.MustGetComponent[*components.HealthComponent](s.entityManager, playerID)
		health.Heal(2)
		return
	}
	player.ActivatePowerUp(pickup.PowerUp, pickup.Duration)
}

// addScore 按难度倍率换算后计分
func (s *CombatSystem) addScore(base int) {
	multiplier := config.DifficultyScoreMultiplier[s.gameState.Difficulty]
	s.gameState.AddScore(int(float64(base) * multiplier))
}

// findPlayer 定位玩家实体
func (s *CombatSystem) findPlayer() (ecs.EntityID, *components.PlayerComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		if !s.alive(id) {
			continue
		}
		return id, ecs.MustGetComponent[*components.PlayerComponent](s.entityManager, id), true
	}
	return 0, nil, false
}

// entitiesOfBehavior 按行为标签筛选存活实体
func (s *CombatSystem) entitiesOfBehavior(behaviorType components.BehaviorType) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.BehaviorComponent](s.entityManager) {
		if _, gone := s.dead[id]; gone {
			continue
		}
		behavior := ecs.MustGetComponent[*components.BehaviorComponent](s.entityManager, id)
		if behavior.Type == behaviorType {
			out = append(out, id)
		}
	}
	return out
}

// HostileCount 当前场上敌对单位数量（小行星+敌人+Boss）
// 房间肃清判定和街机波次推进都用它
func HostileCount(em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BehaviorComponent](em) {
		behavior := ecs.MustGetComponent[*components.BehaviorComponent](em, id)
		switch behavior.Type {
		case components.BehaviorAsteroid, components.BehaviorEnemy, components.BehaviorBoss:
			n++
		}
	}
	return n
}
