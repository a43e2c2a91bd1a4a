package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/utils"
)

// EnemySystem 驱动敌人的行为AI
// 每种行为模式决定敌人如何写自己的速度向量，射手类额外生成弹体
type EnemySystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewEnemySystem 创建敌人AI系统
func NewEnemySystem(em *ecs.EntityManager, rng *rand.Rand) *EnemySystem {
	return &EnemySystem{
		entityManager: em,
		rng:           rng,
	}
}

// Update 推进所有敌人的行为
func (s *EnemySystem) Update(deltaTime float64) {
	playerPos, hasPlayer := findPlayerPosition(s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.TransformComponent](s.entityManager) {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		if enemy.FlashTimer > 0 {
			enemy.FlashTimer -= deltaTime
		}
		enemy.BehaviorTimer -= deltaTime

		switch enemy.Behavior {
		case components.EnemyFlyRandom:
			s.flyRandom(enemy, transform, 0.6)
		case components.EnemyWander:
			s.flyRandom(enemy, transform, 1.5)
		case components.EnemyChase:
			if hasPlayer {
				s.chase(enemy, transform, playerPos)
			}
		case components.EnemyHop:
			s.hop(enemy, transform, playerPos, hasPlayer)
		case components.EnemyCharge:
			s.charge(enemy, transform, playerPos, hasPlayer)
		case components.EnemyShoot:
			s.shoot(enemy, transform, playerPos, hasPlayer, deltaTime)
		}
	}
}

// findPlayerPosition 定位玩家飞船
func findPlayerPosition(em *ecs.EntityManager) (utils.Vector2D, bool) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](em)
	if len(ids) == 0 {
		return utils.Vector2D{}, false
	}
	transform := ecs.MustGetComponent[*components.TransformComponent](em, ids[0])
	return transform.Position, true
}

// flyRandom 周期性换一个随机方向直飞
func (s *EnemySystem) flyRandom(enemy *components.EnemyComponent, transform *components.TransformComponent, interval float64) {
	if enemy.BehaviorTimer > 0 {
		return
	}
	enemy.BehaviorTimer = interval * (0.5 + s.rng.Float64())
	transform.Velocity = utils.VectorFromAngle(s.rng.Float64()*2*math.Pi, enemy.Speed)
}

// chase 持续朝玩家方向移动
func (s *EnemySystem) chase(enemy *components.EnemyComponent, transform *components.TransformComponent, playerPos utils.Vector2D) {
	dir := playerPos.Sub(transform.Position).Normalize()
	transform.Velocity = dir.Mul(enemy.Speed)
}

// hop 跳跃式移动：短促冲向玩家方向，然后原地停顿
func (s *EnemySystem) hop(enemy *components.EnemyComponent, transform *components.TransformComponent, playerPos utils.Vector2D, hasPlayer bool) {
	if enemy.BehaviorTimer > 0 {
		// 跳跃后半段急减速，形成落地停顿
		transform.Velocity = transform.Velocity.Mul(0.9)
		return
	}
	enemy.BehaviorTimer = 0.8 + s.rng.Float64()*0.6

	angle := s.rng.Float64() * 2 * math.Pi
	if hasPlayer {
		// 大体朝玩家跳，带散布
		to := playerPos.Sub(transform.Position)
		angle = math.Atan2(to.Y, to.X) + (s.rng.Float64()-0.5)*1.2
	}
	transform.Velocity = utils.VectorFromAngle(angle, enemy.Speed)
}

// charge 蓄力冲锋：平时缓慢游荡，冷却结束后向玩家当前位置直线冲刺
func (s *EnemySystem) charge(enemy *components.EnemyComponent, transform *components.TransformComponent, playerPos utils.Vector2D, hasPlayer bool) {
	if enemy.Charging {
		if enemy.BehaviorTimer <= 0 {
			enemy.Charging = false
			enemy.BehaviorTimer = 1.2 + s.rng.Float64()
		}
		return
	}

	if enemy.BehaviorTimer > 0 {
		// 游荡阶段，低速随机移动
		if transform.Velocity.MagnitudeSquared() < 1 {
			transform.Velocity = utils.VectorFromAngle(s.rng.Float64()*2*math.Pi, enemy.Speed*0.2)
		}
		return
	}

	if !hasPlayer {
		enemy.BehaviorTimer = 0.5
		return
	}

	// 冲锋锁定发动瞬间的玩家位置，不追踪
	dir := playerPos.Sub(transform.Position).Normalize()
	transform.Velocity = dir.Mul(enemy.Speed)
	enemy.Charging = true
	enemy.BehaviorTimer = 0.7
}

// shoot 射手：与玩家保持距离，周期性朝玩家开火
func (s *EnemySystem) shoot(enemy *components.EnemyComponent, transform *components.TransformComponent, playerPos utils.Vector2D, hasPlayer bool, deltaTime float64) {
	if !hasPlayer {
		transform.Velocity = utils.Vector2D{}
		return
	}

	to := playerPos.Sub(transform.Position)
	dist := to.Magnitude()

	// 距离保持：太近后退，太远靠近
	const preferred = 260.0
	switch {
	case dist < preferred*0.7:
		transform.Velocity = to.Normalize().Mul(-enemy.Speed)
	case dist > preferred*1.3:
		transform.Velocity = to.Normalize().Mul(enemy.Speed)
	default:
		transform.Velocity = transform.Velocity.Mul(0.9)
	}

	enemy.ShootCooldown -= deltaTime
	if enemy.ShootCooldown > 0 {
		return
	}
	enemy.ShootCooldown = enemy.ShootDelay

	vel := to.Normalize().Mul(180)
	_, _ = entities.NewEnemyShot(s.entityManager, transform.Position, vel, enemy.Damage)
}
