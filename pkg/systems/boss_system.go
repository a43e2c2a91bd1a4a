package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/utils"
)

// BossSystem 驱动 Boss 的移动和攻击模式
// 所有 Boss 缓慢追踪玩家，攻击模式按种类区分：
// 行星之王放径向弹幕，虚空猎手打瞄准三连发，星辰毁灭者两者交替
type BossSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(em *ecs.EntityManager, rng *rand.Rand) *BossSystem {
	return &BossSystem{
		entityManager: em,
		rng:           rng,
	}
}

// Update 推进所有 Boss 的行为
func (s *BossSystem) Update(deltaTime float64) {
	playerPos, hasPlayer := findPlayerPosition(s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.BossComponent, *components.TransformComponent](s.entityManager) {
		boss := ecs.MustGetComponent[*components.BossComponent](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		s.move(boss, transform, playerPos, hasPlayer, deltaTime)

		boss.AttackTimer -= deltaTime
		if boss.AttackTimer <= 0 && hasPlayer {
			boss.AttackTimer = boss.AttackCooldown
			s.attack(boss, transform, playerPos)
		}
	}
}

// move 缓慢追踪玩家，周期性加入侧向漂移避免走位呆板
func (s *BossSystem) move(boss *components.BossComponent, transform *components.TransformComponent, playerPos utils.Vector2D, hasPlayer bool, deltaTime float64) {
	boss.MoveTimer -= deltaTime
	if boss.MoveTimer <= 0 {
		boss.MoveTimer = 1.5 + s.rng.Float64()
		if hasPlayer {
			dir := playerPos.Sub(transform.Position).Normalize()
			// 叠加垂直分量，形成弧线接近
			side := utils.NewVector2D(-dir.Y, dir.X).Mul((s.rng.Float64() - 0.5) * 1.2)
			transform.Velocity = dir.Add(side).Normalize().Mul(config.BossSpeed)
		} else {
			transform.Velocity = utils.VectorFromAngle(s.rng.Float64()*2*math.Pi, config.BossSpeed*0.5)
		}
	}
}

// attack 发动一轮攻击
func (s *BossSystem) attack(boss *components.BossComponent, transform *components.TransformComponent, playerPos utils.Vector2D) {
	switch boss.Kind {
	case components.BossAsteroidKing:
		s.radialBurst(boss, transform)
	case components.BossVoidHunter:
		s.aimedVolley(boss, transform, playerPos)
	default: // BossStarDestroyer 交替使用两种模式
		if s.rng.Intn(2) == 0 {
			s.radialBurst(boss, transform)
		} else {
			s.aimedVolley(boss, transform, playerPos)
		}
	}
}

// radialBurst 全方向均匀弹幕，起始角随机旋转避免固定安全角
func (s *BossSystem) radialBurst(boss *components.BossComponent, transform *components.TransformComponent) {
	count := config.BossProjectileCount + boss.Level*2
	offset := s.rng.Float64() * 2 * math.Pi
	for i := 0; i < count; i++ {
		angle := offset + 2*math.Pi*float64(i)/float64(count)
		vel := utils.VectorFromAngle(angle, config.BossProjectileSpeed)
		_, _ = entities.NewEnemyShot(s.entityManager, transform.Position, vel, boss.Damage)
	}
}

// aimedVolley 朝玩家方向的扇形三连发
func (s *BossSystem) aimedVolley(boss *components.BossComponent, transform *components.TransformComponent, playerPos utils.Vector2D) {
	to := playerPos.Sub(transform.Position)
	base := math.Atan2(to.Y, to.X)
	for _, spread := range []float64{-0.25, 0, 0.25} {
		vel := utils.VectorFromAngle(base+spread, config.BossProjectileSpeed*1.3)
		_, _ = entities.NewEnemyShot(s.entityManager, transform.Position, vel, boss.Damage)
	}
}
