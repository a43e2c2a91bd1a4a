package entities

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/utils"
)

// bossKindForLevel 按层数轮换 Boss 种类
func bossKindForLevel(level int) components.BossKind {
	switch (level - 1) % 3 {
	case 0:
		return components.BossAsteroidKing
	case 1:
		return components.BossVoidHunter
	default:
		return components.BossStarDestroyer
	}
}

// NewBoss 创建 Boss 实体
// 生命值随层数增长: base + level × perLevel
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数源
//   - level: 当前层数（从 1 开始）
//   - pos: 出生位置
//
// 返回:
//   - ecs.EntityID: 创建的 Boss 实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewBoss(em *ecs.EntityManager, rng *rand.Rand, level int, pos utils.Vector2D) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if level < 1 {
		return 0, fmt.Errorf("boss level must be >= 1, got %d", level)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{Position: pos})

	kind := bossKindForLevel(level)
	var clr color.RGBA
	switch kind {
	case components.BossAsteroidKing:
		clr = color.RGBA{R: 190, G: 140, B: 90, A: 255}
	case components.BossVoidHunter:
		clr = color.RGBA{R: 130, G: 80, B: 200, A: 255}
	default:
		clr = color.RGBA{R: 220, G: 70, B: 70, A: 255}
	}
	vertices := utils.RandomPolygon(rng, 10, 14, 48, 0.2)
	em.AddComponent(entityID, components.NewShapeComponent(vertices, clr))

	health := config.BossHealthBase + level*config.BossHealthPerLevel
	em.AddComponent(entityID, &components.HealthComponent{
		Current: health,
		Max:     health,
	})

	em.AddComponent(entityID, &components.BoundsComponent{Mode: components.BoundsClamp})

	em.AddComponent(entityID, &components.BossComponent{
		Kind:           kind,
		Level:          level,
		Damage:         config.BossDamage,
		AttackCooldown: config.BossAttackCooldown,
		AttackTimer:    config.BossAttackCooldown,
	})

	em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorBoss})

	return entityID, nil
}
