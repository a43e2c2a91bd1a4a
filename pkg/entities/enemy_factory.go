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

// behaviorFromID 把配置表中的行为ID映射到行为枚举
func behaviorFromID(id string) (components.EnemyBehavior, error) {
	switch id {
	case "fly_random":
		return components.EnemyFlyRandom, nil
	case "chase":
		return components.EnemyChase, nil
	case "wander":
		return components.EnemyWander, nil
	case "hop":
		return components.EnemyHop, nil
	case "charge":
		return components.EnemyCharge, nil
	case "shoot":
		return components.EnemyShoot, nil
	default:
		return 0, fmt.Errorf("unknown enemy behavior %q", id)
	}
}

// NewEnemy 按属性表创建一个敌人实体
//
// 参数:
//   - em: 实体管理器
//   - statsCfg: 敌人属性配置表
//   - rng: 随机数源
//   - kind: 敌人种类ID（config.EnemyFly 等）
//   - pos: 出生位置
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，如果失败返回 0
//   - error: 种类未知或行为ID非法时返回错误
func NewEnemy(em *ecs.EntityManager, statsCfg *config.EnemyStatsConfig, rng *rand.Rand, kind string, pos utils.Vector2D) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if statsCfg == nil {
		return 0, fmt.Errorf("enemy stats config cannot be nil")
	}

	stats, ok := statsCfg.Get(kind)
	if !ok {
		return 0, fmt.Errorf("unknown enemy kind %q", kind)
	}
	behavior, err := behaviorFromID(stats.Behavior)
	if err != nil {
		return 0, err
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{Position: pos})

	// 外形用不规则多边形，配色来自属性表
	radius := stats.Size / 2
	vertices := utils.RandomPolygon(rng, 6, 9, radius, 0.25)
	clr := color.RGBA{R: uint8(stats.Color[0]), G: uint8(stats.Color[1]), B: uint8(stats.Color[2]), A: 255}
	em.AddComponent(entityID, components.NewShapeComponent(vertices, clr))

	em.AddComponent(entityID, &components.HealthComponent{
		Current: stats.Health,
		Max:     stats.Health,
	})

	em.AddComponent(entityID, &components.BoundsComponent{Mode: components.BoundsClamp})

	em.AddComponent(entityID, &components.EnemyComponent{
		Kind:       kind,
		Behavior:   behavior,
		Speed:      stats.Speed,
		Damage:     stats.Damage,
		ScoreValue: stats.Score,
		// 出生时行为计时器错开，避免同房敌人同步行动
		BehaviorTimer: rng.Float64(),
		ShootDelay:    1.5 + rng.Float64(),
	})

	em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorEnemy})

	return entityID, nil
}

// RandomEnemyKind 按房间难度挑选敌人种类
// 难度低时只出基础敌人，难度高时强力敌人进入候选池
func RandomEnemyKind(rng *rand.Rand, difficulty float64) string {
	pool := []string{config.EnemyFly, config.EnemySpider}
	if difficulty >= 1.3 {
		pool = append(pool, config.EnemyBlob, config.EnemyHopper)
	}
	if difficulty >= 1.8 {
		pool = append(pool, config.EnemyShooter)
	}
	if difficulty >= 2.3 {
		pool = append(pool, config.EnemyCharger)
	}
	return pool[rng.Intn(len(pool))]
}
