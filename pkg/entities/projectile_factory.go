package entities

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/utils"
)

// bulletVertices 子弹的小菱形轮廓
func bulletVertices(size float64) []utils.Vector2D {
	return []utils.Vector2D{
		{X: size, Y: 0},
		{X: 0, Y: size * 0.6},
		{X: -size, Y: 0},
		{X: 0, Y: -size * 0.6},
	}
}

// NewPlayerShot 创建玩家子弹实体
// 子弹沿发射角度以恒定速度直线飞行，超出存在时间或射程后消失
//
// 参数:
//   - em: 实体管理器
//   - pos: 发射位置（通常是船头）
//   - angle: 发射角度（弧度）
//   - damage: 单发伤害
//   - piercing: 是否穿透（穿透弹命中后不消失，但不会重复伤害同一目标）
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewPlayerShot(em *ecs.EntityManager, pos utils.Vector2D, angle float64, damage int, piercing bool) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Velocity: utils.VectorFromAngle(angle, config.BulletSpeed),
		Angle:    angle,
	})

	em.AddComponent(entityID, components.NewShapeComponent(bulletVertices(5), color.RGBA{R: 255, G: 255, B: 180, A: 255}))

	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: config.BulletLifetime,
	})

	proj := &components.ProjectileComponent{
		Damage:   damage,
		MaxRange: config.BulletSpeed * config.BulletLifetime,
		Origin:   pos,
		Piercing: piercing,
	}
	if piercing {
		proj.HitEntities = make(map[ecs.EntityID]struct{})
	}
	em.AddComponent(entityID, proj)

	em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorPlayerShot})

	return entityID, nil
}

// NewEnemyShot 创建敌方弹体实体
// 射手敌人和 Boss 的弹幕都用它，速度向量由调用方给定
func NewEnemyShot(em *ecs.EntityManager, pos, vel utils.Vector2D, damage int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Velocity: vel,
		Angle:    math.Atan2(vel.Y, vel.X),
	})

	em.AddComponent(entityID, components.NewShapeComponent(bulletVertices(6), color.RGBA{R: 255, G: 90, B: 90, A: 255}))

	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: 3.0,
	})

	em.AddComponent(entityID, &components.ProjectileComponent{
		Damage: damage,
		Origin: pos,
	})

	em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorEnemyShot})

	return entityID, nil
}
