// Package entities 提供各类游戏实体的工厂函数
// 每个工厂负责创建一个实体并装配它需要的全部组件
package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/utils"
)

// shipVertices 飞船的三角形轮廓（朝向 +X 方向）
func shipVertices() []utils.Vector2D {
	return []utils.Vector2D{
		{X: 14, Y: 0},
		{X: -10, Y: 9},
		{X: -6, Y: 0},
		{X: -10, Y: -9},
	}
}

// NewPlayerShip 创建玩家飞船实体
//
// 参数:
//   - em: 实体管理器
//   - pos: 初始位置（世界坐标）
//   - boundsMode: 边界模式，地牢模式用 BoundsClamp，街机模式用 BoundsWrap
//
// 返回:
//   - ecs.EntityID: 创建的飞船实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewPlayerShip(em *ecs.EntityManager, pos utils.Vector2D, boundsMode components.BoundsMode) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Angle:    -1.5707963267948966, // 朝上
	})

	shape := components.NewShapeComponent(shipVertices(), color.RGBA{R: 220, G: 220, B: 255, A: 255})
	em.AddComponent(entityID, shape)

	em.AddComponent(entityID, &components.HealthComponent{
		Current: config.ShipMaxHealth,
		Max:     config.ShipMaxHealth,
	})

	em.AddComponent(entityID, &components.BoundsComponent{Mode: boundsMode})

	em.AddComponent(entityID, &components.PlayerComponent{
		Damage:         1,
		Visible:        true,
		ActivePowerUps: make(map[components.PowerUpType]float64),
	})

	em.AddComponent(entityID, &components.BehaviorComponent{
		Type: components.BehaviorPlayer,
	})

	return entityID, nil
}
