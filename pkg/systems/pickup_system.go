package systems

import (
	"math"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
)

// PickupSystem 维护场上拾取物的运动表现
// 金币散落后受摩擦减速，道具原地上下浮动；
// 拾取判定在战斗系统里，超时回收在生命周期系统里
type PickupSystem struct {
	entityManager *ecs.EntityManager
}

// NewPickupSystem 创建拾取物系统
func NewPickupSystem(em *ecs.EntityManager) *PickupSystem {
	return &PickupSystem{entityManager: em}
}

// Update 推进所有拾取物的动画
func (s *PickupSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PickupComponent, *components.TransformComponent](s.entityManager) {
		pickup := ecs.MustGetComponent[*components.PickupComponent](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		switch pickup.Kind {
		case components.PickupCoin:
			friction := math.Pow(config.CoinFriction, deltaTime*60)
			transform.Velocity = transform.Velocity.Mul(friction)
		case components.PickupPowerUp:
			pickup.BobTimer += deltaTime
			transform.Velocity.Y = math.Sin(pickup.BobTimer*4) * 12
		}
	}
}
