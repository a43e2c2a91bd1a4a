package systems

import (
	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/ecs"
)

// LifetimeSystem 管理限时实体的生命周期
// 弹体、粒子、未拾取的道具和金币都靠它回收
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 推进所有限时实体的存活时间，过期的标记销毁
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime := ecs.MustGetComponent[*components.LifetimeComponent](s.entityManager, id)

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
