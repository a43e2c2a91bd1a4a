package systems

import (
	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
)

// ProjectileSystem 维护弹体的射程和场外回收
// 弹体的直线运动由运动系统积分，存活时间由生命周期系统管理，
// 这里只负责超射程和飞出场地的弹体
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectileSystem 创建弹体系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{entityManager: em}
}

// Update 回收超出射程或飞出窗口的弹体
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.TransformComponent](s.entityManager) {
		proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		if proj.MaxRange > 0 {
			traveled := transform.Position.DistanceSquaredTo(proj.Origin)
			if traveled >= proj.MaxRange*proj.MaxRange {
				s.entityManager.DestroyEntity(id)
				continue
			}
		}

		// 无边界组件的弹体飞出窗口直接回收
		if _, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id); !ok {
			p := transform.Position
			if p.X < -50 || p.X > config.WindowWidth+50 || p.Y < -50 || p.Y > config.WindowHeight+50 {
				s.entityManager.DestroyEntity(id)
			}
		}
	}
}

// FlushProjectiles 立即销毁所有弹体
// 换房时调用，防止弹体跨房间残留
func FlushProjectiles(em *ecs.EntityManager) {
	for _, id := range em.GetEntitiesWith(projectileComponentType) {
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()
}
