package systems

import (
	"math"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/ecs"
)

// ParticleSystem 推进爆炸和尾焰粒子的减速
// 粒子的回收由生命周期系统负责
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 对所有粒子应用摩擦
func (s *ParticleSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.TransformComponent](s.entityManager) {
		particle := ecs.MustGetComponent[*components.ParticleComponent](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		friction := math.Pow(particle.Friction, deltaTime*60)
		transform.Velocity = transform.Velocity.Mul(friction)
	}
}
