package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/utils"
)

// SpawnExplosionBurst 在指定位置生成一圈爆炸粒子
// 粒子向四周飞散并逐渐减速，生命周期结束后由粒子系统回收
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数源
//   - pos: 爆炸中心
//   - count: 粒子数量
//   - clr: 粒子颜色（一般取被摧毁实体的颜色）
func SpawnExplosionBurst(em *ecs.EntityManager, rng *rand.Rand, pos utils.Vector2D, count int, clr color.RGBA) {
	if em == nil || count <= 0 {
		return
	}

	for i := 0; i < count; i++ {
		entityID := em.CreateEntity()

		vel := utils.VectorFromAngle(rng.Float64()*2*math.Pi, 40+rng.Float64()*160)
		em.AddComponent(entityID, &components.TransformComponent{
			Position: pos,
			Velocity: vel,
		})

		size := 1.5 + rng.Float64()*2.5
		em.AddComponent(entityID, components.NewShapeComponent(utils.RegularPolygon(4, size), clr))

		em.AddComponent(entityID, &components.LifetimeComponent{
			MaxLifetime: 0.3 + rng.Float64()*0.5,
		})

		em.AddComponent(entityID, &components.ParticleComponent{
			Size:     size,
			Friction: 0.92,
		})

		em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorParticle})
	}
}

// SpawnThrusterPuff 在船尾生成推进尾焰粒子
func SpawnThrusterPuff(em *ecs.EntityManager, rng *rand.Rand, pos utils.Vector2D, angle float64) {
	if em == nil {
		return
	}

	entityID := em.CreateEntity()

	// 朝船尾方向喷出，带少量散布
	spread := (rng.Float64() - 0.5) * 0.6
	vel := utils.VectorFromAngle(angle+math.Pi+spread, 80+rng.Float64()*60)
	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Velocity: vel,
	})

	clr := color.RGBA{R: 255, G: uint8(140 + rng.Intn(80)), B: 40, A: 255}
	em.AddComponent(entityID, components.NewShapeComponent(utils.RegularPolygon(3, 2), clr))

	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: 0.15 + rng.Float64()*0.15,
	})

	em.AddComponent(entityID, &components.ParticleComponent{Size: 2, Friction: 0.9})
	em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorParticle})
}
