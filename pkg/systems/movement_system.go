package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/utils"
)

// 推进尾焰粒子的生成间隔（秒）
const thrusterPuffInterval = 0.05

// MovementSystem 统一的运动积分系统
// 处理玩家的推进/旋转/摩擦，所有实体的速度积分，以及边界策略
type MovementSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	puffTimer     float64
}

// NewMovementSystem 创建运动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Update 推进所有实体的位置和角度
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](s.entityManager) {
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok {
			s.applyShipControls(player, transform, deltaTime)
		}

		transform.Position = transform.Position.Add(transform.Velocity.Mul(deltaTime))
		transform.Angle += transform.AngularVelocity * deltaTime

		if bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id); ok {
			s.applyBounds(transform, bounds, id)
		}
	}
}

// applyShipControls 把玩家意图转换为加速度和角速度
// 速度上限按真实模长钳制，而不是分量各自钳制，
// 保证斜向移动不会快于轴向移动
func (s *MovementSystem) applyShipControls(player *components.PlayerComponent, transform *components.TransformComponent, deltaTime float64) {
	transform.Angle += player.RotateDir * config.ShipRotationSpeed * deltaTime

	if player.Thrust > 0 {
		power := config.ShipThrustPower
		if player.SpeedBonus > 0 {
			power *= player.SpeedBonus
		}
		accel := utils.VectorFromAngle(transform.Angle, power*player.Thrust*deltaTime)
		transform.Velocity = transform.Velocity.Add(accel)

		// 推进时从船尾间歇喷出尾焰粒子
		s.puffTimer -= deltaTime
		if s.puffTimer <= 0 {
			s.puffTimer = thrusterPuffInterval
			tail := transform.Position.Sub(utils.VectorFromAngle(transform.Angle, 14))
			entities.SpawnThrusterPuff(s.entityManager, s.rng, tail, transform.Angle)
		}
	}

	// 摩擦按 60fps 基准帧折算到实际帧长
	friction := math.Pow(config.ShipFriction, deltaTime*60)
	transform.Velocity = transform.Velocity.Mul(friction)

	transform.Velocity = transform.Velocity.Limit(config.ShipMaxSpeed)
}

// applyBounds 应用实体的边界策略
// Wrap: 穿出一侧从对侧回绕（街机模式）
// Clamp: 钳制在房间可活动区域内；玩家贴墙停止，其他实体反弹
func (s *MovementSystem) applyBounds(transform *components.TransformComponent, bounds *components.BoundsComponent, id ecs.EntityID) {
	switch bounds.Mode {
	case components.BoundsWrap:
		s.wrap(transform)
	case components.BoundsClamp:
		bounce := !s.entityManager.HasComponent(id, playerComponentType)
		s.clamp(transform, id, bounce)
	}
}

func (s *MovementSystem) wrap(transform *components.TransformComponent) {
	margin := 20.0
	if transform.Position.X < -margin {
		transform.Position.X = config.WindowWidth + margin
	}
	if transform.Position.X > config.WindowWidth+margin {
		transform.Position.X = -margin
	}
	if transform.Position.Y < -margin {
		transform.Position.Y = config.WindowHeight + margin
	}
	if transform.Position.Y > config.WindowHeight+margin {
		transform.Position.Y = -margin
	}
}

func (s *MovementSystem) clamp(transform *components.TransformComponent, id ecs.EntityID, bounce bool) {
	radius := 0.0
	if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id); ok {
		radius = shape.BoundingRadius
	}

	minX := float64(config.RoomOffsetX) + radius
	maxX := float64(config.RoomOffsetX+config.RoomWidth) - radius
	minY := float64(config.RoomOffsetY) + radius
	maxY := float64(config.RoomOffsetY+config.RoomHeight) - radius

	if transform.Position.X < minX {
		transform.Position.X = minX
		transform.Velocity.X = boundVelocity(transform.Velocity.X, bounce, true)
	}
	if transform.Position.X > maxX {
		transform.Position.X = maxX
		transform.Velocity.X = boundVelocity(transform.Velocity.X, bounce, false)
	}
	if transform.Position.Y < minY {
		transform.Position.Y = minY
		transform.Velocity.Y = boundVelocity(transform.Velocity.Y, bounce, true)
	}
	if transform.Position.Y > maxY {
		transform.Position.Y = maxY
		transform.Velocity.Y = boundVelocity(transform.Velocity.Y, bounce, false)
	}
}

// boundVelocity 计算撞墙后的速度分量
// 反弹实体取反越界方向的分量，玩家直接清零
func boundVelocity(v float64, bounce, lowSide bool) float64 {
	outward := (lowSide && v < 0) || (!lowSide && v > 0)
	if !outward {
		return v
	}
	if bounce {
		return -v
	}
	return 0
}
