package entities

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/utils"
)

// NewAsteroid 创建小行星实体
// 外形是随机扰动的多边形，每颗小行星（包括分裂产物）都有独立形状
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数源
//   - pos: 初始位置
//   - vel: 初始速度
//   - size: 尺寸等级（1/2/3）
//   - boundsMode: 边界模式
//
// 返回:
//   - ecs.EntityID: 创建的小行星实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewAsteroid(em *ecs.EntityManager, rng *rand.Rand, pos, vel utils.Vector2D, size components.AsteroidSize, boundsMode components.BoundsMode) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if size < components.AsteroidSizeSmall || size > components.AsteroidSizeLarge {
		return 0, fmt.Errorf("invalid asteroid size %d", size)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position:        pos,
		Velocity:        vel,
		AngularVelocity: config.AsteroidMinRotationSpeed + rng.Float64()*(config.AsteroidMaxRotationSpeed-config.AsteroidMinRotationSpeed),
	})

	radius := config.AsteroidBaseSize * float64(size)
	vertices := utils.RandomPolygon(rng, config.AsteroidMinVertices, config.AsteroidMaxVertices, radius, config.AsteroidShapeJitter)
	em.AddComponent(entityID, components.NewShapeComponent(vertices, color.RGBA{R: 160, G: 150, B: 140, A: 255}))

	em.AddComponent(entityID, &components.HealthComponent{
		Current: int(size),
		Max:     int(size),
	})

	em.AddComponent(entityID, &components.BoundsComponent{Mode: boundsMode})
	em.AddComponent(entityID, &components.AsteroidComponent{Size: size})
	em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorAsteroid})

	return entityID, nil
}

// NewAsteroidAtRandomEdge 在场地边缘随机位置创建一颗向场内漂移的大型小行星
// 速度按难度倍率缩放，用于房间布防和街机波次刷新
func NewAsteroidAtRandomEdge(em *ecs.EntityManager, rng *rand.Rand, difficulty int, boundsMode components.BoundsMode) (ecs.EntityID, error) {
	pos := randomEdgePosition(rng)

	// 朝场地中心附近漂移，带一点角度扰动
	center := utils.NewVector2D(config.RoomOffsetX+config.RoomWidth/2, config.RoomOffsetY+config.RoomHeight/2)
	angle := math.Atan2(center.Y-pos.Y, center.X-pos.X) + (rng.Float64() - 0.5)
	speed := (40 + rng.Float64()*80) * config.DifficultySpeedMultiplier[difficulty]
	vel := utils.VectorFromAngle(angle, speed)

	return NewAsteroid(em, rng, pos, vel, components.AsteroidSizeLarge, boundsMode)
}

// randomEdgePosition 返回场地四边上的随机一点
func randomEdgePosition(rng *rand.Rand) utils.Vector2D {
	switch rng.Intn(4) {
	case 0: // 上边
		return utils.NewVector2D(config.RoomOffsetX+rng.Float64()*config.RoomWidth, config.RoomOffsetY)
	case 1: // 下边
		return utils.NewVector2D(config.RoomOffsetX+rng.Float64()*config.RoomWidth, config.RoomOffsetY+config.RoomHeight)
	case 2: // 左边
		return utils.NewVector2D(config.RoomOffsetX, config.RoomOffsetY+rng.Float64()*config.RoomHeight)
	default: // 右边
		return utils.NewVector2D(config.RoomOffsetX+config.RoomWidth, config.RoomOffsetY+rng.Float64()*config.RoomHeight)
	}
}

// SplitAsteroid 把被击毁的小行星分裂为 2-3 颗小一级的子行星
// 尺寸等级 1 的小行星不再分裂，返回空切片
//
// 子行星继承父行星一半速度并叠加随机推力，外形重新随机生成
func SplitAsteroid(em *ecs.EntityManager, rng *rand.Rand, parentPos, parentVel utils.Vector2D, parentSize components.AsteroidSize, boundsMode components.BoundsMode) ([]ecs.EntityID, error) {
	if parentSize <= components.AsteroidSizeSmall {
		return nil, nil
	}

	count := config.AsteroidSplitMin + rng.Intn(config.AsteroidSplitMax-config.AsteroidSplitMin+1)
	children := make([]ecs.EntityID, 0, count)

	for i := 0; i < count; i++ {
		boost := utils.VectorFromAngle(rng.Float64()*2*math.Pi, 60+rng.Float64()*100)
		vel := boost.Add(parentVel.Mul(0.5))

		id, err := NewAsteroid(em, rng, parentPos, vel, parentSize-1, boundsMode)
		if err != nil {
			return children, err
		}
		children = append(children, id)
	}
	return children, nil
}
