package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/utils"
)

func colorWhite() color.RGBA {
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

func TestShipSpeedClampedByMagnitude(t *testing.T) {
	em := ecs.NewEntityManager()
	ms := NewMovementSystem(em)

	id, err := entities.NewPlayerShip(em, utils.NewVector2D(400, 300), components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	transform := ecs.MustGetComponent[*components.TransformComponent](em, id)
	player := ecs.MustGetComponent[*components.PlayerComponent](em, id)

	// 斜向持续推进远超上限所需的时间
	transform.Angle = math.Pi / 4
	player.Thrust = 1
	for i := 0; i < 600; i++ {
		ms.Update(1.0 / 60)
	}

	speed := transform.Velocity.Magnitude()
	if speed > config.ShipMaxSpeed+1e-6 {
		t.Errorf("速度模长 %v 超过上限 %v", speed, config.ShipMaxSpeed)
	}
	// 分量各自钳制的错误实现会让斜向速度达到上限的 √2 倍
	if speed < config.ShipMaxSpeed*0.8 {
		t.Errorf("持续推进后速度应接近上限, got %v", speed)
	}
}

func TestWrapBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	ms := NewMovementSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{
		Position: utils.NewVector2D(config.WindowWidth+30, 100),
		Velocity: utils.NewVector2D(100, 0),
	})
	em.AddComponent(id, &components.BoundsComponent{Mode: components.BoundsWrap})

	ms.Update(1.0 / 60)

	transform := ecs.MustGetComponent[*components.TransformComponent](em, id)
	if transform.Position.X > 0 {
		t.Errorf("穿出右侧应从左侧回绕, got X=%v", transform.Position.X)
	}
}

func TestClampBouncesNonPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	ms := NewMovementSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{
		Position: utils.NewVector2D(config.RoomOffsetX+2, 300),
		Velocity: utils.NewVector2D(-100, 0),
	})
	em.AddComponent(id, components.NewShapeComponent(utils.RegularPolygon(8, 10), colorWhite()))
	em.AddComponent(id, &components.BoundsComponent{Mode: components.BoundsClamp})

	ms.Update(1.0 / 60)

	transform := ecs.MustGetComponent[*components.TransformComponent](em, id)
	if transform.Velocity.X <= 0 {
		t.Errorf("非玩家实体撞左墙应反弹, got VX=%v", transform.Velocity.X)
	}
	if transform.Position.X < config.RoomOffsetX+10 {
		t.Errorf("位置应被钳制在墙内, got X=%v", transform.Position.X)
	}
}

func TestClampStopsPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	ms := NewMovementSystem(em)

	id, err := entities.NewPlayerShip(em, utils.NewVector2D(config.RoomOffsetX+2, 300), components.BoundsClamp)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	transform := ecs.MustGetComponent[*components.TransformComponent](em, id)
	transform.Velocity = utils.NewVector2D(-200, 0)

	ms.Update(1.0 / 60)

	if transform.Velocity.X != 0 {
		t.Errorf("玩家撞墙速度分量应清零, got VX=%v", transform.Velocity.X)
	}
}

func TestAngularVelocityIntegration(t *testing.T) {
	em := ecs.NewEntityManager()
	ms := NewMovementSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{
		AngularVelocity: 2.0,
	})

	ms.Update(0.5)

	transform := ecs.MustGetComponent[*components.TransformComponent](em, id)
	if math.Abs(transform.Angle-1.0) > 1e-9 {
		t.Errorf("角度应积分为 1.0, got %v", transform.Angle)
	}
}
