package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/dungeon"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/utils"
)

// RenderSystem 线框矢量渲染
// 所有实体都是多边形轮廓，按组件里的顶点旋转平移后描边；
// 地牢模式还画房间墙壁和门
type RenderSystem struct {
	entityManager *ecs.EntityManager
	level         *dungeon.Level // 为 nil 时不画房间（街机模式）
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, level *dungeon.Level) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		level:         level,
	}
}

// SetLevel 更新关联的地牢层（换层时调用）
func (s *RenderSystem) SetLevel(level *dungeon.Level) {
	s.level = level
}

// Draw 渲染一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s.level != nil {
		s.drawRoom(screen)
	}
	s.drawEntities(screen)
}

// drawEntities 描边所有带外形的实体
func (s *RenderSystem) drawEntities(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ShapeComponent, *components.TransformComponent](s.entityManager) {
		shape := ecs.MustGetComponent[*components.ShapeComponent](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		// 无敌闪烁的隐藏帧
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok && !player.Visible {
			continue
		}

		clr := shape.Color
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok && enemy.FlashTimer > 0 {
			clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}

		s.strokePolygon(screen, shape.Vertices, transform, clr)

		// 护盾激活时在飞船外画一圈
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok && player.HasShield {
			vector.StrokeCircle(screen,
				float32(transform.Position.X), float32(transform.Position.Y),
				float32(shape.BoundingRadius+6), 1.5,
				color.RGBA{R: 90, G: 160, B: 255, A: 200}, true)
		}

		// 商店商品旁标价
		if pickup, ok := ecs.GetComponent[*components.PickupComponent](s.entityManager, id); ok && pickup.Kind == components.PickupShopItem {
			ebitenutil.DebugPrintAt(screen,
				fmt.Sprintf("$%d", pickup.Price),
				int(transform.Position.X)-10, int(transform.Position.Y+shape.BoundingRadius)+6)
		}
	}
}

// strokePolygon 把局部坐标顶点旋转平移到世界坐标并逐边描线
func (s *RenderSystem) strokePolygon(screen *ebiten.Image, vertices []utils.Vector2D, transform *components.TransformComponent, clr color.RGBA) {
	n := len(vertices)
	if n < 2 {
		return
	}

	world := make([]utils.Vector2D, n)
	for i, v := range vertices {
		world[i] = v.Rotate(transform.Angle).Add(transform.Position)
	}

	for i := 0; i < n; i++ {
		a := world[i]
		b := world[(i+1)%n]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			1.5, clr, true)
	}
}

// drawRoom 画房间墙壁和四个方向的门
// 墙壁在门的位置留出缺口，门的颜色反映其状态
func (s *RenderSystem) drawRoom(screen *ebiten.Image) {
	room := s.level.Current
	if room == nil {
		return
	}

	wallClr := color.RGBA{R: 90, G: 90, B: 120, A: 255}
	const doorHalfWidth = 60.0
	left := float32(config.RoomOffsetX)
	top := float32(config.RoomOffsetY)
	right := float32(config.RoomOffsetX + config.RoomWidth)
	bottom := float32(config.RoomOffsetY + config.RoomHeight)
	midX := float32(config.RoomOffsetX + config.RoomWidth/2)
	midY := float32(config.RoomOffsetY + config.RoomHeight/2)

	// 每面墙分两段，有门时中段留缺口
	drawWall := func(dir dungeon.Direction, x0, y0, x1, y1, gx0, gy0, gx1, gy1 float32) {
		if room.HasDoor(dir) {
			vector.StrokeLine(screen, x0, y0, gx0, gy0, 2, wallClr, true)
			vector.StrokeLine(screen, gx1, gy1, x1, y1, 2, wallClr, true)
			s.drawDoor(screen, room.GetDoor(dir), gx0, gy0, gx1, gy1)
		} else {
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, wallClr, true)
		}
	}

	drawWall(dungeon.DirTop, left, top, right, top, midX-doorHalfWidth, top, midX+doorHalfWidth, top)
	drawWall(dungeon.DirBottom, left, bottom, right, bottom, midX-doorHalfWidth, bottom, midX+doorHalfWidth, bottom)
	drawWall(dungeon.DirLeft, left, top, left, bottom, left, midY-doorHalfWidth, left, midY+doorHalfWidth)
	drawWall(dungeon.DirRight, right, top, right, bottom, right, midY-doorHalfWidth, right, midY+doorHalfWidth)
}

// drawDoor 按状态画门
// 锁住是红色实线，关闭是灰色实线，打开只画两端的门柱
func (s *RenderSystem) drawDoor(screen *ebiten.Image, door *dungeon.Door, x0, y0, x1, y1 float32) {
	switch {
	case door.Locked:
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, color.RGBA{R: 200, G: 60, B: 60, A: 255}, true)
	case !door.Open:
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, color.RGBA{R: 130, G: 130, B: 130, A: 255}, true)
	default:
		post := color.RGBA{R: 120, G: 200, B: 120, A: 255}
		vector.DrawFilledCircle(screen, x0, y0, 4, post, true)
		vector.DrawFilledCircle(screen, x1, y1, 4, post, true)
	}
}
