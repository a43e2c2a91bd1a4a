package components

import (
	"image/color"

	"github.com/gonewx/tolik/pkg/utils"
)

// ShapeComponent 存储实体的多边形外形（本地坐标，中心在原点）
// BoundingRadius 由顶点派生，是碰撞检测使用的包围圆半径
type ShapeComponent struct {
	Vertices       []utils.Vector2D // 本地坐标顶点
	BoundingRadius float64          // 包围半径 = max(|v|)，顶点变化时必须重算
	Color          color.RGBA       // 线框颜色
	Filled         bool             // 是否填充（道具/金币用）
}

// NewShapeComponent 由顶点列表构造外形组件并计算包围半径
func NewShapeComponent(vertices []utils.Vector2D, clr color.RGBA) *ShapeComponent {
	return &ShapeComponent{
		Vertices:       vertices,
		BoundingRadius: utils.BoundingRadius(vertices),
		Color:          clr,
	}
}

// SetVertices 替换顶点并重算包围半径
// 外形变化的唯一入口，保证 BoundingRadius 不会过期
func (s *ShapeComponent) SetVertices(vertices []utils.Vector2D) {
	s.Vertices = vertices
	s.BoundingRadius = utils.BoundingRadius(vertices)
}
