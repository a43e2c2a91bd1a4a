package components

// BoundsMode 边界处理策略
type BoundsMode int

const (
	// BoundsNone 不处理边界（弹体出界由各自系统剔除）
	BoundsNone BoundsMode = iota
	// BoundsWrap 环绕：坐标对场地尺寸取模（街机模式）
	BoundsWrap
	// BoundsClamp 钳制：坐标限制在场地内，撞墙反弹速度分量（地牢模式）
	BoundsClamp
)

// BoundsComponent 定义实体的边界处理策略
// 两种策略由游戏模式决定，互斥使用
type BoundsComponent struct {
	Mode BoundsMode
}
