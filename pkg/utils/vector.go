// Package utils 提供通用工具函数和数学类型
package utils

import "math"

// Vector2D 二维向量，游戏物理和几何计算的基础类型
// 所有运算都返回新值，不修改接收者（值语义）
type Vector2D struct {
	X float64
	Y float64
}

// NewVector2D 创建二维向量
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Add 向量加法
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub 向量减法
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul 向量乘以标量
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{X: v.X * scalar, Y: v.Y * scalar}
}

// Div 向量除以标量
// 除数为零时返回零向量（文档化的数值边界情况，不是错误）
func (v Vector2D) Div(scalar float64) Vector2D {
	if scalar == 0 {
		return Vector2D{}
	}
	return Vector2D{X: v.X / scalar, Y: v.Y / scalar}
}

// Magnitude 向量长度
func (v Vector2D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagnitudeSquared 向量长度的平方
// 用于距离比较时避免开方运算
func (v Vector2D) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize 返回同方向的单位向量
// 零向量归一化返回零向量，不会产生 NaN
func (v Vector2D) Normalize() Vector2D {
	mag := v.Magnitude()
	if mag > 0 {
		return Vector2D{X: v.X / mag, Y: v.Y / mag}
	}
	return Vector2D{}
}

// Rotate 绕原点旋转向量
//
// 参数:
//   - angle: 旋转角度（弧度）
func (v Vector2D) Rotate(angle float64) Vector2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Dot 点积
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Angle 向量与X轴正方向的夹角（弧度）
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// DistanceTo 到另一个向量的距离
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquaredTo 到另一个向量的距离平方
// 只做阈值/排序比较时比 DistanceTo 快
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// Limit 限制向量长度不超过 max
// 超出时按真实长度归一化后缩放（速度上限需要真实模长）
func (v Vector2D) Limit(max float64) Vector2D {
	if v.MagnitudeSquared() > max*max {
		return v.Normalize().Mul(max)
	}
	return v
}

// VectorFromAngle 由角度和长度构造向量
//
// 参数:
//   - angle: 方向角（弧度）
//   - magnitude: 向量长度
func VectorFromAngle(angle, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}
