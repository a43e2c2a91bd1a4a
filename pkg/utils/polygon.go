package utils

import (
	"math"
	"math/rand"
)

// RandomPolygon 生成随机不规则多边形顶点（本地坐标，中心在原点）
// 小行星、Boss 外形都由此生成，每次调用的形状都不同
//
// 参数:
//   - rng: 随机数源
//   - minVertices, maxVertices: 顶点数范围（闭区间）
//   - radius: 基准半径
//   - jitter: 半径扰动比例（0~1），顶点半径在 radius±radius*jitter 内浮动
//
// 返回:
//   - []Vector2D: 按角度排列的顶点列表
func RandomPolygon(rng *rand.Rand, minVertices, maxVertices int, radius, jitter float64) []Vector2D {
	if minVertices < 3 {
		minVertices = 3
	}
	if maxVertices < minVertices {
		maxVertices = minVertices
	}

	count := minVertices + rng.Intn(maxVertices-minVertices+1)
	vertices := make([]Vector2D, 0, count)

	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		r := radius + (rng.Float64()*2-1)*radius*jitter
		vertices = append(vertices, VectorFromAngle(angle, r))
	}

	return vertices
}

// RegularPolygon 生成正多边形顶点（本地坐标，中心在原点）
// 用于道具等需要规则外形的实体
func RegularPolygon(sides int, radius float64) []Vector2D {
	if sides < 3 {
		sides = 3
	}

	vertices := make([]Vector2D, 0, sides)
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		vertices = append(vertices, VectorFromAngle(angle, radius))
	}
	return vertices
}

// PlusShape 生成十字形顶点（额外生命道具的外形）
func PlusShape(size float64) []Vector2D {
	t := size / 3
	return []Vector2D{
		{-size, -t}, {-size, t}, {-t, t}, {-t, size},
		{t, size}, {t, t}, {size, t}, {size, -t},
		{t, -t}, {t, -size}, {-t, -size}, {-t, -t},
	}
}

// BoundingRadius 计算顶点集的包围半径
// 即本地原点到最远顶点的距离，用于圆形近似碰撞检测
func BoundingRadius(vertices []Vector2D) float64 {
	max := 0.0
	for _, v := range vertices {
		if d := v.Magnitude(); d > max {
			max = d
		}
	}
	return max
}
