package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVectorArithmetic(t *testing.T) {
	a := NewVector2D(3, 4)
	b := NewVector2D(-1, 2)

	if got := a.Add(b); got != (Vector2D{X: 2, Y: 6}) {
		t.Errorf("Add = %v, want {2 6}", got)
	}
	if got := a.Sub(b); got != (Vector2D{X: 4, Y: 2}) {
		t.Errorf("Sub = %v, want {4 2}", got)
	}
	if got := a.Mul(2); got != (Vector2D{X: 6, Y: 8}) {
		t.Errorf("Mul = %v, want {6 8}", got)
	}
	if got := a.Div(2); got != (Vector2D{X: 1.5, Y: 2}) {
		t.Errorf("Div = %v, want {1.5 2}", got)
	}
}

func TestVectorDivByZero(t *testing.T) {
	v := NewVector2D(3, 4).Div(0)
	if v != (Vector2D{}) {
		t.Errorf("Div(0) = %v, want zero vector", v)
	}
}

func TestVectorMagnitude(t *testing.T) {
	v := NewVector2D(3, 4)
	if !almostEqual(v.Magnitude(), 5) {
		t.Errorf("Magnitude = %v, want 5", v.Magnitude())
	}
	if !almostEqual(v.MagnitudeSquared(), 25) {
		t.Errorf("MagnitudeSquared = %v, want 25", v.MagnitudeSquared())
	}
}

func TestVectorNormalize(t *testing.T) {
	v := NewVector2D(0, 10).Normalize()
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Errorf("Normalize = %v, want {0 1}", v)
	}

	// 零向量归一化必须返回零向量而不是 NaN
	zero := Vector2D{}.Normalize()
	if math.IsNaN(zero.X) || math.IsNaN(zero.Y) || zero != (Vector2D{}) {
		t.Errorf("Normalize of zero vector = %v, want zero vector", zero)
	}
}

func TestVectorRotate(t *testing.T) {
	v := NewVector2D(1, 0).Rotate(math.Pi / 2)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Errorf("Rotate(π/2) = %v, want {0 1}", v)
	}
}

func TestVectorLimit(t *testing.T) {
	v := NewVector2D(30, 40) // 模长 50
	limited := v.Limit(10)
	if !almostEqual(limited.Magnitude(), 10) {
		t.Errorf("Limit(10) magnitude = %v, want 10", limited.Magnitude())
	}
	// 方向保持不变
	if !almostEqual(limited.Angle(), v.Angle()) {
		t.Errorf("Limit changed direction: %v vs %v", limited.Angle(), v.Angle())
	}

	// 未超限时原样返回
	short := NewVector2D(3, 4)
	if got := short.Limit(10); got != short {
		t.Errorf("Limit(10) of short vector = %v, want unchanged", got)
	}
}

func TestVectorDistance(t *testing.T) {
	a := NewVector2D(0, 0)
	b := NewVector2D(3, 4)
	if !almostEqual(a.DistanceTo(b), 5) {
		t.Errorf("DistanceTo = %v, want 5", a.DistanceTo(b))
	}
	if !almostEqual(a.DistanceSquaredTo(b), 25) {
		t.Errorf("DistanceSquaredTo = %v, want 25", a.DistanceSquaredTo(b))
	}
}

func TestVectorFromAngle(t *testing.T) {
	v := VectorFromAngle(math.Pi, 2)
	if !almostEqual(v.X, -2) || !almostEqual(v.Y, 0) {
		t.Errorf("VectorFromAngle(π, 2) = %v, want {-2 0}", v)
	}
}
