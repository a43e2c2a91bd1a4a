package utils

import (
	"math/rand"
	"testing"
)

func TestRandomPolygonVertexCount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		verts := RandomPolygon(rng, 8, 12, 30, 0.33)
		if len(verts) < 8 || len(verts) > 12 {
			t.Fatalf("vertex count = %d, want 8..12", len(verts))
		}
	}
}

func TestRandomPolygonRadiusRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	radius, jitter := 30.0, 0.33
	verts := RandomPolygon(rng, 10, 10, radius, jitter)

	minR := radius * (1 - jitter)
	maxR := radius * (1 + jitter)
	for _, v := range verts {
		d := v.Magnitude()
		if d < minR-epsilon || d > maxR+epsilon {
			t.Errorf("vertex distance %v outside [%v, %v]", d, minR, maxR)
		}
	}
}

func TestRandomPolygonClampsDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// 顶点数下限被钳制到 3，多边形才成立
	verts := RandomPolygon(rng, 1, 2, 10, 0)
	if len(verts) < 3 {
		t.Errorf("vertex count = %d, want >= 3", len(verts))
	}
}

func TestRegularPolygon(t *testing.T) {
	verts := RegularPolygon(6, 12)
	if len(verts) != 6 {
		t.Fatalf("vertex count = %d, want 6", len(verts))
	}
	for _, v := range verts {
		if !almostEqual(v.Magnitude(), 12) {
			t.Errorf("vertex distance = %v, want 12", v.Magnitude())
		}
	}
}

func TestBoundingRadius(t *testing.T) {
	verts := []Vector2D{{X: 1, Y: 0}, {X: 0, Y: -5}, {X: 3, Y: 4}}
	if got := BoundingRadius(verts); !almostEqual(got, 5) {
		t.Errorf("BoundingRadius = %v, want 5", got)
	}
	if got := BoundingRadius(nil); got != 0 {
		t.Errorf("BoundingRadius(nil) = %v, want 0", got)
	}
}
