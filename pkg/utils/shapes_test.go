package utils

import (
	"math"
	"testing"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/go-gl/mathgl/mgl64"
)

// TestShapeOutline_InsideHitArea 轮廓顶点都应落在点击区域边界上或内部
// 三角形的点击区域是近似判定，与绘制轮廓不一致，这里只检查其余形状
func TestShapeOutline_InsideHitArea(t *testing.T) {
	const size = 40.0

	shapes := []components.ShapeKind{components.ShapeCircle, components.ShapeRectangle, components.ShapeDiamond}
	for _, shape := range shapes {
		t.Run(shape.String(), func(t *testing.T) {
			pts := ShapeOutline(shape, size)
			if len(pts) < 3 {
				t.Fatalf("outline has %d points, want >= 3", len(pts))
			}
			for i, p := range pts {
				// 向中心收缩一点，避免恰好落在边界上的浮点误差
				if !PointInLocalShape(p.Mul(0.99), shape, size) {
					t.Errorf("vertex %d %v outside hit area", i, p)
				}
			}
		})
	}
}

func TestShapeOutline_Triangle(t *testing.T) {
	pts := ShapeOutline(components.ShapeTriangle, 30)
	want := []mgl64.Vec2{{0, -30}, {30, 30}, {-30, 30}}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if !pts[i].ApproxEqual(want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestShapeOutline_Unknown(t *testing.T) {
	if pts := ShapeOutline(components.ShapeKind(99), 10); pts != nil {
		t.Errorf("expected nil outline for unknown shape, got %v", pts)
	}
}

func TestTransformOutline(t *testing.T) {
	pts := []mgl64.Vec2{{10, 0}}
	TransformOutline(pts, 100, 50, math.Pi/2)

	want := mgl64.Vec2{100, 60}
	if !pts[0].ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("got %v, want %v", pts[0], want)
	}

	// 变换后的点经 ToLocal 应回到原处
	local := ToLocal(pts[0].X(), pts[0].Y(), 100, 50, math.Pi/2)
	if !local.ApproxEqualThreshold(mgl64.Vec2{10, 0}, 1e-9) {
		t.Errorf("round trip = %v, want (10, 0)", local)
	}
}

func TestQuadraticPoint(t *testing.T) {
	p0 := mgl64.Vec2{0, 0}
	c := mgl64.Vec2{5, 10}
	p1 := mgl64.Vec2{10, 0}

	if got := QuadraticPoint(p0, c, p1, 0); !got.ApproxEqual(p0) {
		t.Errorf("t=0: got %v", got)
	}
	if got := QuadraticPoint(p0, c, p1, 1); !got.ApproxEqual(p1) {
		t.Errorf("t=1: got %v", got)
	}
	if got := QuadraticPoint(p0, c, p1, 0.5); !got.ApproxEqualThreshold(mgl64.Vec2{5, 5}, 1e-9) {
		t.Errorf("t=0.5: got %v, want (5, 5)", got)
	}
}

func TestSmoothCurve(t *testing.T) {
	samples := []mgl64.Vec2{{0, 10}, {10, 20}, {20, 10}, {25, 15}}
	curve := SmoothCurve(samples, 4)

	if !curve[0].ApproxEqual(samples[0]) {
		t.Errorf("curve starts at %v, want %v", curve[0], samples[0])
	}
	if last := curve[len(curve)-1]; !last.ApproxEqual(samples[len(samples)-1]) {
		t.Errorf("curve ends at %v, want %v", last, samples[len(samples)-1])
	}

	// x 单调不减（地平线三角化依赖这一点）
	for i := 1; i < len(curve); i++ {
		if curve[i].X() < curve[i-1].X() {
			t.Fatalf("x decreases at %d: %v -> %v", i, curve[i-1], curve[i])
		}
	}

	// 曲线不超出采样点的 y 范围
	for _, p := range curve {
		if p.Y() < 10-1e-9 || p.Y() > 20+1e-9 {
			t.Errorf("point %v outside sample y range", p)
		}
	}
}

func TestSmoothCurve_Short(t *testing.T) {
	if got := SmoothCurve(nil, 4); len(got) != 0 {
		t.Errorf("expected empty curve, got %v", got)
	}
	one := []mgl64.Vec2{{1, 2}}
	if got := SmoothCurve(one, 4); len(got) != 1 || !got[0].ApproxEqual(one[0]) {
		t.Errorf("expected single point, got %v", got)
	}
}
