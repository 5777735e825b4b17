package utils

import (
	"math"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/go-gl/mathgl/mgl64"
)

// CircleSegments 近似圆时使用的分段数
const CircleSegments = 48

// ShapeOutline 返回图元在局部坐标系中的轮廓（凸多边形，顺时针）
//
// 与 PointInLocalShape 使用同一套尺寸约定：
//   - circle: 半径 size
//   - triangle: 顶点 (0,-size)、(size,size)、(-size,size)
//   - rectangle: 宽 2*size、高 size
//   - diamond: 顶点到中心距离 size
//
// 未知形状返回 nil。
func ShapeOutline(shape components.ShapeKind, size float64) []mgl64.Vec2 {
	switch shape {
	case components.ShapeCircle:
		return CircleOutline(size, CircleSegments)
	case components.ShapeTriangle:
		return []mgl64.Vec2{{0, -size}, {size, size}, {-size, size}}
	case components.ShapeRectangle:
		return []mgl64.Vec2{{-size, -size / 2}, {size, -size / 2}, {size, size / 2}, {-size, size / 2}}
	case components.ShapeDiamond:
		return []mgl64.Vec2{{0, -size}, {size, 0}, {0, size}, {-size, 0}}
	}
	return nil
}

// CircleOutline 用正多边形近似半径为 r 的圆
func CircleOutline(r float64, segments int) []mgl64.Vec2 {
	if segments < 3 {
		segments = 3
	}
	pts := make([]mgl64.Vec2, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = mgl64.Vec2{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}

// TransformOutline 把局部轮廓旋转 rotation 后平移到 (cx, cy)，原地修改并返回
func TransformOutline(pts []mgl64.Vec2, cx, cy, rotation float64) []mgl64.Vec2 {
	rot := mgl64.Rotate2D(rotation)
	center := mgl64.Vec2{cx, cy}
	for i := range pts {
		pts[i] = rot.Mul2x1(pts[i]).Add(center)
	}
	return pts
}

// QuadraticPoint 二次贝塞尔曲线在 t 处的点
func QuadraticPoint(p0, ctrl, p1 mgl64.Vec2, t float64) mgl64.Vec2 {
	u := 1 - t
	return p0.Mul(u * u).Add(ctrl.Mul(2 * u * t)).Add(p1.Mul(t * t))
}

// SmoothCurve 用中点二次曲线平滑穿过采样点的折线
//
// 以第一个采样点为起点，依次以采样点 i 为控制点、
// 采样点 i 与 i+1 的中点为终点画二次曲线，最后连到最后一个采样点。
// 每段曲线细分为 steps 段。返回的折线可直接用于三角化。
func SmoothCurve(samples []mgl64.Vec2, steps int) []mgl64.Vec2 {
	if len(samples) < 2 {
		return append([]mgl64.Vec2(nil), samples...)
	}
	if steps < 1 {
		steps = 1
	}

	out := make([]mgl64.Vec2, 0, (len(samples)-1)*steps+2)
	cur := samples[0]
	out = append(out, cur)

	for i := 0; i < len(samples)-1; i++ {
		mid := samples[i].Add(samples[i+1]).Mul(0.5)
		for s := 1; s <= steps; s++ {
			out = append(out, QuadraticPoint(cur, samples[i], mid, float64(s)/float64(steps)))
		}
		cur = mid
	}

	last := samples[len(samples)-1]
	if !cur.ApproxEqual(last) {
		out = append(out, last)
	}
	return out
}
