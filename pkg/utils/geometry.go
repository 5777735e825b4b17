package utils

import (
	"math"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/go-gl/mathgl/mgl64"
)

// ToLocal 将画布坐标点变换到图元的局部坐标系（未旋转）
//
// 先平移到图元中心，再做 -rotation 的逆旋转。
//
// 参数:
//   - px, py: 待测点（画布坐标）
//   - ox, oy: 图元中心
//   - rotation: 图元旋转角（弧度）
func ToLocal(px, py, ox, oy, rotation float64) mgl64.Vec2 {
	d := mgl64.Vec2{px - ox, py - oy}
	return mgl64.Rotate2D(-rotation).Mul2x1(d)
}

// PointInShape 判断点是否落在旋转后的云朵图元内
//
// 非激活或尺寸非正的云朵永远不会被命中。
// 纯函数，不修改云朵状态。
func PointInShape(px, py float64, cloud *components.CloudComponent) bool {
	if cloud == nil || !cloud.Active || cloud.Size <= 0 {
		return false
	}
	local := ToLocal(px, py, cloud.X, cloud.Y, cloud.Rotation)
	return PointInLocalShape(local, cloud.Shape, cloud.Size)
}

// PointInLocalShape 在局部坐标系中做形状包含判断
//
// 各形状的判定规则：
//   - circle: 到中心距离 <= size
//   - rectangle: 宽 2*size、高 size，|x| <= size 且 |y| <= size/2
//   - diamond: |x|/size + |y|/size <= 1
//   - triangle: |y| <= size 时，允许半宽为 size*(1 - y/size)
//
// 三角形使用线性插值的近似判定，并不是精确的三角形包含测试，
// 这是有意保留的点击手感。
func PointInLocalShape(local mgl64.Vec2, shape components.ShapeKind, size float64) bool {
	x, y := local.X(), local.Y()

	switch shape {
	case components.ShapeCircle:
		return local.Len() <= size
	case components.ShapeRectangle:
		return math.Abs(x) <= size && math.Abs(y) <= size/2
	case components.ShapeDiamond:
		return math.Abs(x)/size+math.Abs(y)/size <= 1
	case components.ShapeTriangle:
		if y > size || y < -size {
			return false
		}
		halfWidth := size * (1 - y/size)
		return math.Abs(x) <= halfWidth
	}
	// 未知形状：不可达，按未命中处理
	return false
}
