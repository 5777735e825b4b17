package components

import "image/color"

// CloudComponent 一朵漂浮的"云"（旋转的几何图元）
//
// 云朵由 CloudMovementSystem 每帧向左移动，完全移出左边界后原地回收。
// 被点击命中时同样原地回收到右侧屏幕外，数组中的身份保持不变。
type CloudComponent struct {
	X, Y  float64 // 中心位置（画布坐标）
	Speed float64 // 水平速度（像素/参考帧）
	Size  float64 // 尺寸（圆的半径、菱形/三角形的半宽、矩形的半宽）

	Shape   ShapeKind
	Color   color.RGBA
	Opacity float64 // 0.0 ~ 1.0

	Rotation      float64 // 当前旋转角（弧度）
	RotationSpeed float64 // 旋转速度（弧度/参考帧）

	Active bool // 只有激活的云朵参与渲染与点击检测
}
