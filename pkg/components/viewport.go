package components

// Viewport 当前画布尺寸
// Narrow 为 true 时使用小屏参数（更少、更小的云朵）
type Viewport struct {
	Width  float64
	Height float64
	Narrow bool
}
