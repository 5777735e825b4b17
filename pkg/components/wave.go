package components

import "math"

// Wave 驱动地平线起伏的正弦波（全局唯一实例）
type Wave struct {
	Amplitude float64 // 振幅（像素）
	Frequency float64 // 空间频率（弧度/像素）
	Speed     float64 // 相位速度（弧度/参考帧）
	Offset    float64 // 当前相位
}

// Displacement 返回 x 处的竖直位移
// 纯函数：只依赖 x 与当前相位
func (w *Wave) Displacement(x float64) float64 {
	return math.Sin(x*w.Frequency+w.Offset) * w.Amplitude
}

// HorizonY 返回 x 处的地平线高度
func (w *Wave) HorizonY(baseY, x float64) float64 {
	return baseY + w.Displacement(x)
}
