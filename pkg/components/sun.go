package components

// SunComponent 天空中的太阳
// 位置按画布尺寸比例计算，窗口尺寸变化时重新定位
type SunComponent struct {
	X, Y        float64
	Radius      float64 // 实心圆半径
	GlowRadius  float64 // 光晕外半径
	GlowOpacity float64 // 光晕内圈透明度
}
