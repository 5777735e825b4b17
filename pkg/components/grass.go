package components

// GrassTuft 地平线上的一簇草
// BaseY 每帧由波浪函数重新计算，其余字段创建后不变
type GrassTuft struct {
	X      float64
	BaseY  float64
	Height float64 // 草叶高度
	Width  float64 // 描边宽度

	SwaySpeed  float64 // 摆动角速度（弧度/毫秒）
	SwayOffset float64 // 摆动相位
}
