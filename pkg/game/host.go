package game

import "time"

// Clock 宿主时钟
// 帧时间戳基于单调时钟（time.Time 自带 monotonic 读数），
// 草叶摆动和标签换色使用墙上时间毫秒数
type Clock interface {
	Now() time.Time
}

// SystemClock 使用 time.Now 的默认时钟
type SystemClock struct{}

// Now 返回当前时间
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Visibility 宿主可见性
// Hidden 返回 true 时帧循环暂停，恢复可见时重置时间基线
type Visibility interface {
	Hidden() bool
}

// InteractiveTarget 判断指针位置下是否存在前景交互元素
//
// 点击落在交互元素上时，场景不做任何处理（但事件仍视为已消费）。
// 坐标为画布坐标，与覆盖层布局一致。
type InteractiveTarget interface {
	IsInteractiveTarget(x, y float64) bool
}

// WallClockMs 返回墙上时间的毫秒数（Unix 纪元）
func WallClockMs(c Clock) float64 {
	return float64(c.Now().UnixNano()) / float64(time.Millisecond)
}
