package utils

import "math"

// EaseOutCubic 三次方缓出，输入会被限制在 0~1
// 特点：开始快，结束慢（覆盖层悬停高亮使用）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-Clamp01(t), 3)
}
