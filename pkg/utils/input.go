// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPress 一次刚刚发生的按下（鼠标左键或触摸）
type PointerPress struct {
	// X, Y 按下位置（窗口客户区坐标）
	X, Y int
	// Touch 是否来自触摸
	Touch bool
}

// AppendJustPressedPointers 把本帧所有刚按下的指针追加到 presses 后返回
//
// 同一帧内有触摸按下时忽略鼠标：部分平台会把触摸再模拟成一次鼠标点击，
// 同一个手指只应该触发一次。
func AppendJustPressedPointers(presses []PointerPress) []PointerPress {
	var touches []PointerPress
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, PointerPress{X: x, Y: y, Touch: true})
	}

	var mouse *PointerPress
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		mouse = &PointerPress{X: x, Y: y}
	}

	return mergePointerPresses(presses, touches, mouse)
}

// mergePointerPresses 合并触摸与鼠标按下，触摸优先
func mergePointerPresses(presses, touches []PointerPress, mouse *PointerPress) []PointerPress {
	if len(touches) > 0 {
		return append(presses, touches...)
	}
	if mouse != nil {
		return append(presses, *mouse)
	}
	return presses
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsKeyJustPressed 检查任一按键是否刚刚按下
func IsKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
