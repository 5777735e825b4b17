package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a drawable, updatable scene.
// Only one scene is active at a time; it is driven by the App once per tick.
type Scene interface {
	// Update advances the scene logic.
	// deltaMs is the clamped time elapsed since the last update in milliseconds.
	Update(deltaMs float64)

	// Draw renders the scene to the provided screen.
	// Draw must not mutate simulation state.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，画布尺寸变化时由 App 调用
type Resizable interface {
	Resize(width, height int)
}

// InputHandler 是一个可选接口，App 在推进模拟之后、绘制之前调用，用于处理本帧输入
type InputHandler interface {
	HandleInput()
}
