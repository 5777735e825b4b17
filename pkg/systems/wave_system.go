package systems

import "github.com/decker502/vibefield/pkg/game"

// WaveSystem 推进地平线波浪相位
//
// 相位只在这里前进；地平线、草簇基线和标签浮动都从同一个相位派生。
type WaveSystem struct {
	state *game.SceneState
}

// NewWaveSystem 创建波浪系统
func NewWaveSystem(state *game.SceneState) *WaveSystem {
	return &WaveSystem{state: state}
}

// Update 按 Δt/参考帧 缩放推进相位
func (s *WaveSystem) Update(deltaMs float64) {
	s.state.Wave.Offset += s.state.Wave.Speed * frameScale(s.state, deltaMs)
}

// frameScale 把毫秒 Δt 换算成参考帧数
func frameScale(state *game.SceneState, deltaMs float64) float64 {
	ref := state.Config().Timing.ReferenceFrameMs
	if ref <= 0 {
		return 0
	}
	return deltaMs / ref
}
