package game

import "log"

// LoopState 帧循环状态
type LoopState int

const (
	LoopStopped LoopState = iota
	LoopRunning
	LoopPaused
)

func (s LoopState) String() string {
	switch s {
	case LoopStopped:
		return "stopped"
	case LoopRunning:
		return "running"
	case LoopPaused:
		return "paused"
	}
	return "unknown"
}

// FrameLoop 帧调度器
//
// 宿主每帧调用一次 Tick(timestamp)，FrameLoop 只在 running 状态下产出 Δt。
// 状态转换：
//
//	stopped --Start--> running --Pause--> paused --Resume--> running
//	任意状态 --Stop--> stopped
//
// Start 和 Resume 都会重置时间基线，恢复后的第一帧 Δt 接近 0，
// 而不是整个隐藏期间的真实间隔。
type FrameLoop struct {
	state       LoopState
	maxDeltaMs  float64
	lastMs      float64
	hasBaseline bool
	frames      uint64
}

// NewFrameLoop 创建帧循环，maxDeltaMs 为单帧 Δt 上限
func NewFrameLoop(maxDeltaMs float64) *FrameLoop {
	return &FrameLoop{
		state:      LoopStopped,
		maxDeltaMs: maxDeltaMs,
	}
}

// Start 从 stopped 进入 running
// 基线在第一次 Tick 时建立
func (l *FrameLoop) Start() {
	if l.state != LoopStopped {
		return
	}
	l.state = LoopRunning
	l.hasBaseline = false
	log.Printf("[FrameLoop] started")
}

// Stop 停止循环，之后 Tick 不再产出帧
func (l *FrameLoop) Stop() {
	if l.state == LoopStopped {
		return
	}
	l.state = LoopStopped
	l.hasBaseline = false
	log.Printf("[FrameLoop] stopped after %d frames", l.frames)
}

// Pause 宿主隐藏时调用
func (l *FrameLoop) Pause() {
	if l.state != LoopRunning {
		return
	}
	l.state = LoopPaused
	log.Printf("[FrameLoop] paused")
}

// Resume 宿主重新可见时调用，nowMs 作为新的时间基线
func (l *FrameLoop) Resume(nowMs float64) {
	if l.state != LoopPaused {
		return
	}
	l.state = LoopRunning
	l.lastMs = nowMs
	l.hasBaseline = true
	log.Printf("[FrameLoop] resumed")
}

// Tick 推进一帧
//
// 参数:
//   - timestampMs: 单调时间戳（毫秒）
//
// 返回:
//   - deltaMs: 限制在 [0, maxDeltaMs] 内的帧间隔
//   - ok: 循环不在 running 状态时为 false，调用方不应推进模拟
func (l *FrameLoop) Tick(timestampMs float64) (deltaMs float64, ok bool) {
	if l.state != LoopRunning {
		return 0, false
	}
	if !l.hasBaseline {
		l.lastMs = timestampMs
		l.hasBaseline = true
	}

	deltaMs = timestampMs - l.lastMs
	l.lastMs = timestampMs

	if deltaMs < 0 {
		deltaMs = 0
	}
	if deltaMs > l.maxDeltaMs {
		deltaMs = l.maxDeltaMs
	}

	l.frames++
	return deltaMs, true
}

// State 返回当前状态
func (l *FrameLoop) State() LoopState {
	return l.state
}

// Frames 返回已产出的帧数
func (l *FrameLoop) Frames() uint64 {
	return l.frames
}
