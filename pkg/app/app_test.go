package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vibefield/pkg/game"
	"github.com/decker502/vibefield/pkg/scenes"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeVisibility struct {
	hidden bool
}

func (v *fakeVisibility) Hidden() bool { return v.hidden }

func newTestApp(t *testing.T) (*App, *fakeClock, *fakeVisibility) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	vis := &fakeVisibility{}
	a, err := NewApp(Config{
		ConfigPath: filepath.Join("..", "..", "data", "scene.yaml"),
		Width:      800,
		Height:     600,
		Seed:       3,
		Clock:      clock,
		Visibility: vis,
	})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return a, clock, vis
}

func skyState(t *testing.T, a *App) *game.SceneState {
	t.Helper()
	sky, ok := a.Scene().(*scenes.SkyScene)
	if !ok {
		t.Fatalf("unexpected scene type %T", a.Scene())
	}
	return sky.State()
}

func TestNewApp_BadConfigPath(t *testing.T) {
	_, err := NewApp(Config{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestApp_UpdateAdvancesScene(t *testing.T) {
	a, clock, _ := newTestApp(t)
	state := skyState(t, a)

	// 第一帧建立基线，Δt = 0
	if err := a.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if state.Wave.Offset != 0 {
		t.Errorf("first frame should not advance the wave, offset=%v", state.Wave.Offset)
	}

	clock.advance(16 * time.Millisecond)
	_ = a.Update()
	if state.Wave.Offset <= 0 {
		t.Error("second frame should advance the wave")
	}
	if a.Loop().Frames() != 2 {
		t.Errorf("frames = %d, want 2", a.Loop().Frames())
	}
}

// TestApp_ClampsLargeDelta 长时间卡顿后的 Δt 被限制在上限内
func TestApp_ClampsLargeDelta(t *testing.T) {
	a, clock, _ := newTestApp(t)
	state := skyState(t, a)

	_ = a.Update()
	clock.advance(5 * time.Second)
	_ = a.Update()

	want := state.Wave.Speed * 100 / 16
	if diff := state.Wave.Offset - want; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("offset = %v, want %v (clamped to 100ms)", state.Wave.Offset, want)
	}
}

// TestApp_PauseWhileHidden 隐藏期间不推进，恢复后第一帧 Δt 为 0
func TestApp_PauseWhileHidden(t *testing.T) {
	a, clock, vis := newTestApp(t)
	state := skyState(t, a)

	_ = a.Update()
	clock.advance(16 * time.Millisecond)
	_ = a.Update()
	offset := state.Wave.Offset

	vis.hidden = true
	for i := 0; i < 10; i++ {
		clock.advance(16 * time.Millisecond)
		_ = a.Update()
	}
	if a.Loop().State() != game.LoopPaused {
		t.Fatalf("loop state = %v, want paused", a.Loop().State())
	}
	if state.Wave.Offset != offset {
		t.Error("scene advanced while hidden")
	}

	vis.hidden = false
	clock.advance(time.Minute)
	_ = a.Update()
	if a.Loop().State() != game.LoopRunning {
		t.Fatalf("loop state = %v, want running", a.Loop().State())
	}
	if state.Wave.Offset != offset {
		t.Errorf("first frame after resume should have Δt 0, offset moved %v -> %v", offset, state.Wave.Offset)
	}
}

func TestApp_LayoutAppliesResizeOnUpdate(t *testing.T) {
	a, _, _ := newTestApp(t)
	state := skyState(t, a)

	w, h := a.Layout(500, 900)
	if w != 500 || h != 900 {
		t.Errorf("Layout returned %dx%d, want 500x900", w, h)
	}
	if state.Viewport.Width != 800 {
		t.Error("resize should wait for the next Update")
	}

	_ = a.Update()
	if state.Viewport.Width != 500 || state.Viewport.Height != 900 {
		t.Errorf("viewport = %vx%v, want 500x900", state.Viewport.Width, state.Viewport.Height)
	}
	if !state.Viewport.Narrow {
		t.Error("500px wide surface should use the narrow profile")
	}

	// 零尺寸（例如最小化）被忽略
	if w, h := a.Layout(0, 0); w != 500 || h != 900 {
		t.Errorf("Layout(0, 0) = %dx%d, want current size", w, h)
	}
}

func TestApp_Close(t *testing.T) {
	a, clock, _ := newTestApp(t)
	_ = a.Update()
	a.Close()

	clock.advance(16 * time.Millisecond)
	_ = a.Update()
	if a.Loop().State() != game.LoopStopped || a.Loop().Frames() != 1 {
		t.Errorf("loop should stay stopped, state=%v frames=%d", a.Loop().State(), a.Loop().Frames())
	}
}

// recordingScene 记录 App 调用场景方法的顺序
type recordingScene struct {
	calls []string
}

func (r *recordingScene) Update(deltaMs float64)    { r.calls = append(r.calls, "update") }
func (r *recordingScene) Draw(screen *ebiten.Image) {}
func (r *recordingScene) HandleInput()              { r.calls = append(r.calls, "input") }

// TestApp_InputAfterSimulation 每个 tick 先推进模拟再处理输入，新实体在运动前先被绘制一次
func TestApp_InputAfterSimulation(t *testing.T) {
	a, clock, _ := newTestApp(t)
	rec := &recordingScene{}
	a.scene = rec

	_ = a.Update()
	clock.advance(16 * time.Millisecond)
	_ = a.Update()

	want := []string{"update", "input", "update", "input"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", rec.calls, want)
		}
	}
}
