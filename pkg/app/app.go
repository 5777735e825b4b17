// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/game"
	"github.com/decker502/vibefield/pkg/scenes"
	"github.com/decker502/vibefield/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 场景配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// Width, Height 初始画布尺寸，<= 0 时使用默认窗口尺寸
	Width, Height int
	// Seed 随机种子，0 表示每次启动随机
	Seed uint64

	// Clock 宿主时钟，为 nil 时使用系统时钟
	Clock game.Clock
	// Visibility 宿主可见性，为 nil 时根据窗口状态判断
	Visibility game.Visibility
}

// windowVisibility 窗口最小化或失去焦点时视为隐藏
type windowVisibility struct{}

func (windowVisibility) Hidden() bool {
	return ebiten.IsWindowMinimized() || !ebiten.IsFocused()
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene      game.Scene
	loop       *game.FrameLoop
	clock      game.Clock
	visibility game.Visibility
	start      time.Time

	width, height int
	// pendingW, pendingH Layout 记录的新尺寸，下一次 Update 时应用
	pendingW, pendingH int

	verbose bool
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneCfg, err := loadSceneConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = config.DefaultWindowWidth, config.DefaultWindowHeight
	}

	clock := cfg.Clock
	if clock == nil {
		clock = game.SystemClock{}
	}
	visibility := cfg.Visibility
	if visibility == nil {
		visibility = windowVisibility{}
	}

	sky, err := scenes.NewSkyScene(sceneCfg, utils.NewRand(cfg.Seed), clock, width, height)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	a := &App{
		scene:      sky,
		loop:       game.NewFrameLoop(sceneCfg.Timing.MaxDeltaMs),
		clock:      clock,
		visibility: visibility,
		start:      clock.Now(),
		width:      width,
		height:     height,
		verbose:    cfg.Verbose,
	}
	sky.DebugStatus = func() string {
		return fmt.Sprintf("loop: %s  frames: %d", a.loop.State(), a.loop.Frames())
	}

	a.loop.Start()
	log.Printf("[App] started %dx%d (seed=%d)", width, height, cfg.Seed)
	return a, nil
}

func loadSceneConfig(path string) (*config.SceneConfig, error) {
	if path == "" {
		return config.LoadEmbeddedSceneConfig()
	}
	return config.LoadSceneConfig(path)
}

// nowMs 自启动以来的单调时间（毫秒）
func (a *App) nowMs() float64 {
	return float64(a.clock.Now().Sub(a.start)) / float64(time.Millisecond)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if utils.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		log.Printf("[App] fullscreen: %v", ebiten.IsFullscreen())
	}

	a.applyPendingResize()

	now := a.nowMs()
	hidden := a.visibility.Hidden()
	switch {
	case hidden && a.loop.State() == game.LoopRunning:
		a.loop.Pause()
	case !hidden && a.loop.State() == game.LoopPaused:
		a.loop.Resume(now)
	}

	deltaMs, ok := a.loop.Tick(now)
	if !ok {
		return nil
	}

	// 先推进已有实体，再处理输入：本帧新生成的实体以初始状态绘制一次后才开始运动
	a.scene.Update(deltaMs)
	if h, ok := a.scene.(game.InputHandler); ok {
		h.HandleInput()
	}
	return nil
}

func (a *App) applyPendingResize() {
	if a.pendingW <= 0 || a.pendingH <= 0 {
		return
	}
	w, h := a.pendingW, a.pendingH
	a.pendingW, a.pendingH = 0, 0
	if w == a.width && h == a.height {
		return
	}

	a.width, a.height = w, h
	if r, ok := a.scene.(game.Resizable); ok {
		r.Resize(w, h)
	}
	log.Printf("[App] surface resized to %dx%d", w, h)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// Layout 逻辑画布尺寸与窗口尺寸一致
// 尺寸变化被记录下来，由下一次 Update 应用到场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.width, a.height
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		a.pendingW, a.pendingH = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// Close 停止帧循环
func (a *App) Close() {
	a.loop.Stop()
}

// Scene 返回当前场景
func (a *App) Scene() game.Scene {
	return a.scene
}

// Loop 返回帧循环
func (a *App) Loop() *game.FrameLoop {
	return a.loop
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
