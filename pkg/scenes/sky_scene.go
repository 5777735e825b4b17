package scenes

import (
	"fmt"
	"image"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/game"
	"github.com/decker502/vibefield/pkg/modules"
	"github.com/decker502/vibefield/pkg/systems"
	"github.com/decker502/vibefield/pkg/utils"
)

// SkyScene 天空背景场景
//
// 持有场景状态和所有系统，每帧按固定顺序推进：
// 波浪 → 云朵 → 草簇 → 爆炸。输入在模拟之后处理，绘制只读。
type SkyScene struct {
	state *game.SceneState

	waveSystem      *systems.WaveSystem
	cloudSystem     *systems.CloudMovementSystem
	grassSystem     *systems.GrassSystem
	explosionSystem *systems.ExplosionSystem
	inputSystem     *systems.InputSystem
	renderSystem    *systems.RenderSystem

	overlay *modules.OverlayModule

	showDebug bool
	// DebugStatus 调试信息里附加的一行（例如帧循环状态），可以为 nil
	DebugStatus func() string
}

// NewSkyScene 创建天空场景
//
// 参数:
//   - cfg: 已校验的场景配置
//   - rng: 随机源
//   - clock: 宿主时钟
//   - width, height: 初始画布尺寸
func NewSkyScene(cfg *config.SceneConfig, rng *rand.Rand, clock game.Clock, width, height int) (*SkyScene, error) {
	state := game.NewSceneState(cfg, rng, width, height)

	overlay, err := modules.NewOverlayModule(cfg.Overlay, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create sky scene: %w", err)
	}

	render, err := systems.NewRenderSystem(state, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create sky scene: %w", err)
	}

	s := &SkyScene{
		state:           state,
		waveSystem:      systems.NewWaveSystem(state),
		cloudSystem:     systems.NewCloudMovementSystem(state),
		grassSystem:     systems.NewGrassSystem(state),
		explosionSystem: systems.NewExplosionSystem(state),
		inputSystem:     systems.NewInputSystem(state, overlay),
		renderSystem:    render,
		overlay:         overlay,
	}

	s.inputSystem.SetSurfaceBounds(image.Rect(0, 0, width, height))

	log.Printf("[SkyScene] created %dx%d with %d clouds", width, height, len(state.Clouds))
	return s, nil
}

// HandleInput 处理本帧输入：覆盖层、射击、调试开关
func (s *SkyScene) HandleInput() {
	if utils.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
		log.Printf("[SkyScene] debug overlay: %v", s.showDebug)
	}

	s.overlay.Update()
	s.inputSystem.Update()
}

// Update 推进一帧模拟
func (s *SkyScene) Update(deltaMs float64) {
	s.waveSystem.Update(deltaMs)
	s.cloudSystem.Update(deltaMs)
	s.grassSystem.Update(deltaMs)
	s.explosionSystem.Update(deltaMs)
}

// Draw 绘制场景和覆盖层
func (s *SkyScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.overlay.Draw(screen)

	if s.showDebug {
		s.drawDebug(screen)
	}
}

// Resize 画布尺寸变化
func (s *SkyScene) Resize(width, height int) {
	if s.state.Resize(width, height) {
		s.overlay.Resize(width, height)
		s.inputSystem.SetSurfaceBounds(image.Rect(0, 0, width, height))
	}
}

// State 返回场景状态
func (s *SkyScene) State() *game.SceneState {
	return s.state
}

// Input 返回输入系统
func (s *SkyScene) Input() *systems.InputSystem {
	return s.inputSystem
}

// Overlay 返回覆盖层
func (s *SkyScene) Overlay() *modules.OverlayModule {
	return s.overlay
}
