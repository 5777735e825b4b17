package game

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/entities"
	"github.com/decker502/vibefield/pkg/utils"
)

// SceneState 场景的全部可变状态
//
// 由场景独占，按引用传给各个系统：模拟系统修改它，渲染系统只读。
// 没有任何包级全局变量。
type SceneState struct {
	Viewport components.Viewport

	Wave       components.Wave
	Sun        components.SunComponent
	Clouds     []components.CloudComponent // 数组身份稳定：回收和击中都原地修改
	Grass      []components.GrassTuft      // 尺寸变化时清空，下一次模拟时重新生成
	Explosions []components.ExplosionComponent
	Labels     []components.TextPrimitive // 只读

	cfg          *config.SceneConfig
	rng          *rand.Rand
	cloudFactory *entities.CloudFactory
}

// NewSceneState 创建场景状态并按初始画布尺寸完成初始化
//
// 参数:
//   - cfg: 已校验的场景配置
//   - rng: 随机源（所有工厂共享）
//   - width, height: 初始画布尺寸
func NewSceneState(cfg *config.SceneConfig, rng *rand.Rand, width, height int) *SceneState {
	s := &SceneState{
		Wave: components.Wave{
			Amplitude: cfg.Wave.Amplitude,
			Frequency: cfg.Wave.Frequency,
			Speed:     cfg.Wave.Speed,
		},
		Sun: components.SunComponent{
			Radius:      cfg.Sun.Radius,
			GlowRadius:  cfg.Sun.GlowRadius,
			GlowOpacity: cfg.Sun.GlowOpacity,
		},
		Labels:       append([]components.TextPrimitive(nil), cfg.Labels.Items...),
		cfg:          cfg,
		rng:          rng,
		cloudFactory: entities.NewCloudFactory(cfg, rng),
	}
	s.applySize(width, height)
	return s
}

// Resize 处理画布尺寸变化
//
// 依次：更新视口、清空草簇（下一帧惰性重建）、按比例重新定位太阳、重新初始化云朵。
// 尺寸未变化时不做任何事，返回 false。
func (s *SceneState) Resize(width, height int) bool {
	if float64(width) == s.Viewport.Width && float64(height) == s.Viewport.Height {
		return false
	}
	s.applySize(width, height)
	log.Printf("[SceneState] resized to %dx%d (narrow=%v, clouds=%d)", width, height, s.Viewport.Narrow, len(s.Clouds))
	return true
}

func (s *SceneState) applySize(width, height int) {
	w, h := float64(width), float64(height)
	s.Viewport = components.Viewport{
		Width:  w,
		Height: h,
		Narrow: w < s.cfg.Clouds.NarrowBreakpoint || utils.IsMobile(),
	}

	s.Grass = s.Grass[:0]

	s.Sun.X = w * s.cfg.Sun.XFraction
	s.Sun.Y = h * s.cfg.Sun.YFraction

	s.Clouds = s.cloudFactory.InitialClouds(s.Viewport)
}

// HorizonBaseY 地平线基准高度
func (s *SceneState) HorizonBaseY() float64 {
	return s.Viewport.Height * s.cfg.Horizon.BaseFraction
}

// HorizonY 返回 x 处的地平线高度（纯函数：只依赖 x 与波浪相位）
func (s *SceneState) HorizonY(x float64) float64 {
	return s.Wave.HorizonY(s.HorizonBaseY(), x)
}

// AddExplosion 加入一个新的爆炸
func (s *SceneState) AddExplosion(e components.ExplosionComponent) {
	if len(e.Particles) == 0 {
		return
	}
	s.Explosions = append(s.Explosions, e)
}

// ParticleCount 返回当前存活粒子总数
func (s *SceneState) ParticleCount() int {
	n := 0
	for i := range s.Explosions {
		n += len(s.Explosions[i].Particles)
	}
	return n
}

// Config 返回场景配置
func (s *SceneState) Config() *config.SceneConfig {
	return s.cfg
}

// Rand 返回共享随机源
func (s *SceneState) Rand() *rand.Rand {
	return s.rng
}

// CloudFactory 返回云朵工厂
func (s *SceneState) CloudFactory() *entities.CloudFactory {
	return s.cloudFactory
}
