package entities

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// NewExplosion 在 (x, y) 创建包含 count 个粒子的爆炸
//
// 每个粒子的方向在 [0, 2π) 内均匀分布，速度、尺寸、寿命从 burst 的范围中抽取。
// 所有粒子初始位置都是爆炸原点，MaxLife 等于初始 Life。
//
// 参数:
//   - rng: 随机源
//   - x, y: 爆炸原点（画布坐标）
//   - clr: 粒子颜色
//   - count: 粒子数量
//   - burst: 速度/尺寸/寿命范围
func NewExplosion(rng *rand.Rand, x, y float64, clr color.RGBA, count int, burst *config.BurstConfig) components.ExplosionComponent {
	particles := make([]components.ParticleComponent, 0, count)
	for i := 0; i < count; i++ {
		angle := utils.RandAngle(rng)
		speed := utils.RandRange(rng, burst.Speed.Min, burst.Speed.Max)
		velocity := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(speed)
		life := utils.RandRange(rng, burst.Life.Min, burst.Life.Max)

		particles = append(particles, components.ParticleComponent{
			X:       x,
			Y:       y,
			VX:      velocity.X(),
			VY:      velocity.Y(),
			Size:    utils.RandRange(rng, burst.Size.Min, burst.Size.Max),
			Life:    life,
			MaxLife: life,
			Color:   clr,
		})
	}

	return components.ExplosionComponent{
		X:         x,
		Y:         y,
		Particles: particles,
	}
}

// NewHitExplosion 云朵被击中时的爆炸：以云朵中心为原点、云朵颜色为粒子颜色
func NewHitExplosion(rng *rand.Rand, cfg *config.ExplosionConfig, cloud *components.CloudComponent) components.ExplosionComponent {
	count := utils.RandIntRange(rng, cfg.Hit.Count.Min, cfg.Hit.Count.Max)
	return NewExplosion(rng, cloud.X, cloud.Y, cloud.Color, count, &cfg.Hit)
}

// NewMissExplosion 未命中时在指针位置产生的小型白色爆炸
func NewMissExplosion(rng *rand.Rand, cfg *config.ExplosionConfig, x, y float64) components.ExplosionComponent {
	count := utils.RandIntRange(rng, cfg.Miss.Count.Min, cfg.Miss.Count.Max)
	return NewExplosion(rng, x, y, cfg.Miss.Color.RGBA, count, &cfg.Miss)
}
