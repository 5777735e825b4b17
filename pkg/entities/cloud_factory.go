package entities

import (
	"image/color"
	"math/rand/v2"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/utils"
)

// CloudFactory 生成与回收云朵
//
// 所有随机属性都从配置中的均匀分布抽取，形状和颜色从封闭集合中均匀选择。
// 工厂不持有云朵，只负责填充属性。
type CloudFactory struct {
	cfg     *config.CloudConfig
	palette []color.RGBA
	rng     *rand.Rand
}

// NewCloudFactory 创建云朵工厂
//
// 参数:
//   - cfg: 场景配置（使用 Clouds 与 Colors.Primitives）
//   - rng: 随机源，测试中可传入固定种子
func NewCloudFactory(cfg *config.SceneConfig, rng *rand.Rand) *CloudFactory {
	return &CloudFactory{
		cfg:     &cfg.Clouds,
		palette: cfg.Colors.PaletteRGBA(),
		rng:     rng,
	}
}

// NewCloud 创建一朵位于右侧屏幕外的新云
// x 在 [w, 2w) 内随机，使得连续生成的云朵错开入场
func (f *CloudFactory) NewCloud(vp components.Viewport) components.CloudComponent {
	c := components.CloudComponent{Active: true}
	f.randomize(&c, vp)
	c.X = vp.Width + f.rng.Float64()*vp.Width
	return c
}

// InitialClouds 创建启动（或尺寸变化）时的整组云朵
// 数量按视口选择；x 重新分布在 [0, spread*w) 内，让天空一开始就有云
func (f *CloudFactory) InitialClouds(vp components.Viewport) []components.CloudComponent {
	count := f.cfg.CloudCountFor(vp.Narrow)
	clouds := make([]components.CloudComponent, 0, count)
	for i := 0; i < count; i++ {
		c := f.NewCloud(vp)
		c.X = f.rng.Float64() * vp.Width * f.cfg.InitialSpread
		clouds = append(clouds, c)
	}
	return clouds
}

// Recycle 原地回收移出左边界的云朵
//
// 重新随机 y、尺寸、形状和速度，放到右边界外 2*size 处；
// 颜色、透明度和旋转保持不变。
func (f *CloudFactory) Recycle(c *components.CloudComponent, vp components.Viewport) {
	size := f.cfg.SizeRangeFor(vp.Narrow)
	c.Y = f.rng.Float64() * vp.Height * f.cfg.SkyBand
	c.Size = utils.RandRange(f.rng, size.Min, size.Max)
	c.Shape = utils.RandPick(f.rng, f.cfg.Shapes)
	c.Speed = utils.RandRange(f.rng, f.cfg.Speed.Min, f.cfg.Speed.Max)
	c.X = vp.Width + c.Size*2
	c.Active = true
}

// Respawn 被击中的云朵原地替换为一朵全新的云（位于右侧屏幕外）
// 数组中的位置不变，总数不变
func (f *CloudFactory) Respawn(c *components.CloudComponent, vp components.Viewport) {
	*c = f.NewCloud(vp)
}

// NeedsRecycle 判断云朵是否已完全移出左边界（含边距）
func (f *CloudFactory) NeedsRecycle(c *components.CloudComponent) bool {
	return c.X+c.Size < -f.cfg.OffscreenMargin
}

func (f *CloudFactory) randomize(c *components.CloudComponent, vp components.Viewport) {
	size := f.cfg.SizeRangeFor(vp.Narrow)
	c.Y = f.rng.Float64() * vp.Height * f.cfg.SkyBand
	c.Speed = utils.RandRange(f.rng, f.cfg.Speed.Min, f.cfg.Speed.Max)
	c.Size = utils.RandRange(f.rng, size.Min, size.Max)
	c.Shape = utils.RandPick(f.rng, f.cfg.Shapes)
	c.Color = utils.RandPick(f.rng, f.palette)
	c.Opacity = utils.RandRange(f.rng, f.cfg.Opacity.Min, f.cfg.Opacity.Max)
	c.Rotation = utils.RandAngle(f.rng)
	c.RotationSpeed = utils.RandRange(f.rng, -f.cfg.MaxRotationSpeed, f.cfg.MaxRotationSpeed)
}
