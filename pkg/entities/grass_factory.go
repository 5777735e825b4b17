package entities

import (
	"math/rand/v2"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/utils"
)

// NewGrassTufts 沿地平线生成一排草簇
//
// 从 x=0 开始每隔 Spacing 像素一簇（带 ±Jitter 的随机偏移），
// 最后在 x=w-1 处固定补一簇，保证草一直延伸到右边缘。
//
// 参数:
//   - rng: 随机源
//   - cfg: 草簇配置
//   - vp: 当前视口
//   - wave: 共享的地平线波浪
//   - horizonY: 地平线基准高度
func NewGrassTufts(rng *rand.Rand, cfg *config.GrassConfig, vp components.Viewport, wave *components.Wave, horizonY float64) []components.GrassTuft {
	tufts := make([]components.GrassTuft, 0, int(vp.Width/cfg.Spacing)+2)

	for x := 0.0; x < vp.Width; x += cfg.Spacing {
		tufts = append(tufts, newGrassTuft(rng, cfg, x+utils.RandRange(rng, -cfg.Jitter, cfg.Jitter), wave.HorizonY(horizonY, x)))
	}

	// 右边缘补一簇
	edge := vp.Width - 1
	tufts = append(tufts, newGrassTuft(rng, cfg, edge, wave.HorizonY(horizonY, vp.Width)))

	return tufts
}

func newGrassTuft(rng *rand.Rand, cfg *config.GrassConfig, x, baseY float64) components.GrassTuft {
	return components.GrassTuft{
		X:          x,
		BaseY:      baseY,
		Height:     utils.RandRange(rng, cfg.Height.Min, cfg.Height.Max),
		Width:      utils.RandRange(rng, cfg.Width.Min, cfg.Width.Max),
		SwaySpeed:  utils.RandRange(rng, cfg.SwaySpeed.Min, cfg.SwaySpeed.Max),
		SwayOffset: utils.RandAngle(rng),
	}
}
