package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 解析 "#RGB"、"#RRGGBB" 或 "#RRGGBBAA" 形式的颜色
//
// RGB 部分交给 go-colorful 解析，可选的两位 Alpha 在这里单独处理。
//
// 返回：
//   - color.RGBA: 非预乘的颜色值
//   - error: 格式错误时返回
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)

	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// LerpColor 在两个颜色之间线性插值（t 会被限制在 0~1）
// 用于天空、草地等竖直渐变的逐顶点着色
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	a := colorful.Color{R: float64(from.R) / 255, G: float64(from.G) / 255, B: float64(from.B) / 255}
	b := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}
	r, g, bl := a.BlendRgb(b, t).Clamped().RGB255()
	alpha := float64(from.A) + (float64(to.A)-float64(from.A))*t
	return color.RGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// WithAlpha 返回替换了透明度的颜色，alpha 取值 0~1
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	c.A = uint8(Clamp01(alpha)*255 + 0.5)
	return c
}

// Clamp01 将值限制在 0.0 ~ 1.0 范围内
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
