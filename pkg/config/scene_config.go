package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/decker502/vibefield/pkg/embedded"
	"github.com/decker502/vibefield/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultSceneConfigPath 嵌入的默认场景配置路径
const DefaultSceneConfigPath = "data/scene.yaml"

// ErrInvalidConfig 配置校验失败时返回的哨兵错误
// 调用者可以用 errors.Is 判断
var ErrInvalidConfig = errors.New("invalid scene config")

// Color 可从 YAML 十六进制字符串解析的颜色
type Color struct {
	color.RGBA
}

// UnmarshalText 解析 "#RRGGBB" / "#RRGGBBAA"
func (c *Color) UnmarshalText(text []byte) error {
	rgba, err := utils.ParseHexColor(string(text))
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

// Range 浮点数均匀分布范围 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange 整数均匀分布范围 [Min, Max]
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ColorConfig 场景配色
type ColorConfig struct {
	SkyTop     Color   `yaml:"skyTop"`
	SkyBottom  Color   `yaml:"skyBottom"`
	SunGlow    Color   `yaml:"sunGlow"`
	SunCore    Color   `yaml:"sunCore"`
	FieldFar   Color   `yaml:"fieldFar"`
	FieldNear  Color   `yaml:"fieldNear"`
	GrassTip   Color   `yaml:"grassTip"`
	LabelText  Color   `yaml:"labelText"`
	Primitives []Color `yaml:"primitives"` // 云朵与标签的调色板
}

// TimingConfig 帧时间归一化参数
type TimingConfig struct {
	// ReferenceFrameMs 设计目标帧间隔（毫秒），运动量按 Δt/ReferenceFrameMs 缩放
	ReferenceFrameMs float64 `yaml:"referenceFrameMs"`
	// MaxDeltaMs Δt 上限，避免恢复后出现大跳变
	MaxDeltaMs float64 `yaml:"maxDeltaMs"`
}

// WaveConfig 地平线正弦波参数
type WaveConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Speed     float64 `yaml:"speed"`
}

// HorizonConfig 地平线与天空的布局比例
type HorizonConfig struct {
	BaseFraction float64 `yaml:"baseFraction"` // 地平线基准高度 / 画布高度
	SkyFraction  float64 `yaml:"skyFraction"`  // 天空渐变覆盖高度 / 画布高度
	SampleStep   float64 `yaml:"sampleStep"`   // 地平线采样步长（像素）
}

// SunConfig 太阳参数
type SunConfig struct {
	XFraction   float64 `yaml:"xFraction"`
	YFraction   float64 `yaml:"yFraction"`
	Radius      float64 `yaml:"radius"`
	GlowRadius  float64 `yaml:"glowRadius"`
	GlowOpacity float64 `yaml:"glowOpacity"`
}

// CloudConfig 云朵生成参数
type CloudConfig struct {
	Count            int     `yaml:"count"`
	NarrowCount      int     `yaml:"narrowCount"`
	NarrowBreakpoint float64 `yaml:"narrowBreakpoint"` // 宽度小于该值视为窄屏
	SkyBand          float64 `yaml:"skyBand"`          // 云朵 y 位于画布顶部的比例区域
	InitialSpread    float64 `yaml:"initialSpread"`    // 启动时 x 分布在 [0, spread*w)
	OffscreenMargin  float64 `yaml:"offscreenMargin"`  // x+size 小于 -margin 时回收

	Shapes           []components.ShapeKind `yaml:"shapes"`
	Speed            Range                  `yaml:"speed"`
	Size             Range                  `yaml:"size"`
	NarrowSize       Range                  `yaml:"narrowSize"`
	Opacity          Range                  `yaml:"opacity"`
	MaxRotationSpeed float64                `yaml:"maxRotationSpeed"`
}

// GrassConfig 草簇参数
type GrassConfig struct {
	Spacing       float64 `yaml:"spacing"`
	Jitter        float64 `yaml:"jitter"`
	Height        Range   `yaml:"height"`
	Width         Range   `yaml:"width"`
	SwaySpeed     Range   `yaml:"swaySpeed"`
	SwayAmplitude float64 `yaml:"swayAmplitude"`
}

// BurstConfig 一种爆炸的粒子参数
type BurstConfig struct {
	Color Color    `yaml:"color"` // 仅未命中爆炸使用；命中爆炸取云朵颜色
	Count IntRange `yaml:"count"`
	Speed Range    `yaml:"speed"`
	Size  Range    `yaml:"size"`
	Life  Range    `yaml:"life"`
}

// ExplosionConfig 爆炸参数
type ExplosionConfig struct {
	Gravity float64     `yaml:"gravity"`
	Hit     BurstConfig `yaml:"hit"`
	Miss    BurstConfig `yaml:"miss"`
}

// LabelConfig 漂浮标签
type LabelConfig struct {
	BobAmplitude float64                    `yaml:"bobAmplitude"`
	ColorCycleMs float64                    `yaml:"colorCycleMs"`
	Items        []components.TextPrimitive `yaml:"items"`
}

// OverlayElementConfig 前景覆盖元素（树形）
// 子元素坐标相对父元素左上角；顶层元素坐标相对 Anchor 指定的画布角
type OverlayElementConfig struct {
	ID       string                 `yaml:"id"`
	Tag      string                 `yaml:"tag"`
	Class    []string               `yaml:"class"`
	Role     string                 `yaml:"role"`
	Label    string                 `yaml:"label"`
	Anchor   string                 `yaml:"anchor"`
	X        float64                `yaml:"x"`
	Y        float64                `yaml:"y"`
	Width    float64                `yaml:"width"`
	Height   float64                `yaml:"height"`
	Children []OverlayElementConfig `yaml:"children"`
}

// SceneConfig 场景完整配置
//
// 配置文件位置: data/scene.yaml（嵌入），可用 -config 指定磁盘文件覆盖
type SceneConfig struct {
	Colors     ColorConfig            `yaml:"colors"`
	Timing     TimingConfig           `yaml:"timing"`
	Wave       WaveConfig             `yaml:"wave"`
	Horizon    HorizonConfig          `yaml:"horizon"`
	Sun        SunConfig              `yaml:"sun"`
	Clouds     CloudConfig            `yaml:"clouds"`
	Grass      GrassConfig            `yaml:"grass"`
	Explosions ExplosionConfig        `yaml:"explosions"`
	Labels     LabelConfig            `yaml:"labels"`
	Overlay    []OverlayElementConfig `yaml:"overlay"`
}

// ParseSceneConfig 解析并校验 YAML 配置内容
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadSceneConfig 从磁盘加载场景配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *SceneConfig: 校验通过的配置
//   - error: 读取、解析或校验失败
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载场景配置: %s", path)
	return cfg, nil
}

// LoadEmbeddedSceneConfig 从嵌入资源加载默认场景配置
// 调用前必须先 embedded.Init()
func LoadEmbeddedSceneConfig() (*SceneConfig, error) {
	data, err := embedded.ReadFile(DefaultSceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config: %w", err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载嵌入场景配置: %s", DefaultSceneConfigPath)
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func checkRange(name string, r Range, allowZero bool) error {
	if r.Min > r.Max {
		return invalid("%s range invalid: min(%.3f) > max(%.3f)", name, r.Min, r.Max)
	}
	if r.Min < 0 || (!allowZero && r.Min == 0) {
		return invalid("%s range must be positive, got min %.3f", name, r.Min)
	}
	return nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 所有范围 Min <= Max，尺寸、寿命等必须为正
//   - 调色板与形状集合非空
//   - 时间参数为正
//   - 覆盖元素尺寸为正、锚点合法
func (c *SceneConfig) Validate() error {
	if c.Timing.ReferenceFrameMs <= 0 {
		return invalid("timing.referenceFrameMs must be > 0")
	}
	if c.Timing.MaxDeltaMs <= 0 {
		return invalid("timing.maxDeltaMs must be > 0")
	}
	if len(c.Colors.Primitives) == 0 {
		return invalid("colors.primitives must not be empty")
	}
	if c.Horizon.SampleStep <= 0 {
		return invalid("horizon.sampleStep must be > 0")
	}
	if c.Horizon.BaseFraction <= 0 || c.Horizon.BaseFraction >= 1 {
		return invalid("horizon.baseFraction must be in (0, 1), got %.3f", c.Horizon.BaseFraction)
	}
	if c.Sun.Radius <= 0 || c.Sun.GlowRadius < c.Sun.Radius {
		return invalid("sun radius must be > 0 and glowRadius >= radius")
	}

	cl := c.Clouds
	if cl.Count <= 0 || cl.NarrowCount <= 0 {
		return invalid("clouds.count and clouds.narrowCount must be > 0")
	}
	if len(cl.Shapes) == 0 {
		return invalid("clouds.shapes must not be empty")
	}
	for _, shape := range cl.Shapes {
		if !shape.Valid() {
			return invalid("clouds.shapes contains %s", shape)
		}
	}
	for name, r := range map[string]Range{
		"clouds.speed":      cl.Speed,
		"clouds.size":       cl.Size,
		"clouds.narrowSize": cl.NarrowSize,
		"clouds.opacity":    cl.Opacity,
	} {
		if err := checkRange(name, r, false); err != nil {
			return err
		}
	}
	if cl.Opacity.Max > 1 {
		return invalid("clouds.opacity max must be <= 1, got %.3f", cl.Opacity.Max)
	}

	g := c.Grass
	if g.Spacing <= 0 {
		return invalid("grass.spacing must be > 0")
	}
	for name, r := range map[string]Range{
		"grass.height":    g.Height,
		"grass.width":     g.Width,
		"grass.swaySpeed": g.SwaySpeed,
	} {
		if err := checkRange(name, r, false); err != nil {
			return err
		}
	}

	for name, b := range map[string]BurstConfig{
		"explosions.hit":  c.Explosions.Hit,
		"explosions.miss": c.Explosions.Miss,
	} {
		if b.Count.Min <= 0 || b.Count.Min > b.Count.Max {
			return invalid("%s.count range invalid: [%d, %d]", name, b.Count.Min, b.Count.Max)
		}
		if err := checkRange(name+".speed", b.Speed, true); err != nil {
			return err
		}
		if err := checkRange(name+".size", b.Size, false); err != nil {
			return err
		}
		if err := checkRange(name+".life", b.Life, false); err != nil {
			return err
		}
	}

	if c.Labels.ColorCycleMs <= 0 && len(c.Labels.Items) > 0 {
		return invalid("labels.colorCycleMs must be > 0")
	}
	for _, item := range c.Labels.Items {
		if item.Text == "" || item.FontSize <= 0 {
			return invalid("label %q needs text and a positive size", item.Text)
		}
	}

	return validateOverlay(c.Overlay, true)
}

func validateOverlay(elements []OverlayElementConfig, topLevel bool) error {
	for _, e := range elements {
		if e.Width <= 0 || e.Height <= 0 {
			return invalid("overlay element %q must have a positive size", e.ID)
		}
		if topLevel {
			switch e.Anchor {
			case "", "top-left", "top-right", "bottom-left", "bottom-right":
			default:
				return invalid("overlay element %q has unknown anchor %q", e.ID, e.Anchor)
			}
		}
		if err := validateOverlay(e.Children, false); err != nil {
			return err
		}
	}
	return nil
}

// CloudCountFor 返回指定画布宽度下的云朵数量
func (c *CloudConfig) CloudCountFor(narrow bool) int {
	if narrow {
		return c.NarrowCount
	}
	return c.Count
}

// SizeRangeFor 返回指定视口下的云朵尺寸范围
func (c *CloudConfig) SizeRangeFor(narrow bool) Range {
	if narrow {
		return c.NarrowSize
	}
	return c.Size
}

// PaletteRGBA 返回调色板的 color.RGBA 切片
func (c *ColorConfig) PaletteRGBA() []color.RGBA {
	out := make([]color.RGBA, len(c.Primitives))
	for i, p := range c.Primitives {
		out[i] = p.RGBA
	}
	return out
}
