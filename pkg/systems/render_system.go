package systems

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/decker502/vibefield/pkg/game"
	"github.com/decker502/vibefield/pkg/utils"
)

const (
	// horizonCurveSteps 每段地平线二次曲线的细分数
	horizonCurveSteps = 4
	// particleSegments 粒子圆的分段数（粒子很小，不需要更多）
	particleSegments = 12
	// glowMidAlphaRatio 光晕中间色标的透明度相对内圈的比例（0.2 / 0.8）
	glowMidAlphaRatio = 0.25
)

// RenderSystem 按固定图层顺序绘制整个场景
//
// 图层顺序：天空 → 太阳 → 云朵 → 地平线 → 草 → 文字标签 → 粒子。
// 渲染系统只读取场景状态，不做任何修改。
type RenderSystem struct {
	state *game.SceneState
	clock game.Clock
	faces *utils.FontFaces

	batch      triangleBatch
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
	unitCircle []mgl64.Vec2
	unitSmall  []mgl64.Vec2

	warnedShapes map[components.ShapeKind]bool
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - state: 场景状态（只读）
//   - clock: 宿主时钟，草叶摆动和标签换色使用墙上时间
//
// 返回：
//   - error: 标签字体创建失败时返回
func NewRenderSystem(state *game.SceneState, clock game.Clock) (*RenderSystem, error) {
	faces, err := utils.NewBoldFontFaces()
	if err != nil {
		return nil, fmt.Errorf("failed to create render system: %w", err)
	}
	return &RenderSystem{
		state:        state,
		clock:        clock,
		faces:        faces,
		unitCircle:   utils.CircleOutline(1, utils.CircleSegments),
		unitSmall:    utils.CircleOutline(1, particleSegments),
		warnedShapes: make(map[components.ShapeKind]bool),
	}, nil
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	nowMs := game.WallClockMs(s.clock)

	screen.Clear()
	s.batch.begin(screen)

	s.drawSky()
	s.drawSun()
	s.drawClouds()
	s.drawHorizon()
	s.drawGrass(nowMs)
	s.batch.flush()

	s.drawLabels(screen, nowMs)

	s.batch.begin(screen)
	s.drawParticles()
	s.batch.flush()
}

func (s *RenderSystem) drawSky() {
	cfg := s.state.Config()
	w := s.state.Viewport.Width
	skyH := s.state.Viewport.Height * cfg.Horizon.SkyFraction
	top, bottom := cfg.Colors.SkyTop.RGBA, cfg.Colors.SkyBottom.RGBA

	s.batch.fillQuad(
		mgl64.Vec2{0, 0}, mgl64.Vec2{w, 0}, mgl64.Vec2{w, skyH}, mgl64.Vec2{0, skyH},
		top, top, bottom, bottom,
	)
}

// drawSun 径向光晕加实心圆
// 光晕从 0.5*radius 开始（内部保持内圈色），在中点降到 1/4，到 GlowRadius 完全透明
func (s *RenderSystem) drawSun() {
	cfg := s.state.Config()
	sun := &s.state.Sun
	glow := cfg.Colors.SunGlow.RGBA

	inner := sun.Radius * 0.5
	mid := inner + (sun.GlowRadius-inner)/2

	c0 := utils.WithAlpha(glow, sun.GlowOpacity)
	c1 := utils.WithAlpha(glow, sun.GlowOpacity*glowMidAlphaRatio)
	c2 := utils.WithAlpha(glow, 0)

	s.batch.fillDisc(sun.X, sun.Y, inner, s.unitCircle, c0, c0)
	s.batch.fillRing(sun.X, sun.Y, inner, mid, s.unitCircle, c0, c1)
	s.batch.fillRing(sun.X, sun.Y, mid, sun.GlowRadius, s.unitCircle, c1, c2)

	core := cfg.Colors.SunCore.RGBA
	s.batch.fillDisc(sun.X, sun.Y, sun.Radius, s.unitCircle, core, core)
}

func (s *RenderSystem) drawClouds() {
	for i := range s.state.Clouds {
		c := &s.state.Clouds[i]
		if !c.Active {
			continue
		}

		outline := utils.ShapeOutline(c.Shape, c.Size)
		if outline == nil {
			if !s.warnedShapes[c.Shape] {
				s.warnedShapes[c.Shape] = true
				log.Printf("[RenderSystem] unknown cloud shape %v, not drawn", c.Shape)
			}
			continue
		}

		utils.TransformOutline(outline, c.X, c.Y, c.Rotation)
		clr := utils.WithAlpha(c.Color, c.Opacity*float64(c.Color.A)/0xff)
		s.batch.fillConvex(outline, clr)
	}
}

// drawHorizon 用竖直条带填充平滑地平线以下的区域
func (s *RenderSystem) drawHorizon() {
	cfg := s.state.Config()
	w, h := s.state.Viewport.Width, s.state.Viewport.Height
	baseY := s.state.HorizonBaseY()
	step := cfg.Horizon.SampleStep

	samples := make([]mgl64.Vec2, 0, int(w/step)+2)
	for x := 0.0; x < w; x += step {
		samples = append(samples, mgl64.Vec2{x, s.state.HorizonY(x)})
	}
	samples = append(samples, mgl64.Vec2{w, s.state.HorizonY(w)})

	far, near := cfg.Colors.FieldFar.RGBA, cfg.Colors.FieldNear.RGBA
	colorAt := func(y float64) color.RGBA {
		if h <= baseY {
			return far
		}
		return utils.LerpColor(far, near, (y-baseY)/(h-baseY))
	}

	curve := utils.SmoothCurve(samples, horizonCurveSteps)
	bottomColor := colorAt(h)
	for i := 0; i < len(curve)-1; i++ {
		a, b := curve[i], curve[i+1]
		s.batch.fillQuad(
			a, b, mgl64.Vec2{b.X(), h}, mgl64.Vec2{a.X(), h},
			colorAt(a.Y()), colorAt(b.Y()), bottomColor, bottomColor,
		)
	}
}

// drawGrass 每簇草是一条二次曲线描边，顶端随时间左右摆动
func (s *RenderSystem) drawGrass(nowMs float64) {
	cfg := s.state.Config()
	near, tip := cfg.Colors.FieldNear.RGBA, cfg.Colors.GrassTip.RGBA

	for i := range s.state.Grass {
		t := &s.state.Grass[i]
		sway := math.Sin(nowMs*t.SwaySpeed+t.SwayOffset) * cfg.Grass.SwayAmplitude

		var path vector.Path
		path.MoveTo(float32(t.X), float32(t.BaseY))
		path.QuadTo(
			float32(t.X+sway), float32(t.BaseY-t.Height/2),
			float32(t.X+sway*1.5), float32(t.BaseY-t.Height),
		)

		s.strokeVs, s.strokeIs = path.AppendVerticesAndIndicesForStroke(s.strokeVs[:0], s.strokeIs[:0], &vector.StrokeOptions{
			Width: float32(t.Width),
		})

		baseY, height := t.BaseY, t.Height
		s.batch.appendTriangles(s.strokeVs, s.strokeIs, func(_, y float32) color.RGBA {
			return utils.LerpColor(near, tip, (baseY-float64(y))/height)
		})
	}
}

// drawLabels 文字标签：彩色外框 + 白色居中文字
func (s *RenderSystem) drawLabels(screen *ebiten.Image, nowMs float64) {
	cfg := s.state.Config()
	palette := cfg.Colors.PaletteRGBA()
	if len(palette) == 0 {
		return
	}
	fill := palette[labelColorIndex(nowMs, cfg.Labels.ColorCycleMs, len(palette))]
	w, h := s.state.Viewport.Width, s.state.Viewport.Height

	for i := range s.state.Labels {
		l := &s.state.Labels[i]
		x := l.FracX * w
		y := h*l.FracY + math.Sin(s.state.Wave.Offset*l.Speed)*cfg.Labels.BobAmplitude

		face := s.faces.Face(l.FontSize)
		tw, th := utils.MeasureText(l.Text, face)
		sw, sh := LabelShapeSize(l.Shape, tw, th, l.Padding)

		s.batch.begin(screen)
		switch l.Shape {
		case components.LabelCircle:
			s.batch.fillDisc(x, y, sw/2, s.unitCircle, fill, fill)
		case components.LabelRectangle:
			s.batch.fillConvex([]mgl64.Vec2{
				{x - sw/2, y - sh/2}, {x + sw/2, y - sh/2}, {x + sw/2, y + sh/2}, {x - sw/2, y + sh/2},
			}, fill)
		case components.LabelTriangle:
			s.batch.fillConvex([]mgl64.Vec2{
				{x, y - sh/2}, {x + sw/2, y + sh/2}, {x - sw/2, y + sh/2},
			}, fill)
		}
		s.batch.flush()

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(cfg.Colors.LabelText.RGBA)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, l.Text, face, op)
	}
}

func (s *RenderSystem) drawParticles() {
	for i := range s.state.Explosions {
		e := &s.state.Explosions[i]
		for j := range e.Particles {
			p := &e.Particles[j]
			clr := utils.WithAlpha(p.Color, p.Alpha()*float64(p.Color.A)/0xff)
			s.batch.fillDisc(p.X, p.Y, p.Size, s.unitSmall, clr, clr)
		}
	}
}

// LabelShapeSize 根据文字尺寸计算标签外框的宽高
//
//   - circle: 直径 = max(文字宽, 文字高) + 2*padding
//   - rectangle: 文字宽 + 2*padding, 文字高 + 2*padding
//   - triangle: 文字宽 + 2*padding, 2*文字高 + 2*padding
func LabelShapeSize(shape components.LabelShape, textW, textH, padding float64) (w, h float64) {
	switch shape {
	case components.LabelCircle:
		d := (math.Max(textW, textH)/2 + padding) * 2
		return d, d
	case components.LabelRectangle:
		return textW + padding*2, textH + padding*2
	case components.LabelTriangle:
		return textW + padding*2, textH*2 + padding*2
	}
	return 0, 0
}

// labelColorIndex 标签颜色每 cycleMs 毫秒在调色板中前进一格
func labelColorIndex(nowMs, cycleMs float64, n int) int {
	if n <= 0 {
		return 0
	}
	if cycleMs <= 0 {
		return 0
	}
	idx := int64(math.Floor(nowMs/cycleMs)) % int64(n)
	if idx < 0 {
		idx += int64(n)
	}
	return int(idx)
}
