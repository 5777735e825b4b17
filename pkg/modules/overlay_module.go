package modules

import (
	"fmt"
	"image/color"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/utils"
)

const (
	overlayFontSize   = 14.0
	overlayLineHeight = 16.0
	// hoverFadeFrames 悬停高亮从 0 到满的帧数
	hoverFadeFrames = 8.0
)

var (
	overlayFill       = color.RGBA{R: 0x10, G: 0x18, B: 0x30, A: 0x99}
	overlayFillHover  = color.RGBA{R: 0x3a, G: 0x4a, B: 0x80, A: 0xcc}
	overlayBorder     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66}
	overlayText       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	overlayTextPlain  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xdd}
	interactiveTags   = []string{"a", "button"}
	interactiveClass  = []string{"button", "person"}
	interactiveRoles  = []string{"button"}
)

// OverlayElement 前景覆盖层中的一个元素
type OverlayElement struct {
	ID    string
	Tag   string
	Class []string
	Role  string
	Label string

	// X, Y, Width, Height 布局后的画布坐标
	X, Y, Width, Height float64

	Parent   *OverlayElement
	Children []*OverlayElement

	cfg   *config.OverlayElementConfig
	hover float64 // 悬停高亮进度 0~1
}

// Contains 点是否落在元素矩形内
func (e *OverlayElement) Contains(x, y float64) bool {
	return x >= e.X && x < e.X+e.Width && y >= e.Y && y < e.Y+e.Height
}

// IsInteractive 元素自身是否可交互（链接、按钮或带交互类名/角色）
func (e *OverlayElement) IsInteractive() bool {
	if slices.Contains(interactiveTags, e.Tag) || slices.Contains(interactiveRoles, e.Role) {
		return true
	}
	for _, c := range e.Class {
		if slices.Contains(interactiveClass, c) {
			return true
		}
	}
	return false
}

// InteractiveAncestor 返回自身或最近的可交互祖先，没有则返回 nil
func (e *OverlayElement) InteractiveAncestor() *OverlayElement {
	for cur := e; cur != nil; cur = cur.Parent {
		if cur.IsInteractive() {
			return cur
		}
	}
	return nil
}

// OverlayModule 场景上方的前景覆盖层
//
// 职责：
//   - 按配置构建元素树，并根据锚点随画布尺寸重新布局
//   - 判断某个位置下是否存在交互元素（供场景点击处理使用）
//   - 悬停高亮、点击日志
//   - 绘制元素框和文字
//
// 覆盖层从不修改场景状态。
type OverlayModule struct {
	roots []*OverlayElement
	faces *utils.FontFaces

	width, height float64

	hovered *OverlayElement
	presses []utils.PointerPress

	// OnActivate 交互元素被点击时回调，可以为 nil
	OnActivate func(e *OverlayElement)
}

// NewOverlayModule 创建覆盖层
//
// 参数:
//   - elements: 覆盖层元素配置（已校验）
//   - width, height: 初始画布尺寸
//
// 返回：
//   - error: 字体创建失败时返回
func NewOverlayModule(elements []config.OverlayElementConfig, width, height int) (*OverlayModule, error) {
	faces, err := utils.NewBoldFontFaces()
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay module: %w", err)
	}

	m := &OverlayModule{faces: faces}
	for i := range elements {
		m.roots = append(m.roots, buildElement(&elements[i], nil))
	}
	m.Resize(width, height)

	log.Printf("[Overlay] created with %d top-level elements", len(m.roots))
	return m, nil
}

func buildElement(cfg *config.OverlayElementConfig, parent *OverlayElement) *OverlayElement {
	e := &OverlayElement{
		ID:     cfg.ID,
		Tag:    cfg.Tag,
		Class:  cfg.Class,
		Role:   cfg.Role,
		Label:  cfg.Label,
		Width:  cfg.Width,
		Height: cfg.Height,
		Parent: parent,
		cfg:    cfg,
	}
	for i := range cfg.Children {
		e.Children = append(e.Children, buildElement(&cfg.Children[i], e))
	}
	return e
}

// Resize 按新的画布尺寸重新计算所有元素位置
func (m *OverlayModule) Resize(width, height int) {
	m.width, m.height = float64(width), float64(height)
	for _, root := range m.roots {
		x, y := anchorOrigin(root.cfg, m.width, m.height)
		layoutElement(root, x, y)
	}
}

// anchorOrigin 计算顶层元素左上角
func anchorOrigin(cfg *config.OverlayElementConfig, w, h float64) (float64, float64) {
	switch cfg.Anchor {
	case "top-right":
		return w - cfg.X - cfg.Width, cfg.Y
	case "bottom-left":
		return cfg.X, h - cfg.Y - cfg.Height
	case "bottom-right":
		return w - cfg.X - cfg.Width, h - cfg.Y - cfg.Height
	}
	return cfg.X, cfg.Y
}

func layoutElement(e *OverlayElement, x, y float64) {
	e.X, e.Y = x, y
	for _, c := range e.Children {
		layoutElement(c, x+c.cfg.X, y+c.cfg.Y)
	}
}

// Elements 返回顶层元素
func (m *OverlayModule) Elements() []*OverlayElement {
	return m.roots
}

// Find 按 ID 查找元素
func (m *OverlayModule) Find(id string) *OverlayElement {
	var found *OverlayElement
	m.walk(func(e *OverlayElement) bool {
		if e.ID == id {
			found = e
			return false
		}
		return true
	})
	return found
}

func (m *OverlayModule) walk(fn func(e *OverlayElement) bool) {
	var visit func(e *OverlayElement) bool
	visit = func(e *OverlayElement) bool {
		if !fn(e) {
			return false
		}
		for _, c := range e.Children {
			if !visit(c) {
				return false
			}
		}
		return true
	}
	for _, r := range m.roots {
		if !visit(r) {
			return
		}
	}
}

// ElementAt 返回位置下最深（最上层）的元素，没有则返回 nil
// 后声明的元素绘制在上面，因此逆序查找
func (m *OverlayModule) ElementAt(x, y float64) *OverlayElement {
	for i := len(m.roots) - 1; i >= 0; i-- {
		if e := elementAt(m.roots[i], x, y); e != nil {
			return e
		}
	}
	return nil
}

func elementAt(e *OverlayElement, x, y float64) *OverlayElement {
	if !e.Contains(x, y) {
		return nil
	}
	for i := len(e.Children) - 1; i >= 0; i-- {
		if hit := elementAt(e.Children[i], x, y); hit != nil {
			return hit
		}
	}
	return e
}

// IsInteractiveTarget 位置下的元素或其任一祖先可交互时返回 true
func (m *OverlayModule) IsInteractiveTarget(clientX, clientY float64) bool {
	e := m.ElementAt(clientX, clientY)
	return e != nil && e.InteractiveAncestor() != nil
}

// Update 更新悬停状态并处理交互元素上的点击
func (m *OverlayModule) Update() {
	px, py := utils.GetPointerPosition()
	m.UpdatePointer(float64(px), float64(py))

	m.presses = utils.AppendJustPressedPointers(m.presses[:0])
	for _, p := range m.presses {
		m.Activate(float64(p.X), float64(p.Y))
	}
}

// UpdatePointer 根据指针位置推进悬停高亮
func (m *OverlayModule) UpdatePointer(x, y float64) {
	m.hovered = nil
	if e := m.ElementAt(x, y); e != nil {
		m.hovered = e.InteractiveAncestor()
	}

	m.walk(func(e *OverlayElement) bool {
		step := 1 / hoverFadeFrames
		if e == m.hovered {
			e.hover = min(1, e.hover+step)
		} else {
			e.hover = max(0, e.hover-step)
		}
		return true
	})
}

// Activate 处理一次按下；落在交互元素上时返回该元素
func (m *OverlayModule) Activate(x, y float64) *OverlayElement {
	e := m.ElementAt(x, y)
	if e == nil {
		return nil
	}
	target := e.InteractiveAncestor()
	if target == nil {
		return nil
	}
	log.Printf("[Overlay] activated %q (tag=%s)", target.ID, target.Tag)
	if m.OnActivate != nil {
		m.OnActivate(target)
	}
	return target
}

// Hovered 当前悬停的交互元素
func (m *OverlayModule) Hovered() *OverlayElement {
	return m.hovered
}

// Draw 绘制覆盖层
func (m *OverlayModule) Draw(screen *ebiten.Image) {
	for _, r := range m.roots {
		m.drawElement(screen, r)
	}
}

func (m *OverlayModule) drawElement(screen *ebiten.Image, e *OverlayElement) {
	interactive := e.IsInteractive()
	if interactive || len(e.Children) > 0 {
		fill := utils.LerpColor(overlayFill, overlayFillHover, utils.EaseOutCubic(e.hover))
		vector.DrawFilledRect(screen, float32(e.X), float32(e.Y), float32(e.Width), float32(e.Height), fill, true)
	}
	if interactive {
		vector.StrokeRect(screen, float32(e.X), float32(e.Y), float32(e.Width), float32(e.Height), 1, overlayBorder, true)
	}

	if e.Label != "" {
		clr := overlayTextPlain
		if e.InteractiveAncestor() != nil {
			clr = overlayText
		}
		m.drawLabel(screen, e, clr)
	}

	for _, c := range e.Children {
		m.drawElement(screen, c)
	}
}

func (m *OverlayModule) drawLabel(screen *ebiten.Image, e *OverlayElement, clr color.RGBA) {
	face := m.faces.Face(overlayFontSize)
	lines := utils.WrapText(e.Label, face, e.Width-8)

	top := e.Y + e.Height/2 - float64(len(lines)-1)*overlayLineHeight/2
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(e.X+e.Width/2, top+float64(i)*overlayLineHeight)
		op.ColorScale.ScaleWithColor(clr)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, line, face, op)
	}
}
