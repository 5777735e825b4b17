package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// FontFaces 按字号缓存的粗体字体
//
// 字体源只解析一次，不同字号的 GoTextFace 按需创建后复用。
type FontFaces struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewBoldFontFaces 使用内置 Go Bold 字体创建字体缓存
//
// 返回：
//   - *FontFaces: 字体缓存
//   - error: 字体数据无法解析时返回
func NewBoldFontFaces() (*FontFaces, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &FontFaces{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face 返回指定字号的字体
func (f *FontFaces) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// MeasureText 测量单行文本的宽度
// 高度按字号计算（与标签外框的排版一致）
func MeasureText(textStr string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return measureTextWidth(textStr, face), face.Size
}

// WrapText 将文本按指定宽度在空格处换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 单个单词超过最大宽度时独占一行，不在单词中间断开。
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && measureTextWidth(candidate, font) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
