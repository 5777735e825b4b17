package components

import "fmt"

// LabelShape 文字标签外框形状
type LabelShape int

const (
	LabelCircle LabelShape = iota
	LabelRectangle
	LabelTriangle
)

var labelShapeNames = map[LabelShape]string{
	LabelCircle:    "circle",
	LabelRectangle: "rectangle",
	LabelTriangle:  "triangle",
}

func (s LabelShape) String() string {
	if name, ok := labelShapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("LabelShape(%d)", int(s))
}

// UnmarshalText 支持 YAML 中的形状名称
func (s *LabelShape) UnmarshalText(text []byte) error {
	for shape, name := range labelShapeNames {
		if name == string(text) {
			*s = shape
			return nil
		}
	}
	return fmt.Errorf("unknown label shape %q", string(text))
}

// TextPrimitive 漂浮的文字标签（只读装饰）
type TextPrimitive struct {
	Text string `yaml:"text"`
	// FracX/FracY 相对画布尺寸的位置比例
	FracX float64 `yaml:"x"`
	FracY float64 `yaml:"y"`
	// Speed 上下浮动速度（乘以波浪相位）
	Speed    float64    `yaml:"speed"`
	FontSize float64    `yaml:"size"`
	Shape    LabelShape `yaml:"shape"`
	Padding  float64    `yaml:"padding"`
}
