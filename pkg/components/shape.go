package components

import "fmt"

// ShapeKind 云朵图元的形状类型
// 取值是封闭集合，未知值只会来自编程错误
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeTriangle
	ShapeRectangle
	ShapeDiamond
)

// AllShapeKinds 云朵可用的全部形状，工厂从中均匀抽取
var AllShapeKinds = []ShapeKind{ShapeCircle, ShapeTriangle, ShapeRectangle, ShapeDiamond}

var shapeNames = map[ShapeKind]string{
	ShapeCircle:    "circle",
	ShapeTriangle:  "triangle",
	ShapeRectangle: "rectangle",
	ShapeDiamond:   "diamond",
}

// String 返回形状名称（与配置文件中的写法一致）
func (k ShapeKind) String() string {
	if name, ok := shapeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Valid 判断形状是否属于已知集合
func (k ShapeKind) Valid() bool {
	_, ok := shapeNames[k]
	return ok
}

// ParseShapeKind 将配置中的形状名称转换为 ShapeKind
func ParseShapeKind(name string) (ShapeKind, error) {
	for kind, n := range shapeNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", name)
}

// UnmarshalText 支持 YAML/文本形式的形状名称
func (k *ShapeKind) UnmarshalText(text []byte) error {
	kind, err := ParseShapeKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MarshalText 输出形状名称
func (k ShapeKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", k)
	}
	return []byte(k.String()), nil
}
