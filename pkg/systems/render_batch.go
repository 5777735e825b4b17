package systems

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// maxBatchVertices DrawTriangles 单次调用的顶点上限（uint16 索引）
const maxBatchVertices = 1<<16 - 1

// triangleBatch 逐顶点着色的三角形批次
//
// 所有填充形状都拆成互不重叠的三角形（扇形或四边形条带），
// 半透明颜色不会因为重叠而叠加两次。渐变通过顶点颜色插值实现。
type triangleBatch struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions
}

func (b *triangleBatch) begin(dst *ebiten.Image) {
	b.dst = dst
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.op.AntiAlias = true
}

// reserve 保证还能追加 n 个顶点，不够时先提交已有三角形
func (b *triangleBatch) reserve(n int) {
	if len(b.vertices)+n > maxBatchVertices {
		b.flush()
	}
}

func (b *triangleBatch) flush() {
	if b.dst == nil || len(b.indices) == 0 {
		b.vertices = b.vertices[:0]
		b.indices = b.indices[:0]
		return
	}
	b.dst.DrawTriangles(b.vertices, b.indices, whiteSubImage, &b.op)
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *triangleBatch) vertex(x, y float64, c color.RGBA) uint16 {
	b.vertices = append(b.vertices, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	})
	return uint16(len(b.vertices) - 1)
}

// fillConvex 以第一个顶点为扇心填充凸多边形
func (b *triangleBatch) fillConvex(pts []mgl64.Vec2, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	b.reserve(len(pts))
	first := uint16(len(b.vertices))
	for _, p := range pts {
		b.vertex(p.X(), p.Y(), c)
	}
	for i := 1; i < len(pts)-1; i++ {
		b.indices = append(b.indices, first, first+uint16(i), first+uint16(i+1))
	}
}

// fillDisc 填充圆盘，中心与边缘颜色可以不同
// unit 为单位圆轮廓
func (b *triangleBatch) fillDisc(cx, cy, r float64, unit []mgl64.Vec2, center, edge color.RGBA) {
	b.reserve(len(unit) + 1)
	c := b.vertex(cx, cy, center)
	first := uint16(len(b.vertices))
	for _, p := range unit {
		b.vertex(cx+p.X()*r, cy+p.Y()*r, edge)
	}
	n := uint16(len(unit))
	for i := uint16(0); i < n; i++ {
		b.indices = append(b.indices, c, first+i, first+(i+1)%n)
	}
}

// fillRing 填充圆环 [r0, r1]，颜色由内到外线性过渡
func (b *triangleBatch) fillRing(cx, cy, r0, r1 float64, unit []mgl64.Vec2, inner, outer color.RGBA) {
	b.reserve(len(unit) * 2)
	first := uint16(len(b.vertices))
	for _, p := range unit {
		b.vertex(cx+p.X()*r0, cy+p.Y()*r0, inner)
		b.vertex(cx+p.X()*r1, cy+p.Y()*r1, outer)
	}
	n := uint16(len(unit))
	for i := uint16(0); i < n; i++ {
		j := (i + 1) % n
		in0, out0 := first+2*i, first+2*i+1
		in1, out1 := first+2*j, first+2*j+1
		b.indices = append(b.indices, in0, out0, out1, in0, out1, in1)
	}
}

// fillQuad 填充四边形 a-b-c-d（按顺序），每个角单独着色
func (b *triangleBatch) fillQuad(pa, pb, pc, pd mgl64.Vec2, ca, cb, cc, cd color.RGBA) {
	b.reserve(4)
	i0 := b.vertex(pa.X(), pa.Y(), ca)
	i1 := b.vertex(pb.X(), pb.Y(), cb)
	i2 := b.vertex(pc.X(), pc.Y(), cc)
	i3 := b.vertex(pd.X(), pd.Y(), cd)
	b.indices = append(b.indices, i0, i1, i2, i0, i2, i3)
}

// appendTriangles 追加外部生成的三角形（例如 vector.Path 描边），
// 再按 colorAt 为新顶点着色
func (b *triangleBatch) appendTriangles(vs []ebiten.Vertex, is []uint16, colorAt func(x, y float32) color.RGBA) {
	b.reserve(len(vs))
	base := uint16(len(b.vertices))
	for _, v := range vs {
		b.vertex(float64(v.DstX), float64(v.DstY), colorAt(v.DstX, v.DstY))
	}
	for _, i := range is {
		b.indices = append(b.indices, base+i)
	}
}
