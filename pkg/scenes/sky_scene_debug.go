package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugCrossColor = color.RGBA{R: 255, G: 255, B: 0, A: 200}

// drawDebug 调试信息（F3 切换）：帧率、实体数量、云朵中心
func (s *SkyScene) drawDebug(screen *ebiten.Image) {
	for i := range s.state.Clouds {
		c := &s.state.Clouds[i]
		if !c.Active {
			continue
		}
		x, y := float32(c.X), float32(c.Y)
		vector.StrokeLine(screen, x-4, y, x+4, y, 1, debugCrossColor, false)
		vector.StrokeLine(screen, x, y-4, x, y+4, 1, debugCrossColor, false)
	}

	ebitenutil.DebugPrint(screen, s.debugText())
}

func (s *SkyScene) debugText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %.1f  FPS: %.1f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	fmt.Fprintf(&b, "viewport: %.0fx%.0f narrow=%v\n", s.state.Viewport.Width, s.state.Viewport.Height, s.state.Viewport.Narrow)
	fmt.Fprintf(&b, "clouds: %d  grass: %d\n", len(s.state.Clouds), len(s.state.Grass))
	fmt.Fprintf(&b, "explosions: %d  particles: %d\n", len(s.state.Explosions), s.state.ParticleCount())
	fmt.Fprintf(&b, "wave offset: %.3f", s.state.Wave.Offset)
	if s.DebugStatus != nil {
		b.WriteString("\n")
		b.WriteString(s.DebugStatus())
	}
	return b.String()
}
