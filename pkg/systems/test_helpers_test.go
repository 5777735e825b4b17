package systems

import (
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/game"
	"github.com/decker502/vibefield/pkg/utils"
)

// newTestState 使用仓库默认配置和固定种子创建场景状态
func newTestState(t *testing.T, width, height int) *game.SceneState {
	t.Helper()
	cfg, err := config.LoadSceneConfig(filepath.Join("..", "..", "data", "scene.yaml"))
	if err != nil {
		t.Fatalf("failed to load scene config: %v", err)
	}
	return game.NewSceneState(cfg, utils.NewRand(42), width, height)
}

// testCloud 构造一朵位置确定的云朵
func testCloud(x, y, size float64, shape components.ShapeKind) components.CloudComponent {
	return components.CloudComponent{
		X:       x,
		Y:       y,
		Speed:   0.5,
		Size:    size,
		Shape:   shape,
		Color:   color.RGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 0xFF},
		Opacity: 0.5,
		Active:  true,
	}
}

// fixedClock 固定时间的时钟
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeTarget 把指定矩形区域视为交互元素
type fakeTarget struct {
	minX, minY, maxX, maxY float64
	calls                  int
}

func (f *fakeTarget) IsInteractiveTarget(x, y float64) bool {
	f.calls++
	return x >= f.minX && x <= f.maxX && y >= f.minY && y <= f.maxY
}
