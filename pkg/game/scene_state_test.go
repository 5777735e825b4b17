package game

import (
	"path/filepath"
	"testing"

	"github.com/decker502/vibefield/pkg/components"
	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/utils"
)

func newTestSceneState(t *testing.T, width, height int) *SceneState {
	t.Helper()
	cfg, err := config.LoadSceneConfig(filepath.Join("..", "..", "data", "scene.yaml"))
	if err != nil {
		t.Fatalf("failed to load scene config: %v", err)
	}
	return NewSceneState(cfg, utils.NewRand(7), width, height)
}

func TestNewSceneState(t *testing.T) {
	s := newTestSceneState(t, 1024, 768)

	if s.Viewport.Width != 1024 || s.Viewport.Height != 768 || s.Viewport.Narrow {
		t.Errorf("unexpected viewport: %+v", s.Viewport)
	}
	if len(s.Clouds) != 10 {
		t.Errorf("expected 10 clouds, got %d", len(s.Clouds))
	}
	if s.Sun.X != 1024*0.85 || s.Sun.Y != 768*0.2 {
		t.Errorf("unexpected sun position: (%v, %v)", s.Sun.X, s.Sun.Y)
	}
	if len(s.Labels) != 4 {
		t.Errorf("expected 4 labels, got %d", len(s.Labels))
	}
	if len(s.Grass) != 0 || len(s.Explosions) != 0 {
		t.Error("grass and explosions should start empty")
	}
}

// TestSceneState_Resize 1024x768 -> 400x800
func TestSceneState_Resize(t *testing.T) {
	s := newTestSceneState(t, 1024, 768)
	s.Grass = append(s.Grass, components.GrassTuft{X: 1, Height: 5, Width: 2})

	if !s.Resize(400, 800) {
		t.Fatal("Resize should report a change")
	}

	if len(s.Grass) != 0 {
		t.Errorf("grass should be cleared immediately, got %d tufts", len(s.Grass))
	}
	if s.Sun.X != 340 || s.Sun.Y != 160 {
		t.Errorf("sun at (%v, %v), want (340, 160)", s.Sun.X, s.Sun.Y)
	}
	if !s.Viewport.Narrow {
		t.Error("400px wide viewport should be narrow")
	}
	if len(s.Clouds) != 4 {
		t.Errorf("expected 4 clouds on narrow viewport, got %d", len(s.Clouds))
	}
	for i, c := range s.Clouds {
		if c.Size < 20 || c.Size >= 40 {
			t.Errorf("cloud %d: narrow size %v not in [20, 40)", i, c.Size)
		}
	}

	// 相同尺寸再次调用不产生变化
	before := s.Clouds[0]
	if s.Resize(400, 800) {
		t.Error("Resize with the same size should be a no-op")
	}
	if s.Clouds[0] != before {
		t.Error("no-op resize should not reinitialize clouds")
	}
}

// TestSceneState_HorizonIdempotent 同一 x、同一相位两次调用结果一致
func TestSceneState_HorizonIdempotent(t *testing.T) {
	s := newTestSceneState(t, 1024, 768)
	s.Wave.Offset = 2.5

	for _, x := range []float64{0, 10, 333.3, 1024} {
		a := s.HorizonY(x)
		b := s.HorizonY(x)
		if a != b {
			t.Errorf("HorizonY(%v) not idempotent: %v != %v", x, a, b)
		}
		if a < 768*0.6-15 || a > 768*0.6+15 {
			t.Errorf("HorizonY(%v) = %v outside base ± amplitude", x, a)
		}
	}
}

func TestSceneState_AddExplosion(t *testing.T) {
	s := newTestSceneState(t, 1024, 768)

	s.AddExplosion(components.ExplosionComponent{})
	if len(s.Explosions) != 0 {
		t.Error("empty explosion should not be added")
	}

	s.AddExplosion(components.ExplosionComponent{Particles: make([]components.ParticleComponent, 3)})
	s.AddExplosion(components.ExplosionComponent{Particles: make([]components.ParticleComponent, 2)})
	if got := s.ParticleCount(); got != 5 {
		t.Errorf("ParticleCount = %d, want 5", got)
	}
}
