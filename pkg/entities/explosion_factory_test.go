package entities

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/vibefield/pkg/components"
)

// TestNewExplosion_Scenario 在 (100,100) 生成 20 个红色粒子
func TestNewExplosion_Scenario(t *testing.T) {
	cfg := loadTestConfig(t)
	red := color.RGBA{R: 0xFF, A: 0xFF}

	explosion := NewExplosion(newTestRand(), 100, 100, red, 20, &cfg.Explosions.Hit)

	if len(explosion.Particles) != 20 {
		t.Fatalf("expected 20 particles, got %d", len(explosion.Particles))
	}
	if explosion.X != 100 || explosion.Y != 100 || explosion.Age != 0 {
		t.Errorf("unexpected explosion origin/age: (%v, %v) age=%d", explosion.X, explosion.Y, explosion.Age)
	}

	for i, p := range explosion.Particles {
		if p.X != 100 || p.Y != 100 {
			t.Errorf("particle %d: position (%v, %v), want (100, 100)", i, p.X, p.Y)
		}
		if p.Life < 30 || p.Life >= 50 {
			t.Errorf("particle %d: life %v not in [30, 50)", i, p.Life)
		}
		if p.MaxLife != p.Life {
			t.Errorf("particle %d: maxLife %v != life %v", i, p.MaxLife, p.Life)
		}
		if p.Size < 2 || p.Size >= 7 {
			t.Errorf("particle %d: size %v not in [2, 7)", i, p.Size)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < 1-1e-9 || speed >= 4+1e-9 {
			t.Errorf("particle %d: speed %v not in [1, 4)", i, speed)
		}
		if p.Color != red {
			t.Errorf("particle %d: color %v, want %v", i, p.Color, red)
		}
	}
}

func TestNewHitExplosion(t *testing.T) {
	cfg := loadTestConfig(t)
	rng := newTestRand()
	cloud := &components.CloudComponent{X: 320, Y: 80, Size: 40, Color: color.RGBA{R: 0x93, G: 0x70, B: 0xDB, A: 0xFF}, Active: true}

	for i := 0; i < 50; i++ {
		e := NewHitExplosion(rng, &cfg.Explosions, cloud)
		if n := len(e.Particles); n < 20 || n > 29 {
			t.Fatalf("hit particle count %d not in [20, 29]", n)
		}
		if e.X != cloud.X || e.Y != cloud.Y {
			t.Errorf("hit explosion origin (%v, %v), want cloud center", e.X, e.Y)
		}
		if e.Particles[0].Color != cloud.Color {
			t.Errorf("hit particle color %v, want cloud color %v", e.Particles[0].Color, cloud.Color)
		}
	}
}

func TestNewMissExplosion(t *testing.T) {
	cfg := loadTestConfig(t)
	e := NewMissExplosion(newTestRand(), &cfg.Explosions, 12, 34)

	if n := len(e.Particles); n < 10 || n >= 20 {
		t.Fatalf("miss particle count %d not in [10, 20)", n)
	}
	for i, p := range e.Particles {
		if p.Color.R != 0xFF || p.Color.G != 0xFF || p.Color.B != 0xFF || p.Color.A != 0xB3 {
			t.Errorf("particle %d: color %v, want translucent white", i, p.Color)
		}
		if p.Life < 15 || p.Life >= 25 {
			t.Errorf("particle %d: life %v not in [15, 25)", i, p.Life)
		}
		if p.X != 12 || p.Y != 34 {
			t.Errorf("particle %d: position (%v, %v), want (12, 34)", i, p.X, p.Y)
		}
	}
}
