package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/vibefield/pkg/components"
)

func newTestParticle(life float64) components.ParticleComponent {
	return components.ParticleComponent{
		X: 100, Y: 100,
		VX: 1, VY: -2,
		Size:    3,
		Life:    life,
		MaxLife: life,
		Color:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func TestExplosionSystem_Kinematics(t *testing.T) {
	state := newTestState(t, 1024, 768)
	state.AddExplosion(components.ExplosionComponent{
		X: 100, Y: 100,
		Particles: []components.ParticleComponent{newTestParticle(10)},
	})

	NewExplosionSystem(state).Update(16)

	p := state.Explosions[0].Particles[0]
	if p.X != 101 || p.Y != 98 {
		t.Errorf("position = (%v, %v), want (101, 98)", p.X, p.Y)
	}
	if math.Abs(p.VY-(-2+0.05)) > 1e-12 {
		t.Errorf("vy = %v, want -1.95", p.VY)
	}
	if p.Life != 9 || p.MaxLife != 10 {
		t.Errorf("life = %v/%v, want 9/10", p.Life, p.MaxLife)
	}
	if state.Explosions[0].Age != 1 {
		t.Errorf("age = %d, want 1", state.Explosions[0].Age)
	}
}

// TestExplosionSystem_LifeDecreases 寿命严格递减，透明度不增
func TestExplosionSystem_LifeDecreases(t *testing.T) {
	state := newTestState(t, 1024, 768)
	state.AddExplosion(components.ExplosionComponent{
		Particles: []components.ParticleComponent{newTestParticle(30)},
	})
	es := NewExplosionSystem(state)

	prevLife := 30.0
	prevAlpha := 1.0
	for i := 0; i < 20; i++ {
		es.Update(16)
		p := state.Explosions[0].Particles[0]
		if p.Life >= prevLife {
			t.Fatalf("step %d: life %v did not decrease from %v", i, p.Life, prevLife)
		}
		if a := p.Alpha(); a > prevAlpha {
			t.Fatalf("step %d: alpha %v increased from %v", i, a, prevAlpha)
		}
		prevLife, prevAlpha = p.Life, p.Alpha()
	}
}

// TestExplosionSystem_Prune 寿命为 1 的粒子一步后移除，空爆炸随之移除
func TestExplosionSystem_Prune(t *testing.T) {
	state := newTestState(t, 1024, 768)
	state.AddExplosion(components.ExplosionComponent{
		Particles: []components.ParticleComponent{newTestParticle(1)},
	})
	state.AddExplosion(components.ExplosionComponent{
		Particles: []components.ParticleComponent{newTestParticle(1), newTestParticle(3)},
	})

	NewExplosionSystem(state).Update(16)

	if len(state.Explosions) != 1 {
		t.Fatalf("expected 1 explosion left, got %d", len(state.Explosions))
	}
	if n := len(state.Explosions[0].Particles); n != 1 {
		t.Fatalf("expected 1 particle left, got %d", n)
	}
	if state.Explosions[0].Particles[0].Life != 2 {
		t.Errorf("remaining particle life = %v, want 2", state.Explosions[0].Particles[0].Life)
	}
}

// TestExplosionSystem_AllExpire 所有粒子都有限寿命，足够多步后全部清空
func TestExplosionSystem_AllExpire(t *testing.T) {
	state := newTestState(t, 1024, 768)

	for i := 0; i < 5; i++ {
		state.AddExplosion(components.ExplosionComponent{
			Particles: []components.ParticleComponent{newTestParticle(float64(10 + i*10))},
		})
	}
	es := NewExplosionSystem(state)

	for i := 0; i < 50; i++ {
		es.Update(16)
		for _, e := range state.Explosions {
			if len(e.Particles) == 0 {
				t.Fatal("empty explosion survived an update")
			}
			for _, p := range e.Particles {
				if p.Life <= 0 {
					t.Fatalf("particle with life %v survived an update", p.Life)
				}
			}
		}
	}

	if len(state.Explosions) != 0 || state.ParticleCount() != 0 {
		t.Errorf("expected all explosions gone, got %d (%d particles)", len(state.Explosions), state.ParticleCount())
	}
}
