package systems

import "github.com/decker502/vibefield/pkg/game"

// ExplosionSystem 粒子运动与爆炸生命周期
//
// 粒子按"帧"推进而不是按 Δt：每次调用位置与速度各更新一次，寿命减一。
// 寿命耗尽的粒子在本次调用内移除，粒子清空的爆炸随之移除，
// 因此渲染看到的每个粒子寿命都大于 0。
type ExplosionSystem struct {
	state *game.SceneState
}

// NewExplosionSystem 创建爆炸系统
func NewExplosionSystem(state *game.SceneState) *ExplosionSystem {
	return &ExplosionSystem{state: state}
}

// Update 推进一帧
func (s *ExplosionSystem) Update(deltaMs float64) {
	gravity := s.state.Config().Explosions.Gravity

	alive := s.state.Explosions[:0]
	for i := range s.state.Explosions {
		e := s.state.Explosions[i]

		particles := e.Particles[:0]
		for _, p := range e.Particles {
			p.X += p.VX
			p.Y += p.VY
			p.VY += gravity
			p.Life--
			if p.Life > 0 {
				particles = append(particles, p)
			}
		}
		e.Particles = particles

		if len(e.Particles) == 0 {
			continue
		}
		e.Age++
		alive = append(alive, e)
	}

	// 截断后的尾部不再引用旧粒子切片
	for i := len(alive); i < len(s.state.Explosions); i++ {
		s.state.Explosions[i].Particles = nil
	}
	s.state.Explosions = alive
}
