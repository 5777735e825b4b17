package systems

import (
	"log"

	"github.com/decker502/vibefield/pkg/entities"
	"github.com/decker502/vibefield/pkg/game"
)

// GrassSystem 维护地平线上的草簇
//
// 草簇集合为空（启动或尺寸变化后）时按当前视口重新生成，
// 之后每帧把每簇的基线贴到当前地平线上。
type GrassSystem struct {
	state *game.SceneState
}

// NewGrassSystem 创建草簇系统
func NewGrassSystem(state *game.SceneState) *GrassSystem {
	return &GrassSystem{state: state}
}

// Update 惰性生成草簇并更新基线
func (s *GrassSystem) Update(deltaMs float64) {
	if len(s.state.Grass) == 0 && s.state.Viewport.Width > 0 {
		cfg := s.state.Config()
		s.state.Grass = entities.NewGrassTufts(
			s.state.Rand(),
			&cfg.Grass,
			s.state.Viewport,
			&s.state.Wave,
			s.state.HorizonBaseY(),
		)
		log.Printf("[GrassSystem] generated %d tufts for width %.0f", len(s.state.Grass), s.state.Viewport.Width)
	}

	for i := range s.state.Grass {
		t := &s.state.Grass[i]
		t.BaseY = s.state.HorizonY(t.X)
	}
}
