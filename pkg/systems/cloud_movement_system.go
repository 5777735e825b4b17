package systems

import "github.com/decker502/vibefield/pkg/game"

// CloudMovementSystem 云朵向左漂移、自转，移出左边界后原地回收到右侧
type CloudMovementSystem struct {
	state *game.SceneState
}

// NewCloudMovementSystem 创建云朵移动系统
func NewCloudMovementSystem(state *game.SceneState) *CloudMovementSystem {
	return &CloudMovementSystem{state: state}
}

// Update 推进所有活跃云朵
func (s *CloudMovementSystem) Update(deltaMs float64) {
	scale := frameScale(s.state, deltaMs)
	factory := s.state.CloudFactory()

	for i := range s.state.Clouds {
		c := &s.state.Clouds[i]
		if !c.Active {
			continue
		}

		c.X -= c.Speed * scale
		c.Rotation += c.RotationSpeed * scale

		if factory.NeedsRecycle(c) {
			factory.Recycle(c, s.state.Viewport)
		}
	}
}
