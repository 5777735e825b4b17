package systems

import (
	"image"
	"log"

	"github.com/decker502/vibefield/pkg/entities"
	"github.com/decker502/vibefield/pkg/game"
	"github.com/decker502/vibefield/pkg/utils"
)

// PointerEvent 一次指针按下（客户端坐标）
type PointerEvent struct {
	ClientX, ClientY float64
	Touch            bool
}

// PointerResult 一次指针事件的处理结果
type PointerResult struct {
	// Consumed 事件已被场景消费（宿主不应再做默认处理）
	Consumed bool
	// Blocked 落在前景交互元素上，场景未处理
	Blocked bool
	// Hits 被击中的云朵数量
	Hits int
	// Missed 未命中任何云朵，生成了未命中爆炸
	Missed bool
}

// InputSystem 点击/触摸射击云朵
//
// 一次按下命中的所有云朵都会爆炸，并在原地重生到右侧屏幕外；
// 没有命中时在按下位置生成一次未命中爆炸。
type InputSystem struct {
	state  *game.SceneState
	target game.InteractiveTarget

	// surface 画布在客户端坐标中的范围
	surface image.Rectangle

	presses []utils.PointerPress
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - state: 场景状态
//   - target: 前景交互元素判断，可以为 nil
func NewInputSystem(state *game.SceneState, target game.InteractiveTarget) *InputSystem {
	return &InputSystem{
		state:  state,
		target: target,
	}
}

// SetSurfaceBounds 设置画布在客户端坐标中的位置
//
// ebiten 报告的指针坐标已经是画布坐标，场景因此总是以零原点的画布矩形调用；
// 嵌入到带偏移的宿主时传入实际位置。
func (s *InputSystem) SetSurfaceBounds(r image.Rectangle) {
	s.surface = r
}

// SurfaceBounds 返回画布在客户端坐标中的范围
func (s *InputSystem) SurfaceBounds() image.Rectangle {
	return s.surface
}

// Update 轮询本帧的指针按下并逐个处理
func (s *InputSystem) Update() {
	s.presses = utils.AppendJustPressedPointers(s.presses[:0])
	for _, p := range s.presses {
		s.HandlePointer(PointerEvent{
			ClientX: float64(p.X),
			ClientY: float64(p.Y),
			Touch:   p.Touch,
		})
	}
}

// HandlePointer 处理一次指针按下
func (s *InputSystem) HandlePointer(ev PointerEvent) PointerResult {
	x := ev.ClientX - float64(s.surface.Min.X)
	y := ev.ClientY - float64(s.surface.Min.Y)

	// 覆盖层按画布坐标布局
	if s.target != nil && s.target.IsInteractiveTarget(x, y) {
		log.Printf("[InputSystem] pointer (%.0f, %.0f) on interactive element, skipped", x, y)
		return PointerResult{Consumed: true, Blocked: true}
	}

	cfg := s.state.Config()
	rng := s.state.Rand()
	factory := s.state.CloudFactory()

	result := PointerResult{Consumed: true}
	for i := range s.state.Clouds {
		c := &s.state.Clouds[i]
		if !utils.PointInShape(x, y, c) {
			continue
		}
		s.state.AddExplosion(entities.NewHitExplosion(rng, &cfg.Explosions, c))
		factory.Respawn(c, s.state.Viewport)
		result.Hits++
	}

	if result.Hits == 0 {
		s.state.AddExplosion(entities.NewMissExplosion(rng, &cfg.Explosions, x, y))
		result.Missed = true
	}

	log.Printf("[InputSystem] pointer (%.0f, %.0f) touch=%v hits=%d", x, y, ev.Touch, result.Hits)
	return result
}
