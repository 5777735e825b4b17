package components

import "image/color"

// ParticleComponent 爆炸中的单个粒子
//
// 粒子运动按帧推进（不按时间缩放）：
// 每帧位置加速度、竖直速度加重力、剩余寿命减 1。
type ParticleComponent struct {
	X, Y   float64 // 当前位置
	VX, VY float64 // 速度（像素/帧）

	Size float64 // 半径

	// Life 剩余寿命（帧），<= 0 时被移除
	Life float64
	// MaxLife 初始寿命，用于计算透明度 Life/MaxLife
	MaxLife float64

	Color color.RGBA
}

// Alpha 返回当前透明度（剩余寿命占比），范围 0.0 ~ 1.0
func (p *ParticleComponent) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// ExplosionComponent 一次爆炸：同一原点发射出的一组粒子
// 粒子全部过期后爆炸本身也会被移除
type ExplosionComponent struct {
	X, Y      float64
	Particles []ParticleComponent
	Age       int // 已经历的模拟帧数
}
