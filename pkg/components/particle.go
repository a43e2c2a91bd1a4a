package components

// ParticleComponent 粒子特效状态
// 粒子只有视觉意义，不参与碰撞
type ParticleComponent struct {
	Size     float64 // 绘制尺寸（像素）
	Friction float64 // 每秒速度衰减系数
}
