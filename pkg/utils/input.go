package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的键盘输入状态
// 每帧轮询一次，模拟逻辑只消费该快照，不直接接触物理按键
type InputState struct {
	Thrust      bool // 推进（W / 上箭头）
	RotateLeft  bool // 左转（A / 左箭头）
	RotateRight bool // 右转（D / 右箭头）
	Shoot       bool // 射击（空格）

	// 射击方向键（J/L/I/K），用于独立于移动方向的射击
	ShootLeft  bool
	ShootRight bool
	ShootUp    bool
	ShootDown  bool

	PauseJustPressed   bool // 暂停键刚刚按下（Esc）
	ConfirmJustPressed bool // 确认键刚刚按下（Enter / 空格）
}

// PollInput 获取当前帧的输入状态快照
func PollInput() InputState {
	return InputState{
		Thrust:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Shoot:       ebiten.IsKeyPressed(ebiten.KeySpace),

		ShootLeft:  ebiten.IsKeyPressed(ebiten.KeyJ),
		ShootRight: ebiten.IsKeyPressed(ebiten.KeyL),
		ShootUp:    ebiten.IsKeyPressed(ebiten.KeyI),
		ShootDown:  ebiten.IsKeyPressed(ebiten.KeyK),

		PauseJustPressed: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ConfirmJustPressed: inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}
