package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 场景接口
// 菜单、战斗、结算界面都实现它，同一时刻只有一个场景活动
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为距上帧的秒数
	Update(deltaTime float64)
	// Draw 把场景渲染到目标图像
	Draw(screen *ebiten.Image)
}
