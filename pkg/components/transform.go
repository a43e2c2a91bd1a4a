package components

import "github.com/gonewx/tolik/pkg/utils"

// TransformComponent 存储实体的运动学状态
// 位置和速度为世界坐标，角度为弧度
type TransformComponent struct {
	Position        utils.Vector2D // 世界坐标位置
	Velocity        utils.Vector2D // 速度（像素/秒）
	Angle           float64        // 朝向角（弧度）
	AngularVelocity float64        // 角速度（弧度/秒）
}
