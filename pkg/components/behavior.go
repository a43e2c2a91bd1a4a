package components

// BehaviorType 实体行为类型
// 封闭的类型标签集合，碰撞和更新系统据此分发逻辑
type BehaviorType int

const (
	// BehaviorPlayer 玩家飞船
	BehaviorPlayer BehaviorType = iota
	// BehaviorAsteroid 小行星障碍物
	BehaviorAsteroid
	// BehaviorEnemy 普通敌人
	BehaviorEnemy
	// BehaviorBoss 房间Boss
	BehaviorBoss
	// BehaviorPlayerShot 玩家弹体
	BehaviorPlayerShot
	// BehaviorEnemyShot 敌方弹体（含Boss弹体）
	BehaviorEnemyShot
	// BehaviorPowerUp 增益道具
	BehaviorPowerUp
	// BehaviorCoin 金币
	BehaviorCoin
	// BehaviorParticle 粒子特效
	BehaviorParticle
)

// BehaviorComponent 标识实体的行为类型
type BehaviorComponent struct {
	Type BehaviorType
}
