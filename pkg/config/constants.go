// Package config 提供游戏配置的加载和全局调优常量
package config

// 窗口与场地
const (
	WindowWidth  = 1280
	WindowHeight = 720

	// 地牢模式下房间可活动区域（为 HUD 留出边框）
	RoomOffsetX = 120
	RoomOffsetY = 80
	RoomWidth   = 1040
	RoomHeight  = 560

	// 门的触发区：飞船进入离场地边缘该距离内视为触碰门
	DoorThreshold = 50
	// 换房后飞船落点离入口边缘的距离
	DoorEntryOffset = 100
)

// 帧循环
const (
	// MaxDeltaTime 单帧时间上限（秒），防止卡顿导致物理爆炸
	MaxDeltaTime = 1.0 / 20.0
)

// 玩家飞船
const (
	ShipThrustPower         = 300.0 // 推进加速度（像素/秒²）
	ShipMaxSpeed            = 400.0 // 速度上限（像素/秒）
	ShipRotationSpeed       = 4.0   // 旋转速度（弧度/秒）
	ShipFriction            = 0.99  // 每标准帧速度保留系数
	ShipMaxHealth           = 6     // 初始生命上限（半心，6 = 三颗心）
	ShipInvulnerabilityTime = 2.0   // 受击后无敌时间（秒）
	ShipBlinkInterval       = 0.1   // 无敌闪烁间隔（秒）
)

// 弹体
const (
	BulletSpeed       = 500.0
	BulletLifetime    = 1.2  // 秒
	ShotCooldown      = 0.25 // 普通射击间隔（秒）
	RapidFireCooldown = 0.08 // 快速射击增益下的间隔（秒）
	TripleShotSpread  = 0.2  // 三向射击的偏转角（弧度）
)

// 小行星
const (
	AsteroidBaseSize         = 12.0 // 尺寸等级1的基准半径，半径 = 基准 × 等级
	AsteroidMinVertices      = 8
	AsteroidMaxVertices      = 12
	AsteroidShapeJitter      = 0.33 // 顶点半径扰动比例
	AsteroidMinRotationSpeed = -2.0 // 弧度/秒
	AsteroidMaxRotationSpeed = 2.0
	AsteroidSplitMin         = 2 // 分裂出的子行星数量范围
	AsteroidSplitMax         = 3
)

// 增益道具与金币
const (
	PowerUpLifetime    = 10.0 // 道具存在时间（秒）
	PowerUpDuration    = 8.0  // 增益持续时间（秒）
	PowerUpSize        = 12.0
	PowerUpSpawnChance = 0.12 // 击毁障碍物时掉落道具的概率

	CoinLifetime = 15.0
	CoinFriction = 0.95 // 金币散落后的减速系数
)

// Boss
const (
	BossHealthBase      = 50
	BossHealthPerLevel  = 25
	BossDamage          = 1 // 半心
	BossSpeed           = 80.0
	BossAttackCooldown  = 2.0
	BossProjectileCount = 8 // 径向弹幕一轮的弹体数
	BossProjectileSpeed = 220.0
	BossCoinDropMin     = 10
	BossCoinDropMax     = 20
	BossKillScore       = 1000
)

// 难度等级
const (
	DifficultyEasy = iota
	DifficultyNormal
	DifficultyHard
)

// DifficultySpeedMultiplier 各难度下障碍物速度倍率
var DifficultySpeedMultiplier = map[int]float64{
	DifficultyEasy:   0.8,
	DifficultyNormal: 1.0,
	DifficultyHard:   1.3,
}

// DifficultyAsteroidCount 各难度下普通房间的基准障碍数
var DifficultyAsteroidCount = map[int]int{
	DifficultyEasy:   3,
	DifficultyNormal: 5,
	DifficultyHard:   7,
}

// DifficultyScoreMultiplier 各难度下的得分倍率
var DifficultyScoreMultiplier = map[int]float64{
	DifficultyEasy:   0.5,
	DifficultyNormal: 1.0,
	DifficultyHard:   2.0,
}
