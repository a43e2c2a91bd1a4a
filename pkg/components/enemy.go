package components

// EnemyBehavior 敌人行为模式
// 行为在生成时由敌人种类决定，运行期不再改变
type EnemyBehavior int

const (
	// EnemyFlyRandom 随机乱飞，周期性换方向
	EnemyFlyRandom EnemyBehavior = iota
	// EnemyChase 持续追踪玩家
	EnemyChase
	// EnemyWander 缓慢游荡
	EnemyWander
	// EnemyHop 周期性朝玩家跳跃
	EnemyHop
	// EnemyCharge 蓄力后朝玩家冲锋
	EnemyCharge
	// EnemyShoot 保持距离，按冷却向玩家射击
	EnemyShoot
)

// EnemyComponent 敌人状态
type EnemyComponent struct {
	Kind       string        // 敌人种类ID（配置表键）
	Behavior   EnemyBehavior // 行为模式
	Speed      float64       // 移动速度（像素/秒）
	Damage     int           // 接触伤害（半心）
	ScoreValue int           // 击杀得分

	BehaviorTimer float64 // 行为计时器（换向/跳跃/冲锋节奏）
	FlashTimer    float64 // 受击白闪剩余时间

	// 冲锋型状态
	Charging bool

	// 射手型状态
	ShootCooldown float64 // 距下次射击的剩余时间
	ShootDelay    float64 // 射击间隔
}
