package components

// BossKind Boss 种类
type BossKind int

const (
	// BossAsteroidKing 小行星之王：缓慢漂移，径向弹幕
	BossAsteroidKing BossKind = iota
	// BossVoidHunter 虚空猎手：追踪玩家，扇形散射
	BossVoidHunter
	// BossStarDestroyer 星辰毁灭者：定点游走，交替两种弹幕
	BossStarDestroyer
)

// BossComponent Boss 状态
// Boss 使用标量生命池（HealthComponent），不像小行星那样分裂
type BossComponent struct {
	Kind           BossKind
	Level          int     // Boss 等级（随层数提升生命与伤害）
	Damage         int     // 弹体/接触伤害（半心）
	AttackTimer    float64 // 距下次攻击的剩余时间
	AttackCooldown float64 // 攻击间隔
	MoveTimer      float64 // 移动换向计时器
}
