package components

// PlayerComponent 玩家飞船状态
// 输入意图（Thrust/RotateDir）由输入系统每帧写入，运动系统消费
type PlayerComponent struct {
	// 本帧输入意图
	Thrust    float64 // 推进强度 0~1
	RotateDir float64 // 旋转方向 -1/0/+1

	// 战斗属性（受元进度升级影响）
	Damage        int     // 弹体伤害
	FireRateBonus float64 // 射速加成倍率（1.0 为基准）
	SpeedBonus    float64 // 推进加成倍率

	ShotCooldown float64 // 距下次可射击的剩余时间

	// 受击无敌（重生/受伤后的短暂保护）
	InvulnerableTimer float64 // 剩余无敌时间，>0 表示无敌
	BlinkTimer        float64 // 闪烁计时器
	Visible           bool    // 闪烁时的可见状态

	// 增益道具计时，键不存在表示未激活
	ActivePowerUps map[PowerUpType]float64
	HasShield      bool // 护盾增益激活中
}

// HasPowerUp 检查某个增益是否激活
func (p *PlayerComponent) HasPowerUp(kind PowerUpType) bool {
	_, ok := p.ActivePowerUps[kind]
	return ok
}

// ActivatePowerUp 激活一个限时增益
func (p *PlayerComponent) ActivatePowerUp(kind PowerUpType, duration float64) {
	if p.ActivePowerUps == nil {
		p.ActivePowerUps = make(map[PowerUpType]float64)
	}
	p.ActivePowerUps[kind] = duration
	if kind == PowerUpShield {
		p.HasShield = true
	}
}

// CanBeHit 玩家当前是否可被命中
func (p *PlayerComponent) CanBeHit() bool {
	return p.InvulnerableTimer <= 0 && !p.HasShield
}
