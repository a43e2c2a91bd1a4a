package components

// HealthComponent 存储实体的生命值信息
// 玩家生命以半心为单位（6 = 三颗整心），敌人和Boss直接用点数
type HealthComponent struct {
	Current int // 当前生命值
	Max     int // 最大生命值
}

// Damage 扣除生命值，返回扣除后是否死亡
// 生命值不会降到 0 以下
func (h *HealthComponent) Damage(amount int) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

// Heal 恢复生命值，不超过上限
func (h *HealthComponent) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
