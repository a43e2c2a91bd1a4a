package components

import (
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/utils"
)

// ProjectileComponent 弹体状态（玩家子弹和敌方弹体共用）
type ProjectileComponent struct {
	Damage   int            // 命中伤害
	MaxRange float64        // 最大射程（像素），0 表示不限
	Origin   utils.Vector2D // 发射点，用于射程判定

	// Piercing 为 true 时弹体命中后继续飞行，
	// 但通过 HitEntities 保证不会重复命中同一个实例
	Piercing    bool
	HitEntities map[ecs.EntityID]struct{}
}

// MarkHit 记录已命中的实体（穿透弹专用）
func (p *ProjectileComponent) MarkHit(id ecs.EntityID) {
	if p.HitEntities == nil {
		p.HitEntities = make(map[ecs.EntityID]struct{})
	}
	p.HitEntities[id] = struct{}{}
}

// HasHit 检查弹体是否已命中过该实体
func (p *ProjectileComponent) HasHit(id ecs.EntityID) bool {
	_, ok := p.HitEntities[id]
	return ok
}
