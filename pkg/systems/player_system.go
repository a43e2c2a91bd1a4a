package systems

import (
	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
)

// PlayerSystem 维护玩家飞船的各类计时器
// 射击冷却、受击无敌闪烁、限时增益的过期都在这里推进
type PlayerSystem struct {
	entityManager *ecs.EntityManager
}

// NewPlayerSystem 创建玩家状态系统
func NewPlayerSystem(em *ecs.EntityManager) *PlayerSystem {
	return &PlayerSystem{entityManager: em}
}

// Update 推进玩家计时器
func (s *PlayerSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		player := ecs.MustGetComponent[*components.PlayerComponent](s.entityManager, id)

		if player.ShotCooldown > 0 {
			player.ShotCooldown -= deltaTime
		}

		s.updateInvulnerability(player, deltaTime)
		s.updatePowerUps(player, deltaTime)
	}
}

// updateInvulnerability 推进无敌时间和闪烁
// 无敌期间按固定间隔切换可见性，结束后恢复常显
func (s *PlayerSystem) updateInvulnerability(player *components.PlayerComponent, deltaTime float64) {
	if player.InvulnerableTimer <= 0 {
		player.Visible = true
		return
	}

	player.InvulnerableTimer -= deltaTime
	player.BlinkTimer += deltaTime
	if player.BlinkTimer >= config.ShipBlinkInterval {
		player.BlinkTimer = 0
		player.Visible = !player.Visible
	}
	if player.InvulnerableTimer <= 0 {
		player.Visible = true
	}
}

// updatePowerUps 递减限时增益，过期的移除
func (s *PlayerSystem) updatePowerUps(player *components.PlayerComponent, deltaTime float64) {
	for kind, remaining := range player.ActivePowerUps {
		remaining -= deltaTime
		if remaining <= 0 {
			delete(player.ActivePowerUps, kind)
			if kind == components.PowerUpShield {
				player.HasShield = false
			}
			continue
		}
		player.ActivePowerUps[kind] = remaining
	}
}
