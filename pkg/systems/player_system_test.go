package systems

import (
	"testing"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/utils"
)

func TestPowerUpExpires(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPlayerSystem(em)

	id, err := entities.NewPlayerShip(em, utils.NewVector2D(400, 300), components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	player := ecs.MustGetComponent[*components.PlayerComponent](em, id)
	player.ActivatePowerUp(components.PowerUpShield, 1.0)
	player.ActivatePowerUp(components.PowerUpRapidFire, 3.0)

	// 推进 2 秒：护盾过期，快速射击还在
	for i := 0; i < 120; i++ {
		ps.Update(1.0 / 60)
	}

	if player.HasPowerUp(components.PowerUpShield) || player.HasShield {
		t.Error("护盾应在 1 秒后过期")
	}
	if !player.HasPowerUp(components.PowerUpRapidFire) {
		t.Error("快速射击 3 秒时限不应提前过期")
	}
}

func TestInvulnerabilityBlinkAndRecover(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPlayerSystem(em)

	id, err := entities.NewPlayerShip(em, utils.NewVector2D(400, 300), components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	player := ecs.MustGetComponent[*components.PlayerComponent](em, id)
	player.InvulnerableTimer = 0.5
	player.Visible = false

	blinked := false
	for i := 0; i < 30; i++ {
		ps.Update(1.0 / 60)
		if player.Visible {
			blinked = true
		}
	}
	if !blinked {
		t.Error("无敌期间应闪烁出现可见帧")
	}

	// 无敌结束后恒定可见
	for i := 0; i < 10; i++ {
		ps.Update(1.0 / 60)
	}
	if player.InvulnerableTimer > 0 || !player.Visible {
		t.Error("无敌结束后应恢复常显")
	}
}

func TestShotCooldownTicksDown(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPlayerSystem(em)

	id, err := entities.NewPlayerShip(em, utils.NewVector2D(400, 300), components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	player := ecs.MustGetComponent[*components.PlayerComponent](em, id)
	player.ShotCooldown = 0.1

	for i := 0; i < 12; i++ {
		ps.Update(1.0 / 60)
	}
	if player.ShotCooldown > 0 {
		t.Errorf("冷却应归零, got %v", player.ShotCooldown)
	}
}
