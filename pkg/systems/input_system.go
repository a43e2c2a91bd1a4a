// Package systems 实现游戏的各个逻辑系统
// 每个系统在固定顺序中每帧执行一次 Update
package systems

import (
	"math"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/game"
	"github.com/gonewx/tolik/pkg/utils"
)

// InputSystem 采集键盘输入并转换为玩家意图和射击动作
type InputSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audioManager  *game.AudioManager
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, am *game.AudioManager) *InputSystem {
	return &InputSystem{
		entityManager: em,
		gameState:     gs,
		audioManager:  am,
	}
}

// Update 读取本帧输入
// 把移动意图写入 PlayerComponent，由运动系统消费；
// 射击在这里直接生成弹体实体
func (s *InputSystem) Update(deltaTime float64) {
	input := utils.PollInput()

	if input.PauseJustPressed {
		s.gameState.Paused = !s.gameState.Paused
	}
	if s.gameState.Paused || s.gameState.GameOver {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](s.entityManager) {
		player := ecs.MustGetComponent[*components.PlayerComponent](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		player.Thrust = 0
		if input.Thrust {
			player.Thrust = 1
		}
		player.RotateDir = 0
		if input.RotateLeft {
			player.RotateDir -= 1
		}
		if input.RotateRight {
			player.RotateDir += 1
		}

		if angle, ok := shootAngle(input, transform.Angle); ok {
			s.tryShoot(player, transform, angle)
		}
	}
}

// shootAngle 决定本帧的射击方向
// 方向键射击（四向）优先于空格（沿船头方向）
func shootAngle(input utils.InputState, shipAngle float64) (float64, bool) {
	switch {
	case input.ShootLeft:
		return math.Pi, true
	case input.ShootRight:
		return 0, true
	case input.ShootUp:
		return -math.Pi / 2, true
	case input.ShootDown:
		return math.Pi / 2, true
	case input.Shoot:
		return shipAngle, true
	}
	return 0, false
}

// tryShoot 在冷却允许时发射弹体
func (s *InputSystem) tryShoot(player *components.PlayerComponent, transform *components.TransformComponent, angle float64) {
	if player.ShotCooldown > 0 {
		return
	}

	cooldown := config.ShotCooldown
	if player.HasPowerUp(components.PowerUpRapidFire) {
		cooldown = config.RapidFireCooldown
	}
	if player.FireRateBonus > 0 {
		cooldown /= player.FireRateBonus
	}
	player.ShotCooldown = cooldown

	// 从船头位置发射
	muzzle := transform.Position.Add(utils.VectorFromAngle(angle, 16))

	angles := []float64{angle}
	if player.HasPowerUp(components.PowerUpTripleShot) {
		angles = append(angles, angle-config.TripleShotSpread, angle+config.TripleShotSpread)
	}
	for _, a := range angles {
		if _, err := entities.NewPlayerShot(s.entityManager, muzzle, a, player.Damage, false); err != nil {
			return
		}
	}

	s.gameState.Stats.ShotsFired += len(angles)
	s.audioManager.PlaySound(game.SoundShoot)
}
