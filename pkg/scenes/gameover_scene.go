package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/game"
)

// GameOverScene 结算界面
// 展示本局得分、统计和新解锁的成就，回车返回主菜单
type GameOverScene struct {
	ctx          *Context
	gameState    *game.GameState
	newUnlocks   []string
	newHighscore bool
}

// NewGameOverScene 创建结算场景
// 成绩持久化已在战斗场景结束时完成，这里只做展示
func NewGameOverScene(ctx *Context, gs *game.GameState) *GameOverScene {
	return &GameOverScene{
		ctx:          ctx,
		gameState:    gs,
		newUnlocks:   ctx.Achievements.DrainNewlyUnlocked(),
		newHighscore: gs.Score > 0 && gs.Score >= ctx.Highscores.Best(),
	}
}

// Update 等待返回主菜单
func (s *GameOverScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.SceneManager.SwitchTo(NewMenuScene(s.ctx))
	}
}

// Draw 渲染结算信息
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	cx := config.WindowWidth / 2
	gs := s.gameState

	ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-36, 120)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE  %d", gs.Score), cx-60, 160)
	if s.newHighscore {
		ebitenutil.DebugPrintAt(screen, "* NEW HIGHSCORE *", cx-64, 176)
	}

	lines := []string{
		fmt.Sprintf("floor/wave      %d / %d", gs.Level, gs.Wave),
		fmt.Sprintf("asteroids       %d", gs.Stats.AsteroidsDestroyed),
		fmt.Sprintf("enemies         %d", gs.Stats.EnemiesKilled),
		fmt.Sprintf("bosses          %d", gs.Stats.BossesKilled),
		fmt.Sprintf("rooms cleared   %d", gs.Stats.RoomsCleared),
		fmt.Sprintf("coins           %d", gs.Stats.CoinsCollected),
		fmt.Sprintf("shots fired     %d", gs.Stats.ShotsFired),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, cx-90, 210+i*16)
	}

	if len(s.newUnlocks) > 0 {
		ebitenutil.DebugPrintAt(screen, "ACHIEVEMENTS UNLOCKED:", cx-80, 340)
		for i, id := range s.newUnlocks {
			ebitenutil.DebugPrintAt(screen, "  "+id, cx-80, 356+i*16)
		}
	}

	ebitenutil.DebugPrintAt(screen, "ENTER back to menu", cx-64, config.WindowHeight-80)
}
