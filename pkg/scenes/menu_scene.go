package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/game"
)

// MenuScene 主菜单
// 选择难度、购买永久升级、查看排行榜，回车开局
type MenuScene struct {
	ctx        *Context
	difficulty int
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(ctx *Context) *MenuScene {
	return &MenuScene{
		ctx:        ctx,
		difficulty: ctx.GameConfig.Difficulty,
	}
}

// Update 处理菜单输入
func (s *MenuScene) Update(deltaTime float64) {
	// 左右切换难度
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && s.difficulty > config.DifficultyEasy {
		s.difficulty--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && s.difficulty < config.DifficultyHard {
		s.difficulty++
	}

	// 数字键购买升级
	upgradeKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}
	for i, key := range upgradeKeys {
		if i >= len(game.UpgradeDefs) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			def := game.UpgradeDefs[i]
			if err := s.ctx.Progress.PurchaseUpgrade(def.ID); err != nil {
				log.Printf("[Menu] 购买 %s 失败: %v", def.ID, err)
			} else {
				s.ctx.Audio.PlaySound(game.SoundCoin)
			}
		}
	}

	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := !s.ctx.Settings.GetSettings().SoundEnabled
		s.ctx.Settings.SetSoundEnabled(enabled)
		if err := s.ctx.Settings.Save(); err != nil {
			log.Printf("[Menu] 保存设置失败: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.ctx.Audio.PlaySound(game.SoundPowerUp)
		s.ctx.SceneManager.SwitchTo(NewBattleScene(s.ctx, s.difficulty))
	}
}

// Draw 渲染菜单
func (s *MenuScene) Draw(screen *ebiten.Image) {
	cx := config.WindowWidth / 2

	ebitenutil.DebugPrintAt(screen, "T O L I K", cx-40, 100)
	mode := "DUNGEON"
	if s.ctx.GameConfig.Mode == config.ModeArcade {
		mode = "ARCADE"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("MODE: %s", mode), cx-40, 130)

	names := []string{"EASY", "NORMAL", "HARD"}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("< DIFFICULTY: %s >", names[s.difficulty]), cx-70, 160)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("CREDITS: %d", s.ctx.Progress.Currency()), cx-40, 200)
	for i, def := range game.UpgradeDefs {
		level := s.ctx.Progress.UpgradeLevel(def.ID)
		line := fmt.Sprintf("[%d] %-16s Lv %d/%d", i+1, def.ID, level, def.MaxLevel)
		if cost, ok := s.ctx.Progress.UpgradeCost(def.ID); ok {
			line += fmt.Sprintf("  cost %d", cost)
		} else {
			line += "  MAX"
		}
		ebitenutil.DebugPrintAt(screen, line, cx-150, 224+i*16)
	}

	ebitenutil.DebugPrintAt(screen, "HIGHSCORES", cx-40, 360)
	for i, e := range s.ctx.Highscores.Entries() {
		line := fmt.Sprintf("%2d. %8d  wave %-3d  %s", i+1, e.Score, e.Wave, e.Date)
		ebitenutil.DebugPrintAt(screen, line, cx-130, 380+i*16)
	}

	ebitenutil.DebugPrintAt(screen, "ENTER start   ARROWS difficulty   1-6 buy upgrade   M sound", cx-210, config.WindowHeight-60)
}
