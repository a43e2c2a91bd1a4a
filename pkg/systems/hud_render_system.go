package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/dungeon"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/game"
)

// HUDRenderSystem 平视显示
// 左上画生命（半心制），右上画得分和金币，地牢模式右下画小地图
type HUDRenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	level         *dungeon.Level // 为 nil 时不画小地图
	showMinimap   bool
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(em *ecs.EntityManager, gs *game.GameState, level *dungeon.Level, showMinimap bool) *HUDRenderSystem {
	return &HUDRenderSystem{
		entityManager: em,
		gameState:     gs,
		level:         level,
		showMinimap:   showMinimap,
	}
}

// SetLevel 更新关联的地牢层（换层时调用）
func (s *HUDRenderSystem) SetLevel(level *dungeon.Level) {
	s.level = level
}

// Draw 渲染 HUD
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	s.drawHealth(screen)
	s.drawScore(screen)
	if s.level != nil && s.showMinimap {
		s.drawMinimap(screen)
	}
}

// drawHealth 半心制生命条
// 每颗心两格血：满心、半心、空心三种状态
func (s *HUDRenderSystem) drawHealth(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.HealthComponent](s.entityManager)
	if len(ids) == 0 {
		return
	}
	health := ecs.MustGetComponent[*components.HealthComponent](s.entityManager, ids[0])

	full := color.RGBA{R: 230, G: 60, B: 60, A: 255}
	empty := color.RGBA{R: 70, G: 70, B: 70, A: 255}

	hearts := (health.Max + 1) / 2
	for i := 0; i < hearts; i++ {
		x := float32(24 + i*28)
		y := float32(24)
		remaining := health.Current - i*2

		switch {
		case remaining >= 2:
			vector.DrawFilledCircle(screen, x, y, 9, full, true)
		case remaining == 1:
			vector.DrawFilledCircle(screen, x, y, 9, empty, true)
			vector.DrawFilledRect(screen, x-9, y-9, 9, 18, full, true)
		default:
			vector.StrokeCircle(screen, x, y, 9, 1.5, empty, true)
		}
	}
}

// drawScore 得分、金币和进度信息
func (s *HUDRenderSystem) drawScore(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", s.gameState.Score), config.WindowWidth-160, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("COINS %d", s.gameState.Coins), config.WindowWidth-160, 32)

	if s.level != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FLOOR %d", s.gameState.Level), config.WindowWidth-160, 48)
	} else {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("WAVE %d", s.gameState.Wave), config.WindowWidth-160, 48)
	}
}

// drawMinimap 右下角小地图
// 只显示已访问的房间和它们的邻居；当前房间高亮，
// Boss 房红色，商店蓝色，宝藏房金色
func (s *HUDRenderSystem) drawMinimap(screen *ebiten.Image) {
	const cell = 14.0
	const gap = 3.0

	minX, minY, maxX, maxY := s.level.GridBounds()
	cols := maxX - minX + 1
	rows := maxY - minY + 1

	originX := float32(config.WindowWidth) - 24 - float32(cols)*(cell+gap)
	originY := float32(config.WindowHeight) - 24 - float32(rows)*(cell+gap)

	for pos, room := range s.level.Rooms {
		if !s.minimapVisible(room) {
			continue
		}

		x := originX + float32(pos.X-minX)*(cell+gap)
		y := originY + float32(pos.Y-minY)*(cell+gap)

		clr := s.minimapColor(room)
		if room.Visited {
			vector.DrawFilledRect(screen, x, y, cell, cell, clr, true)
		} else {
			vector.StrokeRect(screen, x, y, cell, cell, 1, clr, true)
		}

		if room == s.level.Current {
			vector.StrokeRect(screen, x-2, y-2, cell+4, cell+4, 1.5, color.RGBA{R: 255, G: 255, B: 255, A: 255}, true)
		}
	}
}

// minimapVisible 房间在小地图上是否可见
// 已访问的房间和与之相邻的房间可见，未探索区域隐藏
func (s *HUDRenderSystem) minimapVisible(room *dungeon.Room) bool {
	if room.Visited {
		return true
	}
	for _, door := range room.Doors {
		if neighbor := s.level.RoomAt(door.Target); neighbor != nil && neighbor.Visited {
			return true
		}
	}
	return false
}

func (s *HUDRenderSystem) minimapColor(room *dungeon.Room) color.RGBA {
	switch room.Type {
	case dungeon.RoomBoss:
		return color.RGBA{R: 200, G: 60, B: 60, A: 255}
	case dungeon.RoomShop:
		return color.RGBA{R: 80, G: 140, B: 230, A: 255}
	case dungeon.RoomTreasure:
		return color.RGBA{R: 230, G: 190, B: 60, A: 255}
	default:
		if room.Cleared {
			return color.RGBA{R: 150, G: 150, B: 170, A: 255}
		}
		return color.RGBA{R: 100, G: 100, B: 120, A: 255}
	}
}
