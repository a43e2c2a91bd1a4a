// Package scenes 实现菜单、战斗和结算场景
package scenes

import (
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/game"
)

// Context 场景共享的依赖集合
// 由 app 在启动时装配一次，所有场景从这里取管理器，
// 不使用全局单例
type Context struct {
	SceneManager *game.SceneManager
	GameConfig   *config.GameConfig
	LevelConfig  *config.LevelGenConfig
	EnemyStats   *config.EnemyStatsConfig

	Audio        *game.AudioManager
	Settings     *game.SettingsManager
	Highscores   *game.HighscoreManager
	Achievements *game.AchievementManager
	Progress     *game.ProgressManager
}
