// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、打开存档、
// 装配管理器和场景上下文，并实现 ebiten.Game 接口驱动主循环。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/game"
	"github.com/gonewx/tolik/pkg/scenes"
)

// 存档的应用名，决定 gdata 的存储目录
const saveAppName = "tolik"

// Config 定义应用启动配置
type Config struct {
	// ConfigDir 配置文件目录（game.yaml / level.yaml / enemies.yaml）
	ConfigDir string
	// Mode 覆盖配置文件中的游戏模式（"rogue" 或 "arcade"），为空则不覆盖
	Mode string
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 依次加载配置、打开存档、合成音效、装配场景上下文，
// 最后切换到主菜单。存档打开失败时降级运行（不持久化）。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameCfg, err := config.LoadGameConfig(cfg.ConfigDir + "/game.yaml")
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	if cfg.Mode != "" {
		gameCfg.Mode = cfg.Mode
	}
	levelCfg, err := config.LoadLevelGenConfig(cfg.ConfigDir + "/level.yaml")
	if err != nil {
		return nil, fmt.Errorf("关卡生成配置加载失败: %w", err)
	}
	enemyCfg, err := config.LoadEnemyStatsConfig(cfg.ConfigDir + "/enemies.yaml")
	if err != nil {
		return nil, fmt.Errorf("敌人配置加载失败: %w", err)
	}

	// 存档打开失败不致命，各管理器在 nil gdata 下降级为内存模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: saveAppName})
	if err != nil {
		log.Printf("[App] Warning: 存档目录不可用: %v (本局进度不保存)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	highscoreManager, err := game.NewHighscoreManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("排行榜管理器初始化失败: %w", err)
	}
	achievementManager, err := game.NewAchievementManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("成就管理器初始化失败: %w", err)
	}
	progressManager, err := game.NewProgressManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("元进度管理器初始化失败: %w", err)
	}

	audioContext := audio.NewContext(44100)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	ctx := &scenes.Context{
		SceneManager: sceneManager,
		GameConfig:   gameCfg,
		LevelConfig:  levelCfg,
		EnemyStats:   enemyCfg,
		Audio:        audioManager,
		Settings:     settingsManager,
		Highscores:   highscoreManager,
		Achievements: achievementManager,
		Progress:     progressManager,
	}
	sceneManager.SwitchTo(scenes.NewMenuScene(ctx))

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] 初始化完成: 模式 %s", gameCfg.Mode)
	return &App{
		sceneManager: sceneManager,
		settings:     settingsManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏并记入设置
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] 保存设置失败: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
