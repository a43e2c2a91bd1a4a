package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/tolik/pkg/app"
	"github.com/gonewx/tolik/pkg/config"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	mode := flag.String("mode", "", "覆盖游戏模式: rogue 或 arcade")
	verbose := flag.Bool("verbose", false, "输出详细日志")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		ConfigDir: *configDir,
		Mode:      *mode,
		Verbose:   *verbose,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Tolik")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
