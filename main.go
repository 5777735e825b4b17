package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vibefield/pkg/app"
	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/embedded"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag     = flag.String("config", "", "Scene config file (default: embedded data/scene.yaml)")
	widthFlag      = flag.Int("width", config.DefaultWindowWidth, "Initial window width")
	heightFlag     = flag.Int("height", config.DefaultWindowHeight, "Initial window height")
	seedFlag       = flag.Uint64("seed", 0, "Random seed (0 = random)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Width:      *widthFlag,
		Height:     *heightFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 失去焦点时继续调用 Update，帧循环才能观察到隐藏并暂停
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetFullscreen(*fullscreenFlag)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
