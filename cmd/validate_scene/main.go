// validate_scene 校验场景配置文件
//
// 用法:
//
//	go run ./cmd/validate_scene [-config data/scene.yaml]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/decker502/vibefield/pkg/config"
)

var configFlag = flag.String("config", config.DefaultSceneConfigPath, "Scene config file to validate")

func main() {
	flag.Parse()

	if err := run(*configFlag, os.Stdout); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

// run 加载并校验配置，把摘要写到 out
func run(path string, out io.Writer) error {
	cfg, err := config.LoadSceneConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ YAML 格式正确: %s\n", path)
	fmt.Fprintf(out, "✅ 云朵: %d（窄屏 %d），形状 %v\n", cfg.Clouds.Count, cfg.Clouds.NarrowCount, cfg.Clouds.Shapes)
	fmt.Fprintf(out, "✅ 调色板: %d 种颜色\n", len(cfg.Colors.Primitives))
	fmt.Fprintf(out, "✅ 文字标签: %d 个\n", len(cfg.Labels.Items))
	fmt.Fprintf(out, "✅ 覆盖层元素: %d 个（顶层 %d）\n", countOverlay(cfg.Overlay), len(cfg.Overlay))
	return nil
}

func countOverlay(elements []config.OverlayElementConfig) int {
	n := 0
	for _, e := range elements {
		n += 1 + countOverlay(e.Children)
	}
	return n
}
