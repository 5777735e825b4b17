package entities

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/decker502/vibefield/pkg/config"
	"github.com/decker502/vibefield/pkg/utils"
)

// loadTestConfig 加载仓库中的默认场景配置
func loadTestConfig(t *testing.T) *config.SceneConfig {
	t.Helper()
	cfg, err := config.LoadSceneConfig(filepath.Join("..", "..", "data", "scene.yaml"))
	if err != nil {
		t.Fatalf("failed to load scene config: %v", err)
	}
	return cfg
}

// newTestRand 返回固定种子的随机源，保证测试可重复
func newTestRand() *rand.Rand {
	return utils.NewRand(42)
}
