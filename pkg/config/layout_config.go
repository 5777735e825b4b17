package config

// 窗口与布局常量

const (
	// DefaultWindowWidth 默认窗口宽度（桌面端）
	DefaultWindowWidth = 1024

	// DefaultWindowHeight 默认窗口高度（桌面端）
	DefaultWindowHeight = 768

	// WindowTitle 窗口标题
	WindowTitle = "Vibe Jam"
)
