//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 1 时在桌面端模拟移动端（窄屏参数）
const MobileEmulateEnv = "VIBEFIELD_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，可以通过环境变量强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
