//go:build mobile

package utils

// IsMobile 移动端编译时始终返回 true，场景固定使用窄屏参数
func IsMobile() bool {
	return true
}
