//go:build !mobile

// Package mobile 是 vibefield 天空场景的 ebitenmobile 绑定入口。
//
// 普通桌面构建只编译本文件，提供空的 Dummy；
// 实际的移动端初始化（嵌入场景配置、mobile.SetGame）在 mobile.go 和 embed.go 中，
// 仅在使用 -tags mobile 时编译。
package mobile

// Dummy 让 cmd 之外的构建也能引用本包
func Dummy() {}
