package service

import (
	"strings"

	"github.com/eneso-link/internal/constants"
)

// 平板特征（android 需排除 mobile 标记后才算平板）
var tabletSignatures = []string{"tablet", "ipad", "playbook", "silk"}

// 手机特征
var mobileSignatures = []string{
	"mobile",
	"android",
	"iphone",
	"ipod",
	"iemobile",
	"blackberry",
	"kindle",
	"silk-accelerated",
	"webos",
	"hpwos",
	"opera mini",
	"opera mobi",
}

// 浏览器识别规则，顺序即优先级
var browserRules = []struct {
	name     string
	contains string
	excludes string
}{
	{name: constants.BrowserChrome, contains: "chrome", excludes: "edg"},
	{name: constants.BrowserFirefox, contains: "firefox"},
	{name: constants.BrowserSafari, contains: "safari", excludes: "chrome"},
	{name: constants.BrowserEdge, contains: "edg"},
	{name: constants.BrowserOpera, contains: "opera"},
	{name: constants.BrowserOpera, contains: "opr"},
}

// DetectDevice 根据 UA 判断设备类型。
// 无信号（空串或占位值）返回空串；判定顺序为平板、手机、桌面。
func DetectDevice(userAgent string) string {
	if userAgent == "" || userAgent == constants.MetadataUnknown {
		return ""
	}
	ua := strings.ToLower(userAgent)

	for _, signature := range tabletSignatures {
		if strings.Contains(ua, signature) {
			return constants.DeviceTablet
		}
	}
	// android 且不带 mobi 标记的是平板
	if strings.Contains(ua, "android") && !strings.Contains(ua, "mobi") {
		return constants.DeviceTablet
	}

	for _, signature := range mobileSignatures {
		if strings.Contains(ua, signature) {
			return constants.DeviceMobile
		}
	}
	return constants.DeviceDesktop
}

// DetectBrowser 根据 UA 判断浏览器。
// 无信号返回空串；未命中任何规则时返回调用方指定的兜底值
// （短链跳转用 Unknown，清单点击用 Other，两端文案保持历史行为）。
func DetectBrowser(userAgent string, fallback string) string {
	if userAgent == "" || userAgent == constants.MetadataUnknown {
		return ""
	}
	ua := strings.ToLower(userAgent)

	for _, rule := range browserRules {
		if !strings.Contains(ua, rule.contains) {
			continue
		}
		if rule.excludes != "" && strings.Contains(ua, rule.excludes) {
			continue
		}
		return rule.name
	}
	return fallback
}
