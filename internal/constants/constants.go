package constants

// 设备类型常量
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

// 浏览器名称常量
const (
	BrowserChrome  = "Chrome"
	BrowserFirefox = "Firefox"
	BrowserSafari  = "Safari"
	BrowserEdge    = "Edge"
	BrowserOpera   = "Opera"
	// BrowserUnknown 短链跳转路径的浏览器兜底值
	BrowserUnknown = "Unknown"
	// BrowserOther 清单点击路径的浏览器兜底值
	BrowserOther = "Other"
)

// MetadataUnknown 请求元数据缺失时的占位值（IP / UA）
const MetadataUnknown = "unknown"

// 队列名称常量
const (
	QueueDefault = "default"
	QueueClicks  = "clicks"
)

// 异步任务类型常量
const (
	TaskLinkClick = "click:link"
	TaskListClick = "click:list"
)
