package public

import "github.com/eneso-link/internal/provider"

// Handler 公开接口处理器入口
// 说明：全部接口面向游客，无鉴权。
type Handler struct {
	*provider.Container
}

// New 创建公开处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
