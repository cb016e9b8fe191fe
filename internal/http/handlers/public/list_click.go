package public

import (
	"errors"
	"net/http"

	"github.com/eneso-link/internal/http/response"
	"github.com/eneso-link/internal/service"

	"github.com/gin-gonic/gin"
)

// listClickRequest 清单点击请求体，整体可选
type listClickRequest struct {
	ListURLID *string `json:"listUrlId"`
}

// TrackListClick 记录清单点击
// POST /api/lists/:slug/click
// slug 未命中时回退短链编码；请求体缺失或非法按空处理。
func (h *Handler) TrackListClick(c *gin.Context) {
	slug := c.Param("slug")

	var req listClickRequest
	// 前端可能不带请求体，解析失败不视为错误
	_ = c.ShouldBindJSON(&req)

	list, err := h.ListService.Resolve(slug)
	if err != nil {
		if errors.Is(err, service.ErrListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found", "slug": slug})
			return
		}
		response.InternalError(c, "Failed to track click", err)
		return
	}

	h.ClickTracker.TrackListClick(service.ListClickEvent{
		ListID:    list.ID,
		ListURLID: req.ListURLID,
		IPAddress: clientIP(c),
		UserAgent: userAgent(c),
		Referrer:  referrer(c),
	})

	response.OK(c, gin.H{"success": true, "listId": list.ID})
}
