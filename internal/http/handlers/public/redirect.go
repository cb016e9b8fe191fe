package public

import (
	"errors"
	"net/http"

	"github.com/eneso-link/internal/http/response"
	"github.com/eneso-link/internal/service"

	"github.com/gin-gonic/gin"
)

// Redirect 短链跳转
// GET /l/:code
// 先解析目标并立即 302，点击记录按配置的策略处理，解析失败不记录点击。
func (h *Handler) Redirect(c *gin.Context) {
	code := c.Param("code")

	resolved, err := h.LinkService.ResolveRedirect(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			response.Error(c, http.StatusNotFound, "Link not found or inactive")
		case errors.Is(err, service.ErrNoRedirectURL):
			response.Error(c, http.StatusNotFound, "No redirect URL found for this link")
		default:
			response.InternalError(c, "Failed to process redirect", err)
		}
		return
	}

	h.ClickTracker.TrackLinkClick(service.LinkClickEvent{
		LinkID:    resolved.LinkID,
		IPAddress: clientIP(c),
		UserAgent: userAgent(c),
		Referrer:  referrer(c),
	})

	c.Redirect(http.StatusFound, resolved.TargetURL)
}
