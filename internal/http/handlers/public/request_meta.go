package public

import (
	"strings"

	"github.com/eneso-link/internal/constants"

	"github.com/gin-gonic/gin"
)

// clientIP 提取访问者 IP。
// 优先取 X-Forwarded-For 第一段（最初的客户端），
// 次选 X-Real-IP，都没有时用占位值。
func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.Split(forwarded, ",")[0]
		if trimmed := strings.TrimSpace(first); trimmed != "" {
			return trimmed
		}
	}
	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}
	return constants.MetadataUnknown
}

// userAgent 提取 UA，缺失时用占位值
func userAgent(c *gin.Context) string {
	if ua := c.GetHeader("User-Agent"); ua != "" {
		return ua
	}
	return constants.MetadataUnknown
}

// referrer 提取来源页，标准拼写 Referer 优先，兼容 Referrer，缺失为 nil
func referrer(c *gin.Context) *string {
	if ref := c.GetHeader("Referer"); ref != "" {
		return &ref
	}
	if ref := c.GetHeader("Referrer"); ref != "" {
		return &ref
	}
	return nil
}
