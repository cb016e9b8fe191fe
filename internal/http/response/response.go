package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK 成功响应，直接输出数据本体
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应，消息文案即对外契约，不做二次包装
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ErrorWithDetails 错误响应并附带底层错误详情
func ErrorWithDetails(c *gin.Context, status int, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	c.JSON(status, gin.H{"error": message, "details": details})
}

// InternalError 服务端错误响应
func InternalError(c *gin.Context, message string, err error) {
	ErrorWithDetails(c, http.StatusInternalServerError, message, err)
}
