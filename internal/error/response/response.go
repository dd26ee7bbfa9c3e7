package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error 返回统一格式的错误响应，响应体只包含一个error字段
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "资源不存在"
	}
	Error(c, http.StatusNotFound, message)
}

// ServerError 服务器错误响应，透传底层错误信息
func ServerError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err.Error())
}
