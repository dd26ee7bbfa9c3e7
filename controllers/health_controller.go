package controllers

import (
	"net/http"

	"pms-http-service/services"
	"pms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Container *container.ServiceContainer
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{
		Container: container,
	}
}

// Ping 健康检查端点
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// Health 报告数据库和Redis的连接状态
func (h *HealthCheckController) Health(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "up"
	redisStatus := "disabled"

	sqlDB, err := h.Container.GetDB().DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	if redisService, ok := h.Container.GetService("redis").(*services.RedisService); ok && redisService != nil {
		if err := redisService.Ping(); err != nil {
			redisStatus = "down"
		} else {
			redisStatus = "up"
		}
	}

	c.JSON(status, gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(container)

		switch method {
		case "ping":
			controller.Ping(ctx)
		case "health":
			controller.Health(ctx)
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的方法"})
		}
	}
}
