package controllers

import (
	"net/http"

	"pms-http-service/internal/error/response"
	"pms-http-service/services"
	"pms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceDashboardController 定义仪表盘控制器接口
type InterfaceDashboardController interface {
	GetDashboardStats()
}

// DashboardController 处理仪表盘相关的请求
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController 创建一个新的仪表盘控制器
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetDashboardStats 获取仪表盘统计
// @Summary      获取仪表盘统计
// @Description  获取物业、单元、在租租户数量和本月收入、待缴金额的汇总
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Success      200  {object}  services.DashboardStats
// @Failure      500  {object}  map[string]string
// @Router       /dashboard [get]
func (c *DashboardController) GetDashboardStats() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	stats, err := dashboardService.GetDashboardStats()
	if err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, stats)
}

// HandleDashboardFunc 返回一个处理仪表盘请求的Gin处理函数
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getDashboardStats":
			controller.GetDashboardStats()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}
