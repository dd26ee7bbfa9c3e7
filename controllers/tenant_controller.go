package controllers

import (
	"net/http"
	"strconv"

	"pms-http-service/internal/error/response"
	"pms-http-service/models"
	"pms-http-service/services"
	"pms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceTenantController 定义租户控制器接口
type InterfaceTenantController interface {
	GetTenants()
	CreateTenant()
}

// TenantController 处理租户相关的请求
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantController 创建一个新的租户控制器
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

// TenantRequest 表示创建租户请求
type TenantRequest struct {
	UnitID     uint   `json:"unit_id" binding:"required" example:"1"`
	Name       string `json:"name" binding:"required" example:"张三"`
	Phone      string `json:"phone" example:"13812345678"`
	Email      string `json:"email" binding:"omitempty,email" example:"zhangsan@tenant.com"`
	MoveInDate string `json:"move_in_date" binding:"omitempty,datetime=2006-01-02" example:"2025-03-01"`
}

// GetTenants 获取租户列表
// @Summary      获取租户列表
// @Description  获取租户列表，可按单元过滤，附带单元号和物业名称
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        unit_id query int false "单元ID"
// @Success      200  {array}   models.TenantDetail
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tenants [get]
func (c *TenantController) GetTenants() {
	var unitID uint
	if raw := c.Ctx.Query("unit_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ParamError(c.Ctx, "无效的单元ID")
			return
		}
		unitID = uint(id)
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenants, err := tenantService.GetAllTenants(unitID)
	if err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, tenants)
}

// CreateTenant 创建新租户
// @Summary      创建租户
// @Description  创建新租户并把对应单元置为occupied
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        tenant body TenantRequest true "租户信息"
// @Success      200  {object}  models.Tenant
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tenants [post]
func (c *TenantController) CreateTenant() {
	var req TenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	tenant := &models.Tenant{
		UnitID: req.UnitID,
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
	}
	// 未填写入住日期时落为null，而不是空字符串
	if req.MoveInDate != "" {
		tenant.MoveInDate = &req.MoveInDate
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.CreateTenant(tenant); err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, tenant)
}

// HandleTenantFunc 返回一个处理租户请求的Gin处理函数
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getTenants":
			controller.GetTenants()
		case "createTenant":
			controller.CreateTenant()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}
