package controllers

import (
	"net/http"

	"pms-http-service/internal/error/response"
	"pms-http-service/models"
	"pms-http-service/services"
	"pms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfacePropertyController 定义物业控制器接口
type InterfacePropertyController interface {
	GetProperties()
	CreateProperty()
}

// PropertyController 处理物业相关的请求
type PropertyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPropertyController 创建一个新的物业控制器
func NewPropertyController(ctx *gin.Context, container *container.ServiceContainer) *PropertyController {
	return &PropertyController{
		Ctx:       ctx,
		Container: container,
	}
}

// PropertyRequest 表示创建物业请求
type PropertyRequest struct {
	Name       string `json:"name" binding:"required" example:"阳光花园"`
	Address    string `json:"address" binding:"required" example:"建设路100号"`
	TotalUnits int    `json:"total_units" binding:"omitempty,min=0" example:"24"`
}

// GetProperties 获取所有物业
// @Summary      获取物业列表
// @Description  获取系统中所有物业的列表
// @Tags         Property
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.Property
// @Failure      500  {object}  map[string]string
// @Router       /properties [get]
func (c *PropertyController) GetProperties() {
	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	properties, err := propertyService.GetAllProperties()
	if err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, properties)
}

// CreateProperty 创建新物业
// @Summary      创建物业
// @Description  创建一个新物业，ID和创建时间由服务端分配
// @Tags         Property
// @Accept       json
// @Produce      json
// @Param        property body PropertyRequest true "物业信息"
// @Success      200  {object}  models.Property
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /properties [post]
func (c *PropertyController) CreateProperty() {
	var req PropertyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	property := &models.Property{
		Name:       req.Name,
		Address:    req.Address,
		TotalUnits: req.TotalUnits,
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	if err := propertyService.CreateProperty(property); err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, property)
}

// HandlePropertyFunc 返回一个处理物业请求的Gin处理函数
func HandlePropertyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPropertyController(ctx, container)

		switch method {
		case "getProperties":
			controller.GetProperties()
		case "createProperty":
			controller.CreateProperty()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}
