package controllers

import (
	"net/http"
	"strconv"

	"pms-http-service/internal/error/response"
	"pms-http-service/models"
	"pms-http-service/services"
	"pms-http-service/services/container"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfaceUnitController 定义单元控制器接口
type InterfaceUnitController interface {
	GetUnits()
	CreateUnit()
}

// UnitController 处理单元相关的请求
type UnitController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUnitController 创建一个新的单元控制器
func NewUnitController(ctx *gin.Context, container *container.ServiceContainer) *UnitController {
	return &UnitController{
		Ctx:       ctx,
		Container: container,
	}
}

// UnitRequest 表示创建单元请求
type UnitRequest struct {
	PropertyID uint            `json:"property_id" binding:"required" example:"1"`
	UnitNumber string          `json:"unit_number" binding:"required" example:"3-201"`
	RentAmount decimal.Decimal `json:"rent_amount" binding:"required" example:"2500.00"`
	Status     string          `json:"status" binding:"omitempty,oneof=vacant occupied" example:"vacant"`
}

// GetUnits 获取单元列表
// @Summary      获取单元列表
// @Description  获取单元列表，可按物业过滤
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        property_id query int false "物业ID"
// @Success      200  {array}   models.Unit
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /units [get]
func (c *UnitController) GetUnits() {
	var propertyID uint
	if raw := c.Ctx.Query("property_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ParamError(c.Ctx, "无效的物业ID")
			return
		}
		propertyID = uint(id)
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	units, err := unitService.GetAllUnits(propertyID)
	if err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, units)
}

// CreateUnit 创建新单元
// @Summary      创建单元
// @Description  在指定物业下创建新单元，未指定状态时默认vacant
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        unit body UnitRequest true "单元信息"
// @Success      200  {object}  models.Unit
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /units [post]
func (c *UnitController) CreateUnit() {
	var req UnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	unit := &models.Unit{
		PropertyID: req.PropertyID,
		UnitNumber: req.UnitNumber,
		RentAmount: req.RentAmount,
		Status:     req.Status,
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	if err := unitService.CreateUnit(unit); err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, unit)
}

// HandleUnitFunc 返回一个处理单元请求的Gin处理函数
func HandleUnitFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUnitController(ctx, container)

		switch method {
		case "getUnits":
			controller.GetUnits()
		case "createUnit":
			controller.CreateUnit()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}
