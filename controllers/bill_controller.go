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

// InterfaceBillController 定义账单控制器接口
type InterfaceBillController interface {
	GetBills()
	CreateBill()
}

// BillController 处理账单相关的请求
type BillController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBillController 创建一个新的账单控制器
func NewBillController(ctx *gin.Context, container *container.ServiceContainer) *BillController {
	return &BillController{
		Ctx:       ctx,
		Container: container,
	}
}

// BillRequest 表示创建账单请求
type BillRequest struct {
	TenantID    uint            `json:"tenant_id" binding:"required" example:"1"`
	Type        string          `json:"type" binding:"required,oneof=rent utilities maintenance other" example:"rent"`
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"2500.00"`
	DueDate     string          `json:"due_date" binding:"required,datetime=2006-01-02" example:"2025-04-01"`
	Description string          `json:"description" example:"2025年3月租金"`
}

// GetBills 获取账单列表
// @Summary      获取账单列表
// @Description  获取账单列表，可按租户和状态过滤，附带租户姓名和单元号
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        tenant_id query int false "租户ID"
// @Param        status query string false "账单状态：pending, paid"
// @Success      200  {array}   models.BillDetail
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /bills [get]
func (c *BillController) GetBills() {
	var tenantID uint
	if raw := c.Ctx.Query("tenant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ParamError(c.Ctx, "无效的租户ID")
			return
		}
		tenantID = uint(id)
	}
	status := c.Ctx.Query("status")

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bills, err := billService.GetAllBills(tenantID, status)
	if err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, bills)
}

// CreateBill 创建新账单
// @Summary      创建账单
// @Description  为指定租户创建新账单，初始状态为pending
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        bill body BillRequest true "账单信息"
// @Success      200  {object}  models.Bill
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /bills [post]
func (c *BillController) CreateBill() {
	var req BillRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	bill := &models.Bill{
		TenantID:    req.TenantID,
		Type:        req.Type,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Description: req.Description,
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	if err := billService.CreateBill(bill); err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, bill)
}

// HandleBillFunc 返回一个处理账单请求的Gin处理函数
func HandleBillFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBillController(ctx, container)

		switch method {
		case "getBills":
			controller.GetBills()
		case "createBill":
			controller.CreateBill()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}
