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

// InterfacePaymentController 定义缴费控制器接口
type InterfacePaymentController interface {
	GetPayments()
	CreatePayment()
}

// PaymentController 处理缴费相关的请求
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController 创建一个新的缴费控制器
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentRequest 表示创建缴费记录请求
// 交易流水号由服务端生成，请求中不可指定
type PaymentRequest struct {
	BillID        uint            `json:"bill_id" binding:"required" example:"1"`
	TenantID      uint            `json:"tenant_id" binding:"required" example:"1"`
	Amount        decimal.Decimal `json:"amount" binding:"required" example:"2500.00"`
	PaymentDate   string          `json:"payment_date" binding:"required,datetime=2006-01-02" example:"2025-03-28"`
	PaymentMethod string          `json:"payment_method" binding:"omitempty,oneof=cash bank wechat alipay" example:"wechat"`
}

// GetPayments 获取缴费记录列表
// @Summary      获取缴费记录列表
// @Description  获取缴费记录列表，可按租户过滤，附带账单类型、租户姓名和单元号
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        tenant_id query int false "租户ID"
// @Success      200  {array}   models.PaymentDetail
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /payments [get]
func (c *PaymentController) GetPayments() {
	var tenantID uint
	if raw := c.Ctx.Query("tenant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ParamError(c.Ctx, "无效的租户ID")
			return
		}
		tenantID = uint(id)
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, err := paymentService.GetAllPayments(tenantID)
	if err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, payments)
}

// CreatePayment 创建缴费记录
// @Summary      创建缴费记录
// @Description  记录一笔缴费并把对应账单置为paid，返回服务端生成的交易流水号
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        payment body PaymentRequest true "缴费信息"
// @Success      200  {object}  models.Payment
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /payments [post]
func (c *PaymentController) CreatePayment() {
	var req PaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	payment := &models.Payment{
		BillID:        req.BillID,
		TenantID:      req.TenantID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	if err := paymentService.CreatePayment(payment); err != nil {
		response.ServerError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, payment)
}

// HandlePaymentFunc 返回一个处理缴费请求的Gin处理函数
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "createPayment":
			controller.CreatePayment()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}
