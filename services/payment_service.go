package services

import (
	"pms-http-service/config"
	"pms-http-service/models"
	"pms-http-service/utils"

	"gorm.io/gorm"
)

// InterfacePaymentService 定义缴费服务接口
type InterfacePaymentService interface {
	GetAllPayments(tenantID uint) ([]models.PaymentDetail, error)
	CreatePayment(payment *models.Payment) error
}

// PaymentService 提供缴费相关的服务
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService 创建一个新的缴费服务
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllPayments 获取缴费记录列表，tenantID为0时返回全部
// 左连接账单、租户和单元，补充账单类型、租户姓名和单元号用于展示
func (s *PaymentService) GetAllPayments(tenantID uint) ([]models.PaymentDetail, error) {
	payments := make([]models.PaymentDetail, 0)

	query := s.DB.Table("payments").
		Select("payments.*, bills.type AS bill_type, tenants.name AS tenant_name, units.unit_number AS unit_number").
		Joins("LEFT JOIN bills ON payments.bill_id = bills.id").
		Joins("LEFT JOIN tenants ON payments.tenant_id = tenants.id").
		Joins("LEFT JOIN units ON tenants.unit_id = units.id").
		Order("payments.id")
	if tenantID > 0 {
		query = query.Where("payments.tenant_id = ?", tenantID)
	}
	if err := query.Scan(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

// 2. CreatePayment 创建缴费记录，并在同一事务中把对应账单置为paid
// 交易流水号始终由服务端重新生成；账单状态更新是无条件的：
// 不校验缴费金额是否覆盖账单金额，不支持部分缴费
func (s *PaymentService) CreatePayment(payment *models.Payment) error {
	payment.TransactionID = utils.NewTransactionID()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		return tx.Model(&models.Bill{}).
			Where("id = ?", payment.BillID).
			Update("status", models.BillStatusPaid).Error
	})
}
