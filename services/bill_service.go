package services

import (
	"errors"

	"pms-http-service/config"
	"pms-http-service/models"

	"gorm.io/gorm"
)

// InterfaceBillService 定义账单服务接口
type InterfaceBillService interface {
	GetAllBills(tenantID uint, status string) ([]models.BillDetail, error)
	GetBillByID(id uint) (*models.Bill, error)
	CreateBill(bill *models.Bill) error
}

// BillService 提供账单相关的服务
type BillService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBillService 创建一个新的账单服务
func NewBillService(db *gorm.DB, cfg *config.Config) InterfaceBillService {
	return &BillService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllBills 获取账单列表，可按租户和状态过滤
// 左连接租户和单元，补充租户姓名和单元号用于展示
func (s *BillService) GetAllBills(tenantID uint, status string) ([]models.BillDetail, error) {
	bills := make([]models.BillDetail, 0)

	query := s.DB.Table("bills").
		Select("bills.*, tenants.name AS tenant_name, units.unit_number AS unit_number").
		Joins("LEFT JOIN tenants ON bills.tenant_id = tenants.id").
		Joins("LEFT JOIN units ON tenants.unit_id = units.id").
		Order("bills.id")
	if tenantID > 0 {
		query = query.Where("bills.tenant_id = ?", tenantID)
	}
	if status != "" {
		query = query.Where("bills.status = ?", status)
	}
	if err := query.Scan(&bills).Error; err != nil {
		return nil, err
	}

	return bills, nil
}

// 2. GetBillByID 根据ID获取账单
func (s *BillService) GetBillByID(id uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("账单不存在")
		}
		return nil, err
	}
	return &bill, nil
}

// 3. CreateBill 创建新账单
func (s *BillService) CreateBill(bill *models.Bill) error {
	// 新账单默认待支付
	if bill.Status == "" {
		bill.Status = models.BillStatusPending
	}

	return s.DB.Create(bill).Error
}
