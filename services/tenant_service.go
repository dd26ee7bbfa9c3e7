package services

import (
	"pms-http-service/config"
	"pms-http-service/models"

	"gorm.io/gorm"
)

// InterfaceTenantService 定义租户服务接口
type InterfaceTenantService interface {
	GetAllTenants(unitID uint) ([]models.TenantDetail, error)
	CreateTenant(tenant *models.Tenant) error
}

// TenantService 提供租户相关的服务
type TenantService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTenantService 创建一个新的租户服务
func NewTenantService(db *gorm.DB, cfg *config.Config) InterfaceTenantService {
	return &TenantService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllTenants 获取租户列表，unitID为0时返回全部
// 左连接单元和物业，补充单元号和物业名称用于展示，关联不存在时字段为null
func (s *TenantService) GetAllTenants(unitID uint) ([]models.TenantDetail, error) {
	tenants := make([]models.TenantDetail, 0)

	query := s.DB.Table("tenants").
		Select("tenants.*, units.unit_number AS unit_number, properties.name AS property_name").
		Joins("LEFT JOIN units ON tenants.unit_id = units.id").
		Joins("LEFT JOIN properties ON units.property_id = properties.id").
		Order("tenants.id")
	if unitID > 0 {
		query = query.Where("tenants.unit_id = ?", unitID)
	}
	if err := query.Scan(&tenants).Error; err != nil {
		return nil, err
	}

	return tenants, nil
}

// 2. CreateTenant 创建新租户，并在同一事务中把对应单元置为occupied
// 状态更新是无条件的：不校验单元先前是否空置，后写覆盖先写
func (s *TenantService) CreateTenant(tenant *models.Tenant) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}

		return tx.Model(&models.Unit{}).
			Where("id = ?", tenant.UnitID).
			Update("status", models.UnitStatusOccupied).Error
	})
}
