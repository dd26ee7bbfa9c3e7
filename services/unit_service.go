package services

import (
	"errors"

	"pms-http-service/config"
	"pms-http-service/models"

	"gorm.io/gorm"
)

// InterfaceUnitService 定义单元服务接口
type InterfaceUnitService interface {
	GetAllUnits(propertyID uint) ([]models.Unit, error)
	GetUnitByID(id uint) (*models.Unit, error)
	CreateUnit(unit *models.Unit) error
}

// UnitService 提供单元相关的服务
type UnitService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUnitService 创建一个新的单元服务
func NewUnitService(db *gorm.DB, cfg *config.Config) InterfaceUnitService {
	return &UnitService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllUnits 获取单元列表，propertyID为0时返回全部
func (s *UnitService) GetAllUnits(propertyID uint) ([]models.Unit, error) {
	units := make([]models.Unit, 0)

	query := s.DB.Order("id")
	if propertyID > 0 {
		query = query.Where("property_id = ?", propertyID)
	}
	if err := query.Find(&units).Error; err != nil {
		return nil, err
	}

	return units, nil
}

// 2. GetUnitByID 根据ID获取单元
func (s *UnitService) GetUnitByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.DB.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("单元不存在")
		}
		return nil, err
	}
	return &unit, nil
}

// 3. CreateUnit 创建新单元
func (s *UnitService) CreateUnit(unit *models.Unit) error {
	// 未指定状态时默认空置
	if unit.Status == "" {
		unit.Status = models.UnitStatusVacant
	}

	return s.DB.Create(unit).Error
}
