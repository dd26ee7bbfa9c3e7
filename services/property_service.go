package services

import (
	"pms-http-service/config"
	"pms-http-service/models"

	"gorm.io/gorm"
)

// InterfacePropertyService 定义物业服务接口
type InterfacePropertyService interface {
	GetAllProperties() ([]models.Property, error)
	CreateProperty(property *models.Property) error
}

// PropertyService 提供物业相关的服务
type PropertyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPropertyService 创建一个新的物业服务
func NewPropertyService(db *gorm.DB, cfg *config.Config) InterfacePropertyService {
	return &PropertyService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllProperties 获取所有物业列表
func (s *PropertyService) GetAllProperties() ([]models.Property, error) {
	properties := make([]models.Property, 0)
	if err := s.DB.Order("id").Find(&properties).Error; err != nil {
		return nil, err
	}

	return properties, nil
}

// 2. CreateProperty 创建新物业，ID和创建时间由服务端分配
func (s *PropertyService) CreateProperty(property *models.Property) error {
	return s.DB.Create(property).Error
}
