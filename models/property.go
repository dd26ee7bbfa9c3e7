package models

// Property 表示物业楼盘信息
type Property struct {
	BaseModel
	Name       string `gorm:"type:varchar(100);not null" json:"name"`    // 物业名称，如"阳光花园"
	Address    string `gorm:"type:varchar(200);not null" json:"address"` // 物业地址
	TotalUnits int    `gorm:"default:0" json:"total_units"`              // 规划单元总数

	// 关联关系
	Units []Unit `gorm:"foreignKey:PropertyID" json:"units,omitempty"` // 物业下的单元（一对多）
}
