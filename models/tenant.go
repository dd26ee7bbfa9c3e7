package models

// Tenant 表示租户信息
type Tenant struct {
	BaseModel
	UnitID      uint    `json:"unit_id"`
	Name        string  `gorm:"type:varchar(50);not null" json:"name"`
	Phone       string  `gorm:"type:varchar(20)" json:"phone"`
	Email       string  `gorm:"type:varchar(100)" json:"email"`
	MoveInDate  *string `gorm:"type:date" json:"move_in_date"`  // 入住日期，格式 YYYY-MM-DD
	MoveOutDate *string `gorm:"type:date" json:"move_out_date"` // 退租日期，为空表示在租

	// 关联关系
	Unit  *Unit  `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Bills []Bill `gorm:"foreignKey:TenantID" json:"bills,omitempty"`
}

// TenantDetail 租户列表行，通过左连接补充单元号和物业名称
// 关联目标不存在时对应字段为 null
type TenantDetail struct {
	Tenant
	UnitNumber   *string `json:"unit_number"`
	PropertyName *string `json:"property_name"`
}
