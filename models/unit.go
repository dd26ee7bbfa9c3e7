package models

import "github.com/shopspring/decimal"

// 单元状态
const (
	UnitStatusVacant   = "vacant"   // 空置
	UnitStatusOccupied = "occupied" // 已入住
)

// Unit 表示物业下的可出租单元
type Unit struct {
	BaseModel
	PropertyID uint            `json:"property_id"`
	UnitNumber string          `gorm:"type:varchar(20);not null" json:"unit_number"`     // 单元号，如"3-201"
	RentAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rent_amount"`   // 月租金
	Status     string          `gorm:"type:varchar(20);default:'vacant'" json:"status"` // 状态：vacant, occupied

	// 关联关系
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Tenants  []Tenant  `gorm:"foreignKey:UnitID" json:"tenants,omitempty"`
}
