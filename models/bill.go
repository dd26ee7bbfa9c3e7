package models

import "github.com/shopspring/decimal"

// 账单状态
const (
	BillStatusPending = "pending" // 待支付
	BillStatusPaid    = "paid"    // 已支付
)

// 账单类型
const (
	BillTypeRent        = "rent"        // 租金
	BillTypeUtilities   = "utilities"   // 水电
	BillTypeMaintenance = "maintenance" // 维修
	BillTypeOther       = "other"       // 其他
)

// Bill 表示租户的应缴账单
type Bill struct {
	BaseModel
	TenantID    uint            `json:"tenant_id"`
	Type        string          `gorm:"type:varchar(20);not null" json:"type"`            // 类型：rent, utilities, maintenance, other
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`        // 账单金额
	DueDate     string          `gorm:"type:date;not null" json:"due_date"`               // 应缴日期，格式 YYYY-MM-DD
	Status      string          `gorm:"type:varchar(20);default:'pending'" json:"status"` // 状态：pending, paid，只能通过缴费变为paid
	Description string          `gorm:"type:text" json:"description"`

	// 关联关系
	Tenant   *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Payments []Payment `gorm:"foreignKey:BillID" json:"payments,omitempty"`
}

// BillDetail 账单列表行，通过左连接补充租户姓名和单元号
type BillDetail struct {
	Bill
	TenantName *string `json:"tenant_name"`
	UnitNumber *string `json:"unit_number"`
}
