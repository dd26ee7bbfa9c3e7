package models

import "github.com/shopspring/decimal"

// 支付方式
const (
	PaymentMethodCash   = "cash"
	PaymentMethodBank   = "bank"
	PaymentMethodWechat = "wechat"
	PaymentMethodAlipay = "alipay"
)

// Payment 表示针对账单的缴费记录
type Payment struct {
	BaseModel
	BillID        uint            `json:"bill_id"`
	TenantID      uint            `json:"tenant_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate   string          `gorm:"type:date;not null" json:"payment_date"` // 缴费日期，格式 YYYY-MM-DD
	PaymentMethod string          `gorm:"type:varchar(20)" json:"payment_method"` // 方式：cash, bank, wechat, alipay
	TransactionID string          `gorm:"type:varchar(64);uniqueIndex" json:"transaction_id"` // 服务端生成的交易流水号，创建后不可变

	// 关联关系
	Bill   *Bill   `gorm:"foreignKey:BillID" json:"bill,omitempty"`
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// PaymentDetail 缴费列表行，通过左连接补充账单类型、租户姓名和单元号
type PaymentDetail struct {
	Payment
	BillType   *string `json:"bill_type"`
	TenantName *string `json:"tenant_name"`
	UnitNumber *string `json:"unit_number"`
}
