package services

import (
	"testing"

	"pms-http-service/config"
	"pms-http-service/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 创建一个内存数据库并迁移全部模型
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.Property{},
		&models.Unit{},
		&models.Tenant{},
		&models.Bill{},
		&models.Payment{},
	)
	assert.NoError(t, err)

	return db
}

func testConfig() *config.Config {
	return &config.Config{DashboardCacheTTL: 30}
}

// seedProperty 插入一个物业并返回
func seedProperty(t *testing.T, db *gorm.DB, name string) *models.Property {
	property := &models.Property{Name: name, Address: "建设路100号", TotalUnits: 10}
	assert.NoError(t, db.Create(property).Error)
	return property
}

// seedUnit 在指定物业下插入一个单元并返回
func seedUnit(t *testing.T, db *gorm.DB, propertyID uint, unitNumber string) *models.Unit {
	unit := &models.Unit{
		PropertyID: propertyID,
		UnitNumber: unitNumber,
		RentAmount: decimal.NewFromFloat(2500),
		Status:     models.UnitStatusVacant,
	}
	assert.NoError(t, db.Create(unit).Error)
	return unit
}

// seedTenant 在指定单元下插入一个租户并返回
func seedTenant(t *testing.T, db *gorm.DB, unitID uint, name string) *models.Tenant {
	moveIn := "2025-03-01"
	tenant := &models.Tenant{UnitID: unitID, Name: name, MoveInDate: &moveIn}
	assert.NoError(t, db.Create(tenant).Error)
	return tenant
}

// seedBill 为指定租户插入一个账单并返回
func seedBill(t *testing.T, db *gorm.DB, tenantID uint, amount float64, status string) *models.Bill {
	bill := &models.Bill{
		TenantID: tenantID,
		Type:     models.BillTypeRent,
		Amount:   decimal.NewFromFloat(amount),
		DueDate:  "2025-04-01",
		Status:   status,
	}
	assert.NoError(t, db.Create(bill).Error)
	return bill
}
