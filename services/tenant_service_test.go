package services

import (
	"testing"

	"pms-http-service/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateTenantMarksUnitOccupied(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db, testConfig())
	unitService := NewUnitService(db, testConfig())

	property := seedProperty(t, db, "阳光花园")
	unit := seedUnit(t, db, property.ID, "3-201")

	moveIn := "2025-03-01"
	tenant := &models.Tenant{UnitID: unit.ID, Name: "张三", MoveInDate: &moveIn}
	assert.NoError(t, service.CreateTenant(tenant))
	assert.NotZero(t, tenant.ID)

	// 入住后单元状态变为occupied
	got, err := unitService.GetUnitByID(unit.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.UnitStatusOccupied, got.Status)
}

func TestCreateTenantOverwritesOccupiedUnit(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db, testConfig())
	unitService := NewUnitService(db, testConfig())

	property := seedProperty(t, db, "阳光花园")
	unit := seedUnit(t, db, property.ID, "3-201")

	// 同一单元先后入住两个租户：不做空置校验，后写覆盖先写
	assert.NoError(t, service.CreateTenant(&models.Tenant{UnitID: unit.ID, Name: "张三"}))
	assert.NoError(t, service.CreateTenant(&models.Tenant{UnitID: unit.ID, Name: "李四"}))

	got, err := unitService.GetUnitByID(unit.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.UnitStatusOccupied, got.Status)

	tenants, err := service.GetAllTenants(unit.ID)
	assert.NoError(t, err)
	assert.Len(t, tenants, 2)
}

func TestGetAllTenantsJoinsUnitAndProperty(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db, testConfig())

	property := seedProperty(t, db, "阳光花园")
	unit := seedUnit(t, db, property.ID, "3-201")
	seedTenant(t, db, unit.ID, "张三")

	tenants, err := service.GetAllTenants(0)
	assert.NoError(t, err)
	assert.Len(t, tenants, 1)
	assert.NotNil(t, tenants[0].UnitNumber)
	assert.Equal(t, "3-201", *tenants[0].UnitNumber)
	assert.NotNil(t, tenants[0].PropertyName)
	assert.Equal(t, "阳光花园", *tenants[0].PropertyName)
}

func TestGetAllTenantsMissingJoinTargetYieldsNull(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db, testConfig())

	// 引用不存在的单元：外键为软约束，列表中关联字段为null而不是报错
	seedTenant(t, db, 999, "王五")

	tenants, err := service.GetAllTenants(0)
	assert.NoError(t, err)
	assert.Len(t, tenants, 1)
	assert.Nil(t, tenants[0].UnitNumber)
	assert.Nil(t, tenants[0].PropertyName)
}

func TestGetAllTenantsFilteredByUnit(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db, testConfig())

	property := seedProperty(t, db, "阳光花园")
	u1 := seedUnit(t, db, property.ID, "1-101")
	u2 := seedUnit(t, db, property.ID, "1-102")
	seedTenant(t, db, u1.ID, "张三")
	seedTenant(t, db, u2.ID, "李四")

	tenants, err := service.GetAllTenants(u2.ID)
	assert.NoError(t, err)
	assert.Len(t, tenants, 1)
	assert.Equal(t, "李四", tenants[0].Name)
}
