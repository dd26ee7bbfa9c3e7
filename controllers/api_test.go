package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"pms-http-service/config"
	"pms-http-service/models"
	"pms-http-service/routes"
	"pms-http-service/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestRouter 构造一个基于内存数据库的完整路由，不使用Redis
func setupTestRouter(t *testing.T) *gin.Engine {
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

	cfg := &config.Config{ServerPort: "3000", DashboardCacheTTL: 0}
	return routes.SetupRouter(db, cfg, nil)
}

// doRequest 发送一次请求并返回响应记录器
func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestCreateAndListProperties(t *testing.T) {
	r := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/properties", gin.H{
		"name":        "阳光花园",
		"address":     "建设路100号",
		"total_units": 24,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var created models.Property
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	w = doRequest(r, http.MethodGet, "/api/properties", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var listed []models.Property
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestCreatePropertyValidationError(t *testing.T) {
	r := setupTestRouter(t)

	// 缺少必填的name字段
	w := doRequest(r, http.MethodPost, "/api/properties", gin.H{"address": "建设路100号"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 错误响应只包含一个error字段
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.NotEmpty(t, body["error"])
}

func TestListUnitsFilteredByProperty(t *testing.T) {
	r := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/properties", gin.H{"name": "阳光花园", "address": "建设路100号"})
	assert.Equal(t, http.StatusOK, w.Code)
	var property models.Property
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &property))

	w = doRequest(r, http.MethodPost, "/api/units", gin.H{
		"property_id": property.ID,
		"unit_number": "3-201",
		"rent_amount": 2500,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/units?property_id=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var units []models.Unit
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &units))
	assert.Len(t, units, 1)
	assert.Equal(t, "3-201", units[0].UnitNumber)
	assert.Equal(t, models.UnitStatusVacant, units[0].Status)

	// 其他物业下没有单元
	w = doRequest(r, http.MethodGet, "/api/units?property_id=999", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	units = nil
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &units))
	assert.Empty(t, units)

	// 非数字的过滤参数返回400
	w = doRequest(r, http.MethodGet, "/api/units?property_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTenantOccupiesUnit(t *testing.T) {
	r := setupTestRouter(t)

	doRequest(r, http.MethodPost, "/api/properties", gin.H{"name": "阳光花园", "address": "建设路100号"})
	doRequest(r, http.MethodPost, "/api/units", gin.H{
		"property_id": 1, "unit_number": "3-201", "rent_amount": 2500,
	})

	w := doRequest(r, http.MethodPost, "/api/tenants", gin.H{
		"unit_id":      1,
		"name":         "张三",
		"phone":        "13812345678",
		"move_in_date": "2025-03-01",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// 入住后单元状态变为occupied
	w = doRequest(r, http.MethodGet, "/api/units?property_id=1", nil)
	var units []models.Unit
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &units))
	assert.Len(t, units, 1)
	assert.Equal(t, models.UnitStatusOccupied, units[0].Status)

	// 租户列表附带单元号和物业名称
	w = doRequest(r, http.MethodGet, "/api/tenants?unit_id=1", nil)
	var tenants []models.TenantDetail
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tenants))
	assert.Len(t, tenants, 1)
	assert.NotNil(t, tenants[0].UnitNumber)
	assert.Equal(t, "3-201", *tenants[0].UnitNumber)
}

func TestPaymentSettlesBill(t *testing.T) {
	r := setupTestRouter(t)

	doRequest(r, http.MethodPost, "/api/properties", gin.H{"name": "阳光花园", "address": "建设路100号"})
	doRequest(r, http.MethodPost, "/api/units", gin.H{
		"property_id": 1, "unit_number": "3-201", "rent_amount": 2500,
	})
	doRequest(r, http.MethodPost, "/api/tenants", gin.H{"unit_id": 1, "name": "张三"})

	w := doRequest(r, http.MethodPost, "/api/bills", gin.H{
		"tenant_id": 1,
		"type":      "rent",
		"amount":    2500,
		"due_date":  "2025-04-01",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var bill models.Bill
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &bill))
	assert.Equal(t, models.BillStatusPending, bill.Status)

	w = doRequest(r, http.MethodPost, "/api/payments", gin.H{
		"bill_id":        bill.ID,
		"tenant_id":      1,
		"amount":         2500,
		"payment_date":   "2025-03-28",
		"payment_method": "wechat",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var payment models.Payment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
	assert.NotEmpty(t, payment.TransactionID)

	// 缴费后账单状态变为paid
	w = doRequest(r, http.MethodGet, "/api/bills?tenant_id=1&status=paid", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var bills []models.BillDetail
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &bills))
	assert.Len(t, bills, 1)
	assert.Equal(t, bill.ID, bills[0].ID)

	// 不支持的支付方式返回400
	w = doRequest(r, http.MethodPost, "/api/payments", gin.H{
		"bill_id":        bill.ID,
		"tenant_id":      1,
		"amount":         2500,
		"payment_date":   "2025-03-28",
		"payment_method": "check",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	doRequest(r, http.MethodPost, "/api/properties", gin.H{"name": "阳光花园", "address": "建设路100号"})
	doRequest(r, http.MethodPost, "/api/units", gin.H{
		"property_id": 1, "unit_number": "3-201", "rent_amount": 2500,
	})
	doRequest(r, http.MethodPost, "/api/tenants", gin.H{"unit_id": 1, "name": "张三"})
	doRequest(r, http.MethodPost, "/api/bills", gin.H{
		"tenant_id": 1, "type": "rent", "amount": 2500, "due_date": "2025-04-01",
	})

	w := doRequest(r, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats services.DashboardStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalProperties)
	assert.Equal(t, int64(1), stats.TotalUnits)
	assert.Equal(t, int64(1), stats.TotalTenants)
	assert.True(t, stats.PendingBills.Equal(decimal.NewFromInt(2500)), "pendingBills = %s", stats.PendingBills)
}
