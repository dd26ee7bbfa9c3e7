package services

import (
	"log"
	"time"

	"pms-http-service/config"
	"pms-http-service/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 仪表盘统计的缓存键
const dashboardCacheKey = "dashboard:stats"

// DashboardStats 仪表盘统计信息
type DashboardStats struct {
	TotalProperties int64           `json:"totalProperties"` // 物业总数
	TotalUnits      int64           `json:"totalUnits"`      // 单元总数
	TotalTenants    int64           `json:"totalTenants"`    // 在租租户数（move_out_date为空）
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`  // 本自然月缴费金额合计
	PendingBills    decimal.Decimal `json:"pendingBills"`    // 待支付账单金额合计
}

// InterfaceDashboardService 定义仪表盘服务接口
type InterfaceDashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
}

// DashboardService 提供仪表盘统计相关的服务
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService // 可为nil，此时不使用缓存
}

// NewDashboardService 创建一个新的仪表盘服务
func NewDashboardService(db *gorm.DB, cfg *config.Config, redisService *RedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// GetDashboardStats 获取仪表盘统计信息
// 配置了Redis时优先读取短TTL缓存，缓存不可用则直接计算
func (s *DashboardService) GetDashboardStats() (*DashboardStats, error) {
	ttl := time.Duration(s.Config.DashboardCacheTTL) * time.Second
	if s.Redis != nil && ttl > 0 {
		var cached DashboardStats
		if err := s.Redis.Get(dashboardCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.computeStats()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && ttl > 0 {
		if err := s.Redis.Set(dashboardCacheKey, stats, ttl); err != nil {
			log.Printf("缓存仪表盘统计失败: %v", err)
		}
	}

	return stats, nil
}

// computeStats 逐项计算五个统计值
func (s *DashboardService) computeStats() (*DashboardStats, error) {
	var stats DashboardStats

	// 物业总数
	if err := s.DB.Model(&models.Property{}).Count(&stats.TotalProperties).Error; err != nil {
		return nil, err
	}

	// 单元总数
	if err := s.DB.Model(&models.Unit{}).Count(&stats.TotalUnits).Error; err != nil {
		return nil, err
	}

	// 在租租户数
	if err := s.DB.Model(&models.Tenant{}).
		Where("move_out_date IS NULL").
		Count(&stats.TotalTenants).Error; err != nil {
		return nil, err
	}

	// 本月缴费金额，按自然月[月初, 下月初)统计，无记录时为0
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	row := s.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_date >= ? AND payment_date < ?",
			monthStart.Format("2006-01-02"), nextMonthStart.Format("2006-01-02")).
		Row()
	if err := row.Scan(&stats.MonthlyRevenue); err != nil {
		return nil, err
	}

	// 待支付账单金额合计，无记录时为0
	row = s.DB.Model(&models.Bill{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", models.BillStatusPending).
		Row()
	if err := row.Scan(&stats.PendingBills); err != nil {
		return nil, err
	}

	return &stats, nil
}
