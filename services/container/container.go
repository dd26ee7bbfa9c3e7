package container

import (
	"context"
	"log"
	"sync"
	"time"

	"pms-http-service/config"
	"pms-http-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 数据存储服务
	redisService *services.RedisService

	// 业务服务
	propertyService  services.InterfacePropertyService
	unitService      services.InterfaceUnitService
	tenantService    services.InterfaceTenantService
	billService      services.InterfaceBillService
	paymentService   services.InterfacePaymentService
	dashboardService services.InterfaceDashboardService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器，redisClient可为nil
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化Redis服务
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.redis)
	}

	// 初始化业务服务
	c.propertyService = services.NewPropertyService(c.db, c.config)
	c.unitService = services.NewUnitService(c.db, c.config)
	c.tenantService = services.NewTenantService(c.db, c.config)
	c.billService = services.NewBillService(c.db, c.config)
	c.paymentService = services.NewPaymentService(c.db, c.config)

	// 初始化仪表盘服务
	c.dashboardService = services.NewDashboardService(c.db, c.config, c.redisService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "redis":
		return c.redisService
	case "property":
		return c.propertyService
	case "unit":
		return c.unitService
	case "tenant":
		return c.tenantService
	case "bill":
		return c.billService
	case "payment":
		return c.paymentService
	case "dashboard":
		return c.dashboardService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
