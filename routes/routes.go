package routes

import (
	"pms-http-service/config"
	"pms-http-service/controllers"
	"pms-http-service/services/container"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由，redisClient可为nil
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
// 只有GET/POST两类操作：编辑和删除在当前版本有意不提供
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")

	// 健康检查
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "health"))

	// 物业路由
	api.GET("/properties", controllers.HandlePropertyFunc(container, "getProperties"))
	api.POST("/properties", controllers.HandlePropertyFunc(container, "createProperty"))

	// 单元路由
	api.GET("/units", controllers.HandleUnitFunc(container, "getUnits"))
	api.POST("/units", controllers.HandleUnitFunc(container, "createUnit"))

	// 租户路由
	api.GET("/tenants", controllers.HandleTenantFunc(container, "getTenants"))
	api.POST("/tenants", controllers.HandleTenantFunc(container, "createTenant"))

	// 账单路由
	api.GET("/bills", controllers.HandleBillFunc(container, "getBills"))
	api.POST("/bills", controllers.HandleBillFunc(container, "createBill"))

	// 缴费路由
	api.GET("/payments", controllers.HandlePaymentFunc(container, "getPayments"))
	api.POST("/payments", controllers.HandlePaymentFunc(container, "createPayment"))

	// 仪表盘路由
	api.GET("/dashboard", controllers.HandleDashboardFunc(container, "getDashboardStats"))
}
