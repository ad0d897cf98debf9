package provider

import (
	"github.com/luxe-next/internal/cache"
	"github.com/luxe-next/internal/config"
	"github.com/luxe-next/internal/logger"
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"
	"github.com/luxe-next/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	// Repositories
	UserRepo          repository.UserRepository
	DiamondRepo       repository.DiamondRepository
	SettingRepo       repository.SettingRepository
	ConfigurationRepo repository.ConfigurationRepository
	FavoriteRepo      repository.FavoriteRepository
	ReviewRepo        repository.ReviewRepository
	OrderRepo         repository.OrderRepository
	InteractionRepo   repository.InteractionRepository

	// Services
	UserService          *service.UserService
	CatalogService       *service.CatalogService
	ConfigurationService *service.ConfigurationService
	FavoriteService      *service.FavoriteService
	ReviewService        *service.ReviewService
	OrderService         *service.OrderService
	InteractionService   *service.InteractionService
}

// NewContainer 初始化容器（使用全局数据库连接并初始化缓存）
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 使用指定数据库连接初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := c.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.DiamondRepo = repository.NewDiamondRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.ConfigurationRepo = repository.NewConfigurationRepository(db)
	c.FavoriteRepo = repository.NewFavoriteRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.InteractionRepo = repository.NewInteractionRepository(db)
}

func (c *Container) initServices() {
	c.UserService = service.NewUserService(c.UserRepo, c.Config.Security.PasswordHashCost)
	c.CatalogService = service.NewCatalogService(c.DiamondRepo, c.SettingRepo, c.Config.Catalog.StatisticsCacheTTL())
	c.ConfigurationService = service.NewConfigurationService(c.ConfigurationRepo, c.UserRepo, c.DiamondRepo, c.SettingRepo)
	c.FavoriteService = service.NewFavoriteService(c.FavoriteRepo, c.UserRepo, c.DiamondRepo, c.SettingRepo, c.ConfigurationRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.UserRepo, c.DiamondRepo, c.SettingRepo, c.ConfigurationRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.UserRepo, c.ConfigurationRepo, c.Config.Order.NumberPrefix)
	c.InteractionService = service.NewInteractionService(c.InteractionRepo, c.UserRepo, c.DiamondRepo, c.SettingRepo, c.ConfigurationRepo)
}
