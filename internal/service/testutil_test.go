package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db           *gorm.DB
	users        *repository.GormUserRepository
	diamonds     *repository.GormDiamondRepository
	settings     *repository.GormSettingRepository
	configs      *repository.GormConfigurationRepository
	favorites    *repository.GormFavoriteRepository
	reviews      *repository.GormReviewRepository
	orders       *repository.GormOrderRepository
	interactions *repository.GormInteractionRepository
}

func setupServiceTest(t *testing.T) *serviceTestEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc:                                  models.NowUTC,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := models.MigrateDB(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return &serviceTestEnv{
		db:           db,
		users:        repository.NewUserRepository(db),
		diamonds:     repository.NewDiamondRepository(db),
		settings:     repository.NewSettingRepository(db),
		configs:      repository.NewConfigurationRepository(db),
		favorites:    repository.NewFavoriteRepository(db),
		reviews:      repository.NewReviewRepository(db),
		orders:       repository.NewOrderRepository(db),
		interactions: repository.NewInteractionRepository(db),
	}
}

func (e *serviceTestEnv) createDiamond(t *testing.T, sku string, price float64) *models.Diamond {
	t.Helper()
	diamond := &models.Diamond{
		SKU:         sku,
		Carat:       decimal.RequireFromString("1.01"),
		Cut:         "Excellent",
		Color:       "E",
		Clarity:     "VS1",
		Shape:       "Round",
		BasePrice:   models.NewMoney(price),
		IsAvailable: true,
	}
	if err := e.diamonds.Create(diamond); err != nil {
		t.Fatalf("create diamond failed: %v", err)
	}
	return diamond
}

func (e *serviceTestEnv) createSetting(t *testing.T, sku string, price float64) *models.Setting {
	t.Helper()
	setting := &models.Setting{
		SKU:              sku,
		Name:             "Classic " + sku,
		StyleType:        "Solitaire",
		MetalType:        "Platinum",
		BasePrice:        models.NewMoney(price),
		CompatibleShapes: "Round,Oval",
		IsAvailable:      true,
	}
	if err := e.settings.Create(setting); err != nil {
		t.Fatalf("create setting failed: %v", err)
	}
	return setting
}

func (e *serviceTestEnv) orderService() *OrderService {
	return NewOrderService(e.orders, e.users, e.configs, "LUX")
}

func (e *serviceTestEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows failed: %v", err)
	}
	return count
}

func strPtr(v string) *string {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func uintPtr(v uint) *uint {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func moneyPtr(v float64) *models.Money {
	m := models.NewMoney(v)
	return &m
}

func timePtr(v time.Time) *time.Time {
	return &v
}
