package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/luxe-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// setupRepositoryTestDB 为每个测试创建独立的内存库
func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
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
	return db
}

func createTestDiamond(t *testing.T, db *gorm.DB, sku string, carat string, price float64, shape, cut string, available bool) *models.Diamond {
	t.Helper()
	diamond := &models.Diamond{
		SKU:         sku,
		Carat:       decimal.RequireFromString(carat),
		Cut:         cut,
		Color:       "F",
		Clarity:     "VS1",
		Shape:       shape,
		BasePrice:   models.NewMoney(price),
		IsAvailable: available,
	}
	if err := db.Create(diamond).Error; err != nil {
		t.Fatalf("create diamond failed: %v", err)
	}
	return diamond
}

func createTestSetting(t *testing.T, db *gorm.DB, sku string, price float64, shapes string, popularity int, available bool) *models.Setting {
	t.Helper()
	setting := &models.Setting{
		SKU:              sku,
		Name:             "Setting " + sku,
		StyleType:        "solitaire",
		MetalType:        "platinum",
		BasePrice:        models.NewMoney(price),
		CompatibleShapes: shapes,
		PopularityScore:  popularity,
		IsAvailable:      available,
	}
	if err := db.Create(setting).Error; err != nil {
		t.Fatalf("create setting failed: %v", err)
	}
	return setting
}

func uintPtr(v uint) *uint {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}
