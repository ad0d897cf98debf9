//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/luxe-next/internal/constants"
	"github.com/luxe-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := models.AllModels()
	_ = db.Migrator().DropTable(cleanupModels...)
	if err := models.MigrateDB(db); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresCaseInsensitiveSearch(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	createTestDiamond(t, db, "PG-ROUND-01", "1.25", 4100, "round", "ideal", true)
	createTestSetting(t, db, "PG-SET-01", 1300, "Round,Oval", 10, true)

	diamonds, total, err := NewDiamondRepository(db).List(DiamondListFilter{Page: 1, PageSize: 20, Search: "pg-round"})
	if err != nil {
		t.Fatalf("diamond search failed: %v", err)
	}
	if total != 1 || len(diamonds) != 1 {
		t.Fatalf("diamond ILIKE search want 1 got total=%d", total)
	}

	_, total, err = NewSettingRepository(db).List(SettingListFilter{Page: 1, PageSize: 20, CompatibleShape: "oval"})
	if err != nil {
		t.Fatalf("setting compatible shape failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("setting ILIKE compatible shape want 1 got %d", total)
	}
}

func TestPostgresAggregates(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	now := time.Now().UTC().Truncate(time.Second)

	createTestDiamond(t, db, "PG-STAT-01", "0.80", 2100, "round", "ideal", true)
	createTestDiamond(t, db, "PG-STAT-02", "1.60", 5200, "oval", "ideal", true)

	stats, err := NewDiamondRepository(db).Statistics(DiamondListFilter{})
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if stats.TotalCount != 2 || !stats.MaxCarat.Equal(decimal.RequireFromString("1.6")) {
		t.Fatalf("statistics mismatch: %+v", stats)
	}

	reviewRepo := NewReviewRepository(db)
	review := &models.Review{DiamondID: uintPtr(1), Rating: 5, IsApproved: true}
	if err := reviewRepo.Create(review); err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	count, found, err := reviewRepo.IncrementHelpful(review.ID)
	if err != nil || !found || count != 1 {
		t.Fatalf("increment helpful mismatch: count=%d found=%v err=%v", count, found, err)
	}

	interactionRepo := NewInteractionRepository(db)
	for _, session := range []string{"a", "a", "b"} {
		row := &models.UserInteraction{SessionID: session, InteractionType: "view_diamond", DeviceType: "mobile", CreatedAt: now}
		if err := interactionRepo.Create(row); err != nil {
			t.Fatalf("create interaction failed: %v", err)
		}
	}
	from := now.Add(-time.Hour)
	summary, err := interactionRepo.Summary(&from, nil)
	if err != nil {
		t.Fatalf("interaction summary failed: %v", err)
	}
	if summary.TotalInteractions != 3 || summary.UniqueSessions != 2 {
		t.Fatalf("interaction summary mismatch: %+v", summary)
	}

	orderRepo := NewOrderRepository(db)
	order := createTestOrder(t, orderRepo, "PG-LUX-0001", nil, 2)
	if err := orderRepo.UpdateStatus(order.ID, constants.OrderStatusDelivered, now); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if err := orderRepo.DeleteWithItems(order.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
}
