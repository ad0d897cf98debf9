package repository

import (
	"testing"

	"github.com/luxe-next/internal/models"
)

func TestConfigurationRepositoryToleratesDanglingReferences(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewConfigurationRepository(db)
	diamond := createTestDiamond(t, db, "LD-CFG", "1.00", 3000, "round", "ideal", true)
	setting := createTestSetting(t, db, "ST-CFG", 1200, "round", 1, true)

	config := &models.RingConfiguration{
		UserID:     uintPtr(5),
		DiamondID:  &diamond.ID,
		SettingID:  &setting.ID,
		RingSize:   "6.5",
		TotalPrice: models.NewMoney(4200),
		ConfigName: "Anniversary",
		IsSaved:    true,
	}
	if err := repo.Create(config); err != nil {
		t.Fatalf("create configuration failed: %v", err)
	}

	got, err := repo.GetByID(config.ID)
	if err != nil || got == nil {
		t.Fatalf("get configuration failed: %v", err)
	}
	if got.Diamond == nil || got.Setting == nil {
		t.Fatalf("configuration should preload diamond and setting")
	}

	if err := db.Where("diamond_id = ?", diamond.ID).Delete(&models.Diamond{}).Error; err != nil {
		t.Fatalf("delete diamond failed: %v", err)
	}

	got, err = repo.GetByID(config.ID)
	if err != nil || got == nil {
		t.Fatalf("configuration should survive diamond delete: %v", err)
	}
	if got.Diamond != nil {
		t.Fatalf("dangling diamond should load as nil")
	}
	if got.DiamondID == nil || *got.DiamondID != diamond.ID {
		t.Fatalf("raw diamond id should stay visible")
	}

	rows, total, err := repo.List(ConfigurationListFilter{Page: 1, PageSize: 20, UserID: uintPtr(5), IsSaved: boolPtr(true)})
	if err != nil {
		t.Fatalf("list configurations failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("user filter want 1 got %d", total)
	}
	_, total, err = repo.List(ConfigurationListFilter{Page: 1, PageSize: 20, IsOrdered: boolPtr(true)})
	if err != nil {
		t.Fatalf("list ordered configurations failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("is_ordered filter want 0 got %d", total)
	}
}
