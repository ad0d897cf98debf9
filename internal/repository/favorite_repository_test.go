package repository

import (
	"testing"

	"github.com/luxe-next/internal/models"
)

func TestFavoriteRepositoryPreloadsTargets(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewFavoriteRepository(db)
	setting := createTestSetting(t, db, "ST-FAV", 1500, "oval", 1, true)

	favorite := &models.Favorite{UserID: uintPtr(9), SettingID: &setting.ID, UserNotes: "maybe"}
	if err := repo.Create(favorite); err != nil {
		t.Fatalf("create favorite failed: %v", err)
	}
	other := &models.Favorite{UserID: uintPtr(10), SettingID: &setting.ID}
	if err := repo.Create(other); err != nil {
		t.Fatalf("create other favorite failed: %v", err)
	}

	rows, total, err := repo.List(FavoriteListFilter{UserID: uintPtr(9)})
	if err != nil {
		t.Fatalf("list favorites failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("user favorites want 1 got %d", total)
	}
	if rows[0].Setting == nil || rows[0].Setting.SKU != "ST-FAV" {
		t.Fatalf("favorite should preload setting")
	}
	if rows[0].Diamond != nil || rows[0].Config != nil {
		t.Fatalf("unset targets should stay nil")
	}
}
