package repository

import "testing"

func TestSettingRepositoryListFilters(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewSettingRepository(db)

	createTestSetting(t, db, "ST-001", 1200, "round,oval", 10, true)
	createTestSetting(t, db, "ST-002", 1800, "princess", 50, true)
	createTestSetting(t, db, "ST-003", 900, "round", 99, false)

	rows, total, err := repo.List(SettingListFilter{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list settings failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("available settings want 2 got %d", total)
	}
	if rows[0].SKU != "ST-002" {
		t.Fatalf("default ordering should be by popularity desc, got %s", rows[0].SKU)
	}

	rows, total, err = repo.List(SettingListFilter{Page: 1, PageSize: 20, CompatibleShape: "oval"})
	if err != nil {
		t.Fatalf("compatible shape filter failed: %v", err)
	}
	if total != 1 || rows[0].SKU != "ST-001" {
		t.Fatalf("compatible shape filter want ST-001 got total=%d", total)
	}

	_, total, err = repo.List(SettingListFilter{Page: 1, PageSize: 20, Search: "setting st-002"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("name search want 1 got %d", total)
	}
}
