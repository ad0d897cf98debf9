package repository

import (
	"testing"
	"time"

	"github.com/luxe-next/internal/models"
)

func TestInteractionRepositorySummary(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewInteractionRepository(db)
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	rows := []models.UserInteraction{
		{SessionID: "s1", InteractionType: "view_diamond", DeviceType: "mobile", CreatedAt: base},
		{SessionID: "s1", InteractionType: "view_diamond", DeviceType: "mobile", CreatedAt: base.Add(time.Minute)},
		{SessionID: "s2", InteractionType: "add_favorite", DeviceType: "desktop", CreatedAt: base.Add(time.Hour)},
		{SessionID: "", InteractionType: "view_setting", DeviceType: "desktop", CreatedAt: base.Add(2 * time.Hour)},
		{SessionID: "s3", InteractionType: "view_setting", DeviceType: "tablet", CreatedAt: base.AddDate(0, 0, -7)},
	}
	for i := range rows {
		if err := repo.Create(&rows[i]); err != nil {
			t.Fatalf("create interaction failed: %v", err)
		}
	}

	from := base.Add(-time.Hour)
	to := base.Add(3 * time.Hour)
	summary, err := repo.Summary(&from, &to)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalInteractions != 4 {
		t.Fatalf("total want 4 got %d", summary.TotalInteractions)
	}
	if summary.UniqueSessions != 2 {
		t.Fatalf("unique sessions want 2 got %d", summary.UniqueSessions)
	}
	if len(summary.ByType) != 3 || summary.ByType[0].InteractionType != "view_diamond" || summary.ByType[0].Count != 2 {
		t.Fatalf("by type mismatch: %+v", summary.ByType)
	}
	if len(summary.ByDevice) != 2 {
		t.Fatalf("by device mismatch: %+v", summary.ByDevice)
	}

	all, err := repo.Summary(nil, nil)
	if err != nil {
		t.Fatalf("unbounded summary failed: %v", err)
	}
	if all.TotalInteractions != 5 || all.UniqueSessions != 3 {
		t.Fatalf("unbounded summary mismatch: %+v", all)
	}
}

func TestInteractionRepositoryListByDateRange(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewInteractionRepository(db)
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		row := &models.UserInteraction{
			InteractionType: "view_diamond",
			CreatedAt:       base.AddDate(0, 0, i),
		}
		if err := repo.Create(row); err != nil {
			t.Fatalf("create interaction failed: %v", err)
		}
	}

	from := base.AddDate(0, 0, 1)
	_, total, err := repo.List(InteractionListFilter{Page: 1, PageSize: 20, CreatedFrom: &from})
	if err != nil {
		t.Fatalf("list interactions failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("range filter want 2 got %d", total)
	}
}
