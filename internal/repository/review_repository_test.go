package repository

import (
	"sync"
	"testing"

	"github.com/luxe-next/internal/models"

	"gorm.io/gorm"
)

func createTestReview(t *testing.T, db *gorm.DB, diamondID *uint, rating int, approved bool) *models.Review {
	t.Helper()
	review := &models.Review{
		DiamondID:  diamondID,
		Rating:     rating,
		Title:      "review",
		IsApproved: approved,
	}
	if err := db.Create(review).Error; err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	return review
}

func TestReviewRepositoryHidesUnapproved(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewReviewRepository(db)
	diamondID := uintPtr(7)

	createTestReview(t, db, diamondID, 5, true)
	hidden := createTestReview(t, db, diamondID, 1, false)

	rows, total, err := repo.List(ReviewListFilter{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list reviews failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || !rows[0].IsApproved {
		t.Fatalf("only approved reviews should be listed, total=%d", total)
	}

	got, err := repo.GetApprovedByID(hidden.ID)
	if err != nil {
		t.Fatalf("get approved failed: %v", err)
	}
	if got != nil {
		t.Fatalf("unapproved review should not be retrievable")
	}

	summary, err := repo.ProductSummary(ProductReviewFilter{DiamondID: diamondID})
	if err != nil {
		t.Fatalf("product summary failed: %v", err)
	}
	if summary.TotalReviews != 1 || summary.AverageRating.String() != "5" {
		t.Fatalf("summary should only count approved reviews: %+v", summary)
	}

	_, found, err := repo.IncrementHelpful(hidden.ID)
	if err != nil {
		t.Fatalf("increment unapproved failed: %v", err)
	}
	if found {
		t.Fatalf("unapproved review should not be incremented")
	}
}

func TestReviewRepositoryProductSummaryRoundsAverage(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewReviewRepository(db)
	settingID := uintPtr(3)

	for _, rating := range []int{5, 4, 4} {
		review := &models.Review{SettingID: settingID, Rating: rating, IsApproved: true}
		if err := db.Create(review).Error; err != nil {
			t.Fatalf("create review failed: %v", err)
		}
	}

	summary, err := repo.ProductSummary(ProductReviewFilter{SettingID: settingID})
	if err != nil {
		t.Fatalf("product summary failed: %v", err)
	}
	if summary.TotalReviews != 3 || summary.AverageRating.StringFixed(1) != "4.3" {
		t.Fatalf("average want 4.3 of 3 got %s of %d", summary.AverageRating.StringFixed(1), summary.TotalReviews)
	}

	empty, err := repo.ProductSummary(ProductReviewFilter{SettingID: uintPtr(999)})
	if err != nil {
		t.Fatalf("empty summary failed: %v", err)
	}
	if empty.TotalReviews != 0 || !empty.AverageRating.IsZero() {
		t.Fatalf("empty summary should be zero: %+v", empty)
	}
}

func TestReviewRepositoryIncrementHelpfulConcurrent(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewReviewRepository(db)
	review := createTestReview(t, db, uintPtr(1), 4, true)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := repo.IncrementHelpful(review.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent increment failed: %v", err)
	}

	var reloaded models.Review
	if err := db.Where("review_id = ?", review.ID).Take(&reloaded).Error; err != nil {
		t.Fatalf("reload review failed: %v", err)
	}
	if reloaded.HelpfulCount != workers {
		t.Fatalf("helpful_count want %d got %d", workers, reloaded.HelpfulCount)
	}
}

func TestReviewRepositoryUpdateKeepsHelpfulCount(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewReviewRepository(db)
	review := createTestReview(t, db, uintPtr(1), 4, true)

	if _, _, err := repo.IncrementHelpful(review.ID); err != nil {
		t.Fatalf("increment failed: %v", err)
	}

	review.HelpfulCount = 500
	review.Title = "edited"
	if err := repo.Update(review); err != nil {
		t.Fatalf("update review failed: %v", err)
	}

	var reloaded models.Review
	if err := db.Where("review_id = ?", review.ID).Take(&reloaded).Error; err != nil {
		t.Fatalf("reload review failed: %v", err)
	}
	if reloaded.HelpfulCount != 1 || reloaded.Title != "edited" {
		t.Fatalf("update should not touch helpful_count, got %d title=%s", reloaded.HelpfulCount, reloaded.Title)
	}
}
