package public

import (
	"encoding/json"
	"testing"

	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiamondDetailViewPrecision(t *testing.T) {
	diamond := &models.Diamond{
		ID:           7,
		SKU:          "D-7",
		Carat:        decimal.RequireFromString("1.5"),
		BasePrice:    models.NewMoney(4200),
		LengthMM:     decimal.NewNullDecimal(decimal.RequireFromString("7.456")),
		TablePercent: decimal.NewNullDecimal(decimal.RequireFromString("57")),
	}
	view := newDiamondDetailView(diamond)
	require.NotNil(t, view)
	assert.Equal(t, "1.50", view.Carat)
	assert.Equal(t, "7.46", *view.LengthMM)
	assert.Equal(t, "57.0", *view.TablePercent)
	assert.Nil(t, view.WidthMM)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"base_price":"4200.00"`)
	assert.Contains(t, string(raw), `"depth_mm":null`)
}

func TestConfigurationListViewDanglingRefs(t *testing.T) {
	view := newConfigurationListView(&models.RingConfiguration{ID: 3, RingSize: "7"})
	require.NotNil(t, view)
	assert.Nil(t, view.Diamond)
	assert.Nil(t, view.Setting)
	assert.Nil(t, newConfigurationListView(nil))
}

func TestUserViewOmitsPassword(t *testing.T) {
	raw, err := json.Marshal(newUserView(&models.User{ID: 1, Email: "ada@example.com", PasswordHash: "$2a$hash"}))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "password")
}

func TestProductReviewsViewRoundsAverage(t *testing.T) {
	view := newProductReviewsView(&service.ProductReviews{
		AverageRating: decimal.RequireFromString("4.666"),
		TotalReviews:  3,
	})
	assert.Equal(t, 4.7, view.AverageRating)
	assert.NotNil(t, view.Reviews)
	assert.Len(t, view.Reviews, 0)
}
