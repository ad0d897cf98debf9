package public

import (
	"encoding/json"
	"time"

	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"
	"github.com/luxe-next/internal/service"

	"github.com/shopspring/decimal"
)

// 嵌套对象：父对象为列表形态时使用子对象列表形态，详情形态时使用详情形态

func fixed(value decimal.Decimal, places int32) string {
	return value.StringFixed(places)
}

func nullFixed(value decimal.NullDecimal, places int32) *string {
	if !value.Valid {
		return nil
	}
	s := value.Decimal.StringFixed(places)
	return &s
}

type userView struct {
	UserID    uint       `json:"user_id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
	IsActive  bool       `json:"is_active"`
}

func newUserView(u *models.User) userView {
	return userView{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		IsActive:  u.IsActive,
	}
}

type diamondListView struct {
	DiamondID   uint         `json:"diamond_id"`
	SKU         string       `json:"sku"`
	Carat       string       `json:"carat"`
	Cut         string       `json:"cut"`
	Color       string       `json:"color"`
	Clarity     string       `json:"clarity"`
	Shape       string       `json:"shape"`
	BasePrice   models.Money `json:"base_price"`
	ImageURL    string       `json:"image_url"`
	IsAvailable bool         `json:"is_available"`
}

func newDiamondListView(d *models.Diamond) *diamondListView {
	if d == nil {
		return nil
	}
	return &diamondListView{
		DiamondID:   d.ID,
		SKU:         d.SKU,
		Carat:       fixed(d.Carat, 2),
		Cut:         d.Cut,
		Color:       d.Color,
		Clarity:     d.Clarity,
		Shape:       d.Shape,
		BasePrice:   d.BasePrice,
		ImageURL:    d.ImageURL,
		IsAvailable: d.IsAvailable,
	}
}

type diamondDetailView struct {
	diamondListView
	LengthMM          *string   `json:"length_mm"`
	WidthMM           *string   `json:"width_mm"`
	DepthMM           *string   `json:"depth_mm"`
	TablePercent      *string   `json:"table_percent"`
	DepthPercent      *string   `json:"depth_percent"`
	CertificateType   string    `json:"certificate_type"`
	CertificateNumber string    `json:"certificate_number"`
	Polish            string    `json:"polish"`
	Symmetry          string    `json:"symmetry"`
	Fluorescence      string    `json:"fluorescence"`
	VideoURL          string    `json:"video_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newDiamondDetailView(d *models.Diamond) *diamondDetailView {
	if d == nil {
		return nil
	}
	return &diamondDetailView{
		diamondListView:   *newDiamondListView(d),
		LengthMM:          nullFixed(d.LengthMM, 2),
		WidthMM:           nullFixed(d.WidthMM, 2),
		DepthMM:           nullFixed(d.DepthMM, 2),
		TablePercent:      nullFixed(d.TablePercent, 1),
		DepthPercent:      nullFixed(d.DepthPercent, 1),
		CertificateType:   d.CertificateType,
		CertificateNumber: d.CertificateNumber,
		Polish:            d.Polish,
		Symmetry:          d.Symmetry,
		Fluorescence:      d.Fluorescence,
		VideoURL:          d.VideoURL,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

type settingListView struct {
	SettingID    uint         `json:"setting_id"`
	SKU          string       `json:"sku"`
	Name         string       `json:"name"`
	StyleType    string       `json:"style_type"`
	MetalType    string       `json:"metal_type"`
	BasePrice    models.Money `json:"base_price"`
	ThumbnailURL string       `json:"thumbnail_url"`
	IsAvailable  bool         `json:"is_available"`
}

func newSettingListView(s *models.Setting) *settingListView {
	if s == nil {
		return nil
	}
	return &settingListView{
		SettingID:    s.ID,
		SKU:          s.SKU,
		Name:         s.Name,
		StyleType:    s.StyleType,
		MetalType:    s.MetalType,
		BasePrice:    s.BasePrice,
		ThumbnailURL: s.ThumbnailURL,
		IsAvailable:  s.IsAvailable,
	}
}

type settingDetailView struct {
	settingListView
	Description      string    `json:"description"`
	CompatibleShapes string    `json:"compatible_shapes"`
	MinCarat         *string   `json:"min_carat"`
	MaxCarat         *string   `json:"max_carat"`
	ImageURL         string    `json:"image_url"`
	PopularityScore  int       `json:"popularity_score"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newSettingDetailView(s *models.Setting) *settingDetailView {
	if s == nil {
		return nil
	}
	return &settingDetailView{
		settingListView:  *newSettingListView(s),
		Description:      s.Description,
		CompatibleShapes: s.CompatibleShapes,
		MinCarat:         nullFixed(s.MinCarat, 2),
		MaxCarat:         nullFixed(s.MaxCarat, 2),
		ImageURL:         s.ImageURL,
		PopularityScore:  s.PopularityScore,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

type configurationListView struct {
	ConfigID   uint             `json:"config_id"`
	ConfigName string           `json:"config_name"`
	RingSize   string           `json:"ring_size"`
	TotalPrice models.Money     `json:"total_price"`
	Diamond    *diamondListView `json:"diamond"`
	Setting    *settingListView `json:"setting"`
	IsSaved    bool             `json:"is_saved"`
	CreatedAt  time.Time        `json:"created_at"`
}

func newConfigurationListView(c *models.RingConfiguration) *configurationListView {
	if c == nil {
		return nil
	}
	return &configurationListView{
		ConfigID:   c.ID,
		ConfigName: c.ConfigName,
		RingSize:   c.RingSize,
		TotalPrice: c.TotalPrice,
		Diamond:    newDiamondListView(c.Diamond),
		Setting:    newSettingListView(c.Setting),
		IsSaved:    c.IsSaved,
		CreatedAt:  c.CreatedAt,
	}
}

type configurationDetailView struct {
	ConfigID     uint               `json:"config_id"`
	User         *uint              `json:"user"`
	DiamondID    *uint              `json:"diamond_id"`
	SettingID    *uint              `json:"setting_id"`
	Diamond      *diamondDetailView `json:"diamond"`
	Setting      *settingDetailView `json:"setting"`
	RingSize     string             `json:"ring_size"`
	TotalPrice   models.Money       `json:"total_price"`
	DiamondPrice *models.Money      `json:"diamond_price"`
	SettingPrice *models.Money      `json:"setting_price"`
	ConfigName   string             `json:"config_name"`
	IsSaved      bool               `json:"is_saved"`
	IsOrdered    bool               `json:"is_ordered"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func newConfigurationDetailView(c *models.RingConfiguration) *configurationDetailView {
	return &configurationDetailView{
		ConfigID:     c.ID,
		User:         c.UserID,
		DiamondID:    c.DiamondID,
		SettingID:    c.SettingID,
		Diamond:      newDiamondDetailView(c.Diamond),
		Setting:      newSettingDetailView(c.Setting),
		RingSize:     c.RingSize,
		TotalPrice:   c.TotalPrice,
		DiamondPrice: c.DiamondPrice,
		SettingPrice: c.SettingPrice,
		ConfigName:   c.ConfigName,
		IsSaved:      c.IsSaved,
		IsOrdered:    c.IsOrdered,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

type favoriteView struct {
	FavoriteID uint                   `json:"favorite_id"`
	User       *uint                  `json:"user"`
	DiamondID  *uint                  `json:"diamond_id"`
	SettingID  *uint                  `json:"setting_id"`
	ConfigID   *uint                  `json:"config_id"`
	Diamond    *diamondListView       `json:"diamond"`
	Setting    *settingListView       `json:"setting"`
	Config     *configurationListView `json:"config"`
	UserNotes  string                 `json:"user_notes"`
	CreatedAt  time.Time              `json:"created_at"`
}

func newFavoriteView(f *models.Favorite) favoriteView {
	return favoriteView{
		FavoriteID: f.ID,
		User:       f.UserID,
		DiamondID:  f.DiamondID,
		SettingID:  f.SettingID,
		ConfigID:   f.ConfigID,
		Diamond:    newDiamondListView(f.Diamond),
		Setting:    newSettingListView(f.Setting),
		Config:     newConfigurationListView(f.Config),
		UserNotes:  f.UserNotes,
		CreatedAt:  f.CreatedAt,
	}
}

type reviewView struct {
	ReviewID           uint      `json:"review_id"`
	User               *uint     `json:"user"`
	UserName           string    `json:"user_name"`
	Diamond            *uint     `json:"diamond"`
	Setting            *uint     `json:"setting"`
	Config             *uint     `json:"config"`
	Rating             int       `json:"rating"`
	Title              string    `json:"title"`
	ReviewText         string    `json:"review_text"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	HelpfulCount       int       `json:"helpful_count"`
	IsApproved         bool      `json:"is_approved"`
	CreatedAt          time.Time `json:"created_at"`
}

func newReviewView(r *models.Review) reviewView {
	return reviewView{
		ReviewID:           r.ID,
		User:               r.UserID,
		UserName:           service.ReviewerName(r),
		Diamond:            r.DiamondID,
		Setting:            r.SettingID,
		Config:             r.ConfigID,
		Rating:             r.Rating,
		Title:              r.Title,
		ReviewText:         r.ReviewText,
		IsVerifiedPurchase: r.IsVerifiedPurchase,
		HelpfulCount:       r.HelpfulCount,
		IsApproved:         r.IsApproved,
		CreatedAt:          r.CreatedAt,
	}
}

type orderListView struct {
	OrderID       uint         `json:"order_id"`
	OrderNumber   string       `json:"order_number"`
	CustomerEmail string       `json:"customer_email"`
	TotalAmount   models.Money `json:"total_amount"`
	Status        string       `json:"status"`
	PaymentStatus string       `json:"payment_status"`
	CreatedAt     time.Time    `json:"created_at"`
}

func newOrderListView(o *models.Order) orderListView {
	return orderListView{
		OrderID:       o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerEmail: o.CustomerEmail,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
	}
}

type orderItemView struct {
	OrderItemID     uint         `json:"order_item_id"`
	Config          *uint        `json:"config"`
	DiamondSKU      string       `json:"diamond_sku"`
	SettingSKU      string       `json:"setting_sku"`
	RingSize        string       `json:"ring_size"`
	DiamondPrice    models.Money `json:"diamond_price"`
	SettingPrice    models.Money `json:"setting_price"`
	ItemTotal       models.Money `json:"item_total"`
	Quantity        int          `json:"quantity"`
	ItemDescription string       `json:"item_description"`
}

type orderDetailView struct {
	models.Order
	Items []orderItemView `json:"items"`
}

func newOrderDetailView(o *models.Order) orderDetailView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemView{
			OrderItemID:     item.ID,
			Config:          item.ConfigID,
			DiamondSKU:      item.DiamondSKU,
			SettingSKU:      item.SettingSKU,
			RingSize:        item.RingSize,
			DiamondPrice:    item.DiamondPrice,
			SettingPrice:    item.SettingPrice,
			ItemTotal:       item.ItemTotal,
			Quantity:        item.Quantity,
			ItemDescription: item.ItemDescription,
		})
	}
	order := *o
	order.Items = nil
	return orderDetailView{Order: order, Items: items}
}

type interactionView struct {
	models.UserInteraction
	InteractionData json.RawMessage `json:"interaction_data"`
}

func newInteractionView(i *models.UserInteraction) interactionView {
	data := json.RawMessage("null")
	if len(i.InteractionData) > 0 {
		data = json.RawMessage(i.InteractionData)
	}
	return interactionView{UserInteraction: *i, InteractionData: data}
}

type rangeView struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type diamondStatisticsView struct {
	TotalCount int64                   `json:"total_count"`
	CaratRange rangeView               `json:"carat_range"`
	PriceRange rangeView               `json:"price_range"`
	Shapes     []repository.ShapeCount `json:"shapes"`
	Cuts       []repository.CutCount   `json:"cuts"`
}

func newDiamondStatisticsView(stats *repository.DiamondStatistics) diamondStatisticsView {
	shapes := stats.Shapes
	if shapes == nil {
		shapes = []repository.ShapeCount{}
	}
	cuts := stats.Cuts
	if cuts == nil {
		cuts = []repository.CutCount{}
	}
	return diamondStatisticsView{
		TotalCount: stats.TotalCount,
		CaratRange: rangeView{Min: fixed(stats.MinCarat, 2), Max: fixed(stats.MaxCarat, 2)},
		PriceRange: rangeView{Min: stats.MinPrice.String(), Max: stats.MaxPrice.String()},
		Shapes:     shapes,
		Cuts:       cuts,
	}
}

type productReviewsView struct {
	Reviews       []reviewView `json:"reviews"`
	AverageRating float64      `json:"average_rating"`
	TotalReviews  int64        `json:"total_reviews"`
}

func newProductReviewsView(result *service.ProductReviews) productReviewsView {
	reviews := make([]reviewView, 0, len(result.Reviews))
	for i := range result.Reviews {
		reviews = append(reviews, newReviewView(&result.Reviews[i]))
	}
	average, _ := result.AverageRating.Round(1).Float64()
	return productReviewsView{
		Reviews:       reviews,
		AverageRating: average,
		TotalReviews:  result.TotalReviews,
	}
}

type analyticsSummaryView struct {
	TotalInteractions int64                             `json:"total_interactions"`
	ByType            []repository.InteractionTypeCount `json:"by_type"`
	ByDevice          []repository.DeviceTypeCount      `json:"by_device"`
	UniqueSessions    int64                             `json:"unique_sessions"`
}

func newAnalyticsSummaryView(summary *service.AnalyticsSummary) analyticsSummaryView {
	byType := summary.ByType
	if byType == nil {
		byType = []repository.InteractionTypeCount{}
	}
	byDevice := summary.ByDevice
	if byDevice == nil {
		byDevice = []repository.DeviceTypeCount{}
	}
	return analyticsSummaryView{
		TotalInteractions: summary.TotalInteractions,
		ByType:            byType,
		ByDevice:          byDevice,
		UniqueSessions:    summary.UniqueSessions,
	}
}
