package repository

import (
	"time"

	"github.com/luxe-next/internal/models"

	"github.com/shopspring/decimal"
)

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Search   string
	IsActive *bool
	Ordering string
}

// DiamondListFilter 查询钻石列表的过滤条件（仅在售）
type DiamondListFilter struct {
	Page     int
	PageSize int
	Cut      string
	Color    string
	Clarity  string
	Shape    string
	Search   string
	MinCarat *decimal.Decimal
	MaxCarat *decimal.Decimal
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Ordering string
}

// SettingListFilter 查询戒托列表的过滤条件（仅在售）
type SettingListFilter struct {
	Page            int
	PageSize        int
	StyleType       string
	MetalType       string
	CompatibleShape string
	Search          string
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	Ordering        string
}

// ConfigurationListFilter 查询定制方案列表的过滤条件
type ConfigurationListFilter struct {
	Page      int
	PageSize  int
	UserID    *uint
	IsSaved   *bool
	IsOrdered *bool
	Ordering  string
}

// FavoriteListFilter 查询收藏列表的过滤条件
type FavoriteListFilter struct {
	Page     int
	PageSize int
	UserID   *uint
	Ordering string
}

// ReviewListFilter 查询评价列表的过滤条件（仅审核通过）
type ReviewListFilter struct {
	Page      int
	PageSize  int
	DiamondID *uint
	SettingID *uint
	ConfigID  *uint
	Rating    *int
	Ordering  string
}

// ProductReviewFilter 商品评价汇总的过滤条件
type ProductReviewFilter struct {
	DiamondID *uint
	SettingID *uint
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page          int
	PageSize      int
	UserID        *uint
	Status        string
	PaymentStatus string
	Search        string
	Ordering      string
}

// InteractionListFilter 查询用户行为列表的过滤条件
type InteractionListFilter struct {
	Page            int
	PageSize        int
	UserID          *uint
	InteractionType string
	DeviceType      string
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
	Ordering        string
}

// ShapeCount 按形状统计
type ShapeCount struct {
	Shape string `json:"shape"`
	Count int64  `json:"count"`
}

// CutCount 按切工统计
type CutCount struct {
	Cut   string `json:"cut"`
	Count int64  `json:"count"`
}

// DiamondStatistics 钻石统计结果
type DiamondStatistics struct {
	TotalCount int64
	MinCarat   decimal.Decimal
	MaxCarat   decimal.Decimal
	MinPrice   models.Money
	MaxPrice   models.Money
	Shapes     []ShapeCount
	Cuts       []CutCount
}

// ReviewAggregate 评价聚合结果
type ReviewAggregate struct {
	AverageRating decimal.Decimal
	TotalReviews  int64
}

// InteractionTypeCount 按行为类型统计
type InteractionTypeCount struct {
	InteractionType string `json:"interaction_type"`
	Count           int64  `json:"count"`
}

// DeviceTypeCount 按设备类型统计
type DeviceTypeCount struct {
	DeviceType string `json:"device_type"`
	Count      int64  `json:"count"`
}

// InteractionSummary 用户行为汇总
type InteractionSummary struct {
	TotalInteractions int64
	ByType            []InteractionTypeCount
	ByDevice          []DeviceTypeCount
	UniqueSessions    int64
}
