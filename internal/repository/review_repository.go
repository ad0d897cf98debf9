package repository

import (
	"github.com/luxe-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var reviewOrderFields = map[string]string{
	"rating":        "rating",
	"helpful_count": "helpful_count",
	"created_at":    "created_at",
}

// ReviewRepository 评价数据访问接口
type ReviewRepository interface {
	List(filter ReviewListFilter) ([]models.Review, int64, error)
	GetApprovedByID(id uint) (*models.Review, error)
	GetByID(id uint) (*models.Review, error)
	ListProductReviews(filter ProductReviewFilter) ([]models.Review, error)
	ProductSummary(filter ProductReviewFilter) (*ReviewAggregate, error)
	IncrementHelpful(id uint) (int, bool, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id uint) error
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func approvedReviews(query *gorm.DB) *gorm.DB {
	return query.Where("is_approved = ?", true)
}

func applyProductReviewFilter(query *gorm.DB, filter ProductReviewFilter) *gorm.DB {
	if filter.DiamondID != nil {
		query = query.Where("diamond_id = ?", *filter.DiamondID)
	}
	if filter.SettingID != nil {
		query = query.Where("setting_id = ?", *filter.SettingID)
	}
	return query
}

// List 已审核评价列表
func (r *GormReviewRepository) List(filter ReviewListFilter) ([]models.Review, int64, error) {
	query := approvedReviews(r.db.Model(&models.Review{}))
	if filter.DiamondID != nil {
		query = query.Where("diamond_id = ?", *filter.DiamondID)
	}
	if filter.SettingID != nil {
		query = query.Where("setting_id = ?", *filter.SettingID)
	}
	if filter.ConfigID != nil {
		query = query.Where("config_id = ?", *filter.ConfigID)
	}
	if filter.Rating != nil {
		query = query.Where("rating = ?", *filter.Rating)
	}

	var reviews []models.Review
	orderBy := buildOrderClause(filter.Ordering, reviewOrderFields, "created_at DESC", "review_id")
	total, err := countAndFind(query.Preload("User"), orderBy, filter.Page, filter.PageSize, &reviews)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetApprovedByID 获取已审核评价
func (r *GormReviewRepository) GetApprovedByID(id uint) (*models.Review, error) {
	var review models.Review
	query := approvedReviews(r.db.Preload("User").Where("review_id = ?", id))
	found, err := findOne(query, &review)
	if err != nil || !found {
		return nil, err
	}
	return &review, nil
}

// GetByID 获取评价（含未审核，仅用于修改与删除）
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	found, err := findOne(r.db.Preload("User").Where("review_id = ?", id), &review)
	if err != nil || !found {
		return nil, err
	}
	return &review, nil
}

// ListProductReviews 商品下的已审核评价
func (r *GormReviewRepository) ListProductReviews(filter ProductReviewFilter) ([]models.Review, error) {
	var reviews []models.Review
	query := applyProductReviewFilter(approvedReviews(r.db.Model(&models.Review{})), filter)
	if err := query.Preload("User").Order("created_at DESC, review_id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ProductSummary 商品评价平均分与数量
func (r *GormReviewRepository) ProductSummary(filter ProductReviewFilter) (*ReviewAggregate, error) {
	var row struct {
		Average decimal.Decimal
		Total   int64
	}
	query := applyProductReviewFilter(approvedReviews(r.db.Model(&models.Review{})), filter)
	if err := query.Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").Scan(&row).Error; err != nil {
		return nil, err
	}
	return &ReviewAggregate{
		AverageRating: row.Average.Round(1),
		TotalReviews:  row.Total,
	}, nil
}

// IncrementHelpful 原子递增已审核评价的有用数，并在同一事务内读回新值。
// 评价不存在或未审核时返回 false。
func (r *GormReviewRepository) IncrementHelpful(id uint) (int, bool, error) {
	var helpful int
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Review{}).
			Where("review_id = ? AND is_approved = ?", id, true).
			UpdateColumn("helpful_count", gorm.Expr("COALESCE(helpful_count, 0) + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		var row struct {
			HelpfulCount int
		}
		if err := tx.Model(&models.Review{}).
			Select("helpful_count").
			Where("review_id = ?", id).
			Take(&row).Error; err != nil {
			return err
		}
		helpful = row.HelpfulCount
		found = true
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return helpful, found, nil
}

// Create 创建评价
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Omit(clause.Associations).Create(review).Error
}

// Update 更新评价，helpful_count 只能通过 IncrementHelpful 修改
func (r *GormReviewRepository) Update(review *models.Review) error {
	return r.db.Omit("helpful_count", clause.Associations).Save(review).Error
}

// Delete 删除评价
func (r *GormReviewRepository) Delete(id uint) error {
	return r.db.Where("review_id = ?", id).Delete(&models.Review{}).Error
}
