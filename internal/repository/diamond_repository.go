package repository

import (
	"strings"

	"github.com/luxe-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var diamondOrderFields = map[string]string{
	"carat":      "carat",
	"base_price": "base_price",
	"created_at": "created_at",
}

// DiamondRepository 钻石数据访问接口
type DiamondRepository interface {
	List(filter DiamondListFilter) ([]models.Diamond, int64, error)
	GetAvailableByID(id uint) (*models.Diamond, error)
	GetByID(id uint) (*models.Diamond, error)
	ExistsBySKU(sku string) (bool, error)
	Statistics(filter DiamondListFilter) (*DiamondStatistics, error)
	Create(diamond *models.Diamond) error
	CreateInBatches(diamonds []models.Diamond, batchSize int) error
	WithTx(tx *gorm.DB) *GormDiamondRepository
}

// GormDiamondRepository GORM 实现
type GormDiamondRepository struct {
	db *gorm.DB
}

// NewDiamondRepository 创建钻石仓库
func NewDiamondRepository(db *gorm.DB) *GormDiamondRepository {
	return &GormDiamondRepository{db: db}
}

// WithTx 绑定事务
func (r *GormDiamondRepository) WithTx(tx *gorm.DB) *GormDiamondRepository {
	if tx == nil {
		return r
	}
	return &GormDiamondRepository{db: tx}
}

// applyDiamondFilters 应用在售条件与筛选条件
func applyDiamondFilters(query *gorm.DB, filter DiamondListFilter) *gorm.DB {
	query = query.Where("is_available = ?", true)
	if v := strings.TrimSpace(filter.Cut); v != "" {
		query = query.Where("cut = ?", v)
	}
	if v := strings.TrimSpace(filter.Color); v != "" {
		query = query.Where("color = ?", v)
	}
	if v := strings.TrimSpace(filter.Clarity); v != "" {
		query = query.Where("clarity = ?", v)
	}
	if v := strings.TrimSpace(filter.Shape); v != "" {
		query = query.Where("shape = ?", v)
	}
	if filter.MinCarat != nil {
		query = query.Where("carat >= ?", *filter.MinCarat)
	}
	if filter.MaxCarat != nil {
		query = query.Where("carat <= ?", *filter.MaxCarat)
	}
	if filter.MinPrice != nil {
		query = query.Where("base_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("base_price <= ?", *filter.MaxPrice)
	}
	return applySearch(query, filter.Search, "sku")
}

// List 在售钻石列表
func (r *GormDiamondRepository) List(filter DiamondListFilter) ([]models.Diamond, int64, error) {
	query := applyDiamondFilters(r.db.Model(&models.Diamond{}), filter)

	var diamonds []models.Diamond
	orderBy := buildOrderClause(filter.Ordering, diamondOrderFields, "created_at DESC", "diamond_id")
	total, err := countAndFind(query, orderBy, filter.Page, filter.PageSize, &diamonds)
	if err != nil {
		return nil, 0, err
	}
	return diamonds, total, nil
}

// GetAvailableByID 获取在售钻石
func (r *GormDiamondRepository) GetAvailableByID(id uint) (*models.Diamond, error) {
	var diamond models.Diamond
	found, err := findOne(r.db.Where("diamond_id = ? AND is_available = ?", id, true), &diamond)
	if err != nil || !found {
		return nil, err
	}
	return &diamond, nil
}

// GetByID 获取钻石（不限制在售状态，用于引用校验）
func (r *GormDiamondRepository) GetByID(id uint) (*models.Diamond, error) {
	var diamond models.Diamond
	found, err := findOne(r.db.Where("diamond_id = ?", id), &diamond)
	if err != nil || !found {
		return nil, err
	}
	return &diamond, nil
}

// ExistsBySKU 判断 SKU 是否已存在
func (r *GormDiamondRepository) ExistsBySKU(sku string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Diamond{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Statistics 统计筛选后的在售钻石
func (r *GormDiamondRepository) Statistics(filter DiamondListFilter) (*DiamondStatistics, error) {
	stats := &DiamondStatistics{
		Shapes: make([]ShapeCount, 0),
		Cuts:   make([]CutCount, 0),
	}

	var ranges struct {
		Total    int64
		MinCarat decimal.Decimal
		MaxCarat decimal.Decimal
		MinPrice decimal.Decimal
		MaxPrice decimal.Decimal
	}
	if err := applyDiamondFilters(r.db.Model(&models.Diamond{}), filter).
		Select("COUNT(*) AS total, " +
			"COALESCE(MIN(carat), 0) AS min_carat, COALESCE(MAX(carat), 0) AS max_carat, " +
			"COALESCE(MIN(base_price), 0) AS min_price, COALESCE(MAX(base_price), 0) AS max_price").
		Scan(&ranges).Error; err != nil {
		return nil, err
	}
	stats.TotalCount = ranges.Total
	stats.MinCarat = ranges.MinCarat
	stats.MaxCarat = ranges.MaxCarat
	stats.MinPrice = models.NewMoneyFromDecimal(ranges.MinPrice)
	stats.MaxPrice = models.NewMoneyFromDecimal(ranges.MaxPrice)

	if err := applyDiamondFilters(r.db.Model(&models.Diamond{}), filter).
		Select("shape, COUNT(*) AS count").
		Group("shape").
		Order("count DESC, shape ASC").
		Scan(&stats.Shapes).Error; err != nil {
		return nil, err
	}
	if err := applyDiamondFilters(r.db.Model(&models.Diamond{}), filter).
		Select("cut, COUNT(*) AS count").
		Group("cut").
		Order("count DESC, cut ASC").
		Scan(&stats.Cuts).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// Create 创建钻石
func (r *GormDiamondRepository) Create(diamond *models.Diamond) error {
	return r.db.Create(diamond).Error
}

// CreateInBatches 批量导入钻石
func (r *GormDiamondRepository) CreateInBatches(diamonds []models.Diamond, batchSize int) error {
	if len(diamonds) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return r.db.CreateInBatches(diamonds, batchSize).Error
}
