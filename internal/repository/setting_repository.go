package repository

import (
	"strings"

	"github.com/luxe-next/internal/models"

	"gorm.io/gorm"
)

var settingOrderFields = map[string]string{
	"base_price":       "base_price",
	"popularity_score": "popularity_score",
	"created_at":       "created_at",
}

// SettingRepository 戒托数据访问接口
type SettingRepository interface {
	List(filter SettingListFilter) ([]models.Setting, int64, error)
	GetAvailableByID(id uint) (*models.Setting, error)
	GetByID(id uint) (*models.Setting, error)
	ExistsBySKU(sku string) (bool, error)
	Create(setting *models.Setting) error
	CreateInBatches(settings []models.Setting, batchSize int) error
	WithTx(tx *gorm.DB) *GormSettingRepository
}

// GormSettingRepository GORM 实现
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository 创建戒托仓库
func NewSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSettingRepository) WithTx(tx *gorm.DB) *GormSettingRepository {
	if tx == nil {
		return r
	}
	return &GormSettingRepository{db: tx}
}

func applySettingFilters(query *gorm.DB, filter SettingListFilter) *gorm.DB {
	query = query.Where("is_available = ?", true)
	if v := strings.TrimSpace(filter.StyleType); v != "" {
		query = query.Where("style_type = ?", v)
	}
	if v := strings.TrimSpace(filter.MetalType); v != "" {
		query = query.Where("metal_type = ?", v)
	}
	if v := strings.TrimSpace(filter.CompatibleShape); v != "" {
		condition, _ := buildLikeCondition(query, []string{"compatible_shapes"})
		query = query.Where(condition, "%"+v+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("base_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("base_price <= ?", *filter.MaxPrice)
	}
	return applySearch(query, filter.Search, "name", "sku")
}

// List 在售戒托列表
func (r *GormSettingRepository) List(filter SettingListFilter) ([]models.Setting, int64, error) {
	query := applySettingFilters(r.db.Model(&models.Setting{}), filter)

	var settings []models.Setting
	orderBy := buildOrderClause(filter.Ordering, settingOrderFields, "popularity_score DESC", "setting_id")
	total, err := countAndFind(query, orderBy, filter.Page, filter.PageSize, &settings)
	if err != nil {
		return nil, 0, err
	}
	return settings, total, nil
}

// GetAvailableByID 获取在售戒托
func (r *GormSettingRepository) GetAvailableByID(id uint) (*models.Setting, error) {
	var setting models.Setting
	found, err := findOne(r.db.Where("setting_id = ? AND is_available = ?", id, true), &setting)
	if err != nil || !found {
		return nil, err
	}
	return &setting, nil
}

// GetByID 获取戒托（不限制在售状态）
func (r *GormSettingRepository) GetByID(id uint) (*models.Setting, error) {
	var setting models.Setting
	found, err := findOne(r.db.Where("setting_id = ?", id), &setting)
	if err != nil || !found {
		return nil, err
	}
	return &setting, nil
}

// ExistsBySKU 判断 SKU 是否已存在
func (r *GormSettingRepository) ExistsBySKU(sku string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Setting{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建戒托
func (r *GormSettingRepository) Create(setting *models.Setting) error {
	return r.db.Create(setting).Error
}

// CreateInBatches 批量导入戒托
func (r *GormSettingRepository) CreateInBatches(settings []models.Setting, batchSize int) error {
	if len(settings) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return r.db.CreateInBatches(settings, batchSize).Error
}
