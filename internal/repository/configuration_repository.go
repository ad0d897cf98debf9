package repository

import (
	"github.com/luxe-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var configurationOrderFields = map[string]string{
	"total_price": "total_price",
	"created_at":  "created_at",
}

// ConfigurationRepository 定制方案数据访问接口
type ConfigurationRepository interface {
	List(filter ConfigurationListFilter) ([]models.RingConfiguration, int64, error)
	GetByID(id uint) (*models.RingConfiguration, error)
	Create(config *models.RingConfiguration) error
	Update(config *models.RingConfiguration) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormConfigurationRepository
}

// GormConfigurationRepository GORM 实现
type GormConfigurationRepository struct {
	db *gorm.DB
}

// NewConfigurationRepository 创建定制方案仓库
func NewConfigurationRepository(db *gorm.DB) *GormConfigurationRepository {
	return &GormConfigurationRepository{db: db}
}

// WithTx 绑定事务
func (r *GormConfigurationRepository) WithTx(tx *gorm.DB) *GormConfigurationRepository {
	if tx == nil {
		return r
	}
	return &GormConfigurationRepository{db: tx}
}

// List 定制方案列表（预加载钻石与戒托，引用已删除时为空）
func (r *GormConfigurationRepository) List(filter ConfigurationListFilter) ([]models.RingConfiguration, int64, error) {
	query := r.db.Model(&models.RingConfiguration{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.IsSaved != nil {
		query = query.Where("is_saved = ?", *filter.IsSaved)
	}
	if filter.IsOrdered != nil {
		query = query.Where("is_ordered = ?", *filter.IsOrdered)
	}

	var configs []models.RingConfiguration
	orderBy := buildOrderClause(filter.Ordering, configurationOrderFields, "created_at DESC", "config_id")
	total, err := countAndFind(query.Preload("Diamond").Preload("Setting"), orderBy, filter.Page, filter.PageSize, &configs)
	if err != nil {
		return nil, 0, err
	}
	return configs, total, nil
}

// GetByID 获取定制方案
func (r *GormConfigurationRepository) GetByID(id uint) (*models.RingConfiguration, error) {
	var config models.RingConfiguration
	query := r.db.Preload("Diamond").Preload("Setting").Where("config_id = ?", id)
	found, err := findOne(query, &config)
	if err != nil || !found {
		return nil, err
	}
	return &config, nil
}

// Create 创建定制方案
func (r *GormConfigurationRepository) Create(config *models.RingConfiguration) error {
	return r.db.Omit(clause.Associations).Create(config).Error
}

// Update 更新定制方案
func (r *GormConfigurationRepository) Update(config *models.RingConfiguration) error {
	return r.db.Omit(clause.Associations).Save(config).Error
}

// Delete 删除定制方案
func (r *GormConfigurationRepository) Delete(id uint) error {
	return r.db.Where("config_id = ?", id).Delete(&models.RingConfiguration{}).Error
}
