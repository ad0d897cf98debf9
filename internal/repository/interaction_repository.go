package repository

import (
	"time"

	"github.com/luxe-next/internal/models"

	"gorm.io/gorm"
)

var interactionOrderFields = map[string]string{
	"created_at": "created_at",
}

// InteractionRepository 用户行为数据访问接口
type InteractionRepository interface {
	List(filter InteractionListFilter) ([]models.UserInteraction, int64, error)
	GetByID(id uint) (*models.UserInteraction, error)
	Summary(from, to *time.Time) (*InteractionSummary, error)
	Create(interaction *models.UserInteraction) error
	Update(interaction *models.UserInteraction) error
	Delete(id uint) error
}

// GormInteractionRepository GORM 实现
type GormInteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository 创建用户行为仓库
func NewInteractionRepository(db *gorm.DB) *GormInteractionRepository {
	return &GormInteractionRepository{db: db}
}

func applyCreatedRange(query *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where("created_at >= ?", from.UTC())
	}
	if to != nil {
		query = query.Where("created_at <= ?", to.UTC())
	}
	return query
}

// List 用户行为列表
func (r *GormInteractionRepository) List(filter InteractionListFilter) ([]models.UserInteraction, int64, error) {
	query := r.db.Model(&models.UserInteraction{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.InteractionType != "" {
		query = query.Where("interaction_type = ?", filter.InteractionType)
	}
	if filter.DeviceType != "" {
		query = query.Where("device_type = ?", filter.DeviceType)
	}
	query = applyCreatedRange(query, filter.CreatedFrom, filter.CreatedTo)

	var interactions []models.UserInteraction
	orderBy := buildOrderClause(filter.Ordering, interactionOrderFields, "created_at DESC", "interaction_id")
	total, err := countAndFind(query, orderBy, filter.Page, filter.PageSize, &interactions)
	if err != nil {
		return nil, 0, err
	}
	return interactions, total, nil
}

// GetByID 获取用户行为
func (r *GormInteractionRepository) GetByID(id uint) (*models.UserInteraction, error) {
	var interaction models.UserInteraction
	found, err := findOne(r.db.Where("interaction_id = ?", id), &interaction)
	if err != nil || !found {
		return nil, err
	}
	return &interaction, nil
}

// Summary 汇总时间范围内的行为数据
func (r *GormInteractionRepository) Summary(from, to *time.Time) (*InteractionSummary, error) {
	summary := &InteractionSummary{
		ByType:   make([]InteractionTypeCount, 0),
		ByDevice: make([]DeviceTypeCount, 0),
	}
	scoped := func() *gorm.DB {
		return applyCreatedRange(r.db.Model(&models.UserInteraction{}), from, to)
	}

	if err := scoped().Count(&summary.TotalInteractions).Error; err != nil {
		return nil, err
	}
	if err := scoped().
		Select("interaction_type, COUNT(*) AS count").
		Group("interaction_type").
		Order("count DESC, interaction_type ASC").
		Scan(&summary.ByType).Error; err != nil {
		return nil, err
	}
	if err := scoped().
		Select("device_type, COUNT(*) AS count").
		Group("device_type").
		Order("count DESC, device_type ASC").
		Scan(&summary.ByDevice).Error; err != nil {
		return nil, err
	}
	if err := scoped().
		Where("session_id IS NOT NULL AND session_id <> ?", "").
		Distinct("session_id").
		Count(&summary.UniqueSessions).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

// Create 记录用户行为
func (r *GormInteractionRepository) Create(interaction *models.UserInteraction) error {
	return r.db.Create(interaction).Error
}

// Update 更新用户行为
func (r *GormInteractionRepository) Update(interaction *models.UserInteraction) error {
	return r.db.Save(interaction).Error
}

// Delete 删除用户行为
func (r *GormInteractionRepository) Delete(id uint) error {
	return r.db.Where("interaction_id = ?", id).Delete(&models.UserInteraction{}).Error
}
