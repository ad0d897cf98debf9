package repository

import (
	"github.com/luxe-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var favoriteOrderFields = map[string]string{
	"created_at": "created_at",
}

// FavoriteRepository 收藏数据访问接口
type FavoriteRepository interface {
	List(filter FavoriteListFilter) ([]models.Favorite, int64, error)
	GetByID(id uint) (*models.Favorite, error)
	Create(favorite *models.Favorite) error
	Update(favorite *models.Favorite) error
	Delete(id uint) error
}

// GormFavoriteRepository GORM 实现
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository 创建收藏仓库
func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) withTargets(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Diamond").
		Preload("Setting").
		Preload("Config").
		Preload("Config.Diamond").
		Preload("Config.Setting")
}

// List 收藏列表
func (r *GormFavoriteRepository) List(filter FavoriteListFilter) ([]models.Favorite, int64, error) {
	query := r.db.Model(&models.Favorite{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var favorites []models.Favorite
	orderBy := buildOrderClause(filter.Ordering, favoriteOrderFields, "created_at DESC", "favorite_id")
	total, err := countAndFind(r.withTargets(query), orderBy, filter.Page, filter.PageSize, &favorites)
	if err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}

// GetByID 获取收藏
func (r *GormFavoriteRepository) GetByID(id uint) (*models.Favorite, error) {
	var favorite models.Favorite
	found, err := findOne(r.withTargets(r.db.Where("favorite_id = ?", id)), &favorite)
	if err != nil || !found {
		return nil, err
	}
	return &favorite, nil
}

// Create 创建收藏
func (r *GormFavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Omit(clause.Associations).Create(favorite).Error
}

// Update 更新收藏
func (r *GormFavoriteRepository) Update(favorite *models.Favorite) error {
	return r.db.Omit(clause.Associations).Save(favorite).Error
}

// Delete 删除收藏
func (r *GormFavoriteRepository) Delete(id uint) error {
	return r.db.Where("favorite_id = ?", id).Delete(&models.Favorite{}).Error
}
