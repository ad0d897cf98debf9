package repository

import (
	"strings"

	"github.com/luxe-next/internal/models"

	"gorm.io/gorm"
)

var userOrderFields = map[string]string{
	"created_at": "created_at",
	"email":      "email",
}

// UserRepository 用户数据访问接口
type UserRepository interface {
	List(filter UserListFilter) ([]models.User, int64, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) error
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// List 用户列表
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	query = applySearch(query, filter.Search, "email", "first_name", "last_name")

	var users []models.User
	orderBy := buildOrderClause(filter.Ordering, userOrderFields, "created_at DESC", "user_id")
	total, err := countAndFind(query, orderBy, filter.Page, filter.PageSize, &users)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// GetByID 根据 ID 获取用户
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	found, err := findOne(r.db.Where("user_id = ?", id), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetByEmail 根据邮箱获取用户（不区分大小写）
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	normalized := strings.ToLower(strings.TrimSpace(email))
	found, err := findOne(r.db.Where("LOWER(email) = ?", normalized), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete 删除用户（关联数据保留悬空引用）
func (r *GormUserRepository) Delete(id uint) error {
	return r.db.Where("user_id = ?", id).Delete(&models.User{}).Error
}
