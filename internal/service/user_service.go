package service

import (
	"fmt"
	"strings"

	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService 用户业务服务
type UserService struct {
	repo     repository.UserRepository
	hashCost int
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, hashCost int) *UserService {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, hashCost: hashCost}
}

// UserInput 创建/更新用户输入，nil 表示不修改
type UserInput struct {
	Email     *string `validate:"omitempty,email,max=255"`
	Password  *string `validate:"omitempty,min=8,max=72"`
	FirstName *string `validate:"omitempty,max=100"`
	LastName  *string `validate:"omitempty,max=100"`
	Phone     *string `validate:"omitempty,max=20"`
	IsActive  *bool
}

// List 用户列表
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(filter)
}

// GetByID 获取用户
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Create 创建用户，邮箱与密码必填
func (s *UserService) Create(input UserInput) (*models.User, error) {
	input = normalizeUserInput(input)
	if input.Email == nil || *input.Email == "" || input.Password == nil || *input.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidUser)
	}
	if err := validateStruct(ErrInvalidUser, input); err != nil {
		return nil, err
	}
	if err := s.ensureEmailAvailable(*input.Email, 0); err != nil {
		return nil, err
	}

	user := &models.User{IsActive: true}
	if err := s.apply(user, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update 部分更新用户
func (s *UserService) Update(id uint, input UserInput) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	input = normalizeUserInput(input)
	if input.Email != nil && *input.Email == "" {
		return nil, fmt.Errorf("%w: email cannot be blank", ErrInvalidUser)
	}
	if input.Password != nil && *input.Password == "" {
		return nil, fmt.Errorf("%w: password cannot be blank", ErrInvalidUser)
	}
	if err := validateStruct(ErrInvalidUser, input); err != nil {
		return nil, err
	}
	if input.Email != nil && *input.Email != user.Email {
		if err := s.ensureEmailAvailable(*input.Email, user.ID); err != nil {
			return nil, err
		}
	}
	if err := s.apply(user, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 删除用户
func (s *UserService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// VerifyPassword 校验明文密码
func (s *UserService) VerifyPassword(user *models.User, password string) bool {
	if user == nil || user.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (s *UserService) ensureEmailAvailable(email string, selfID uint) error {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrUserEmailExists
	}
	return nil
}

func (s *UserService) apply(user *models.User, input UserInput) error {
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.hashCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	return nil
}

func normalizeUserInput(input UserInput) UserInput {
	input.Email = trimPtr(input.Email)
	if input.Email != nil {
		lowered := strings.ToLower(*input.Email)
		input.Email = &lowered
	}
	input.FirstName = trimPtr(input.FirstName)
	input.LastName = trimPtr(input.LastName)
	input.Phone = trimPtr(input.Phone)
	return input
}
