package service

import (
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"
)

// FavoriteService 收藏服务
type FavoriteService struct {
	repo repository.FavoriteRepository
	refs referenceChecker
}

// NewFavoriteService 创建收藏服务
func NewFavoriteService(
	repo repository.FavoriteRepository,
	users repository.UserRepository,
	diamonds repository.DiamondRepository,
	settings repository.SettingRepository,
	configs repository.ConfigurationRepository,
) *FavoriteService {
	return &FavoriteService{
		repo: repo,
		refs: referenceChecker{users: users, diamonds: diamonds, settings: settings, configs: configs},
	}
}

// FavoriteInput 创建/更新收藏输入
type FavoriteInput struct {
	UserID    *uint
	DiamondID *uint
	SettingID *uint
	ConfigID  *uint
	UserNotes *string
}

// List 收藏列表
func (s *FavoriteService) List(filter repository.FavoriteListFilter) ([]models.Favorite, int64, error) {
	return s.repo.List(filter)
}

// ListByUser 指定用户的全部收藏
func (s *FavoriteService) ListByUser(userID uint) ([]models.Favorite, error) {
	rows, _, err := s.repo.List(repository.FavoriteListFilter{UserID: &userID})
	return rows, err
}

// GetByID 获取收藏
func (s *FavoriteService) GetByID(id uint) (*models.Favorite, error) {
	favorite, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return nil, ErrNotFound
	}
	return favorite, nil
}

// Create 创建收藏，目标必须且只能是钻石/戒托/定制方案之一
func (s *FavoriteService) Create(input FavoriteInput) (*models.Favorite, error) {
	favorite := &models.Favorite{}
	if err := s.apply(favorite, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(favorite); err != nil {
		return nil, err
	}
	return s.GetByID(favorite.ID)
}

// Update 部分更新收藏，传入任一目标时替换原目标
func (s *FavoriteService) Update(id uint, input FavoriteInput) (*models.Favorite, error) {
	favorite, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(favorite, input); err != nil {
		return nil, err
	}
	favorite.Diamond, favorite.Setting, favorite.Config = nil, nil, nil
	if err := s.repo.Update(favorite); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete 删除收藏
func (s *FavoriteService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *FavoriteService) apply(favorite *models.Favorite, input FavoriteInput) error {
	targets := countSet(input.DiamondID, input.SettingID, input.ConfigID)
	if targets > 1 {
		return ErrFavoriteTargetConflict
	}
	if targets == 0 && favorite.ID == 0 {
		return ErrInvalidFavorite
	}
	if err := s.refs.check(references{
		UserID:    input.UserID,
		DiamondID: input.DiamondID,
		SettingID: input.SettingID,
		ConfigID:  input.ConfigID,
	}); err != nil {
		return err
	}

	if input.UserID != nil {
		favorite.UserID = input.UserID
	}
	if targets == 1 {
		favorite.DiamondID = input.DiamondID
		favorite.SettingID = input.SettingID
		favorite.ConfigID = input.ConfigID
	}
	if notes := trimPtr(input.UserNotes); notes != nil {
		favorite.UserNotes = *notes
	}
	return nil
}
