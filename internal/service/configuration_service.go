package service

import (
	"fmt"

	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"
)

// ConfigurationService 戒指定制方案服务
type ConfigurationService struct {
	repo repository.ConfigurationRepository
	refs referenceChecker
}

// NewConfigurationService 创建定制方案服务
func NewConfigurationService(
	repo repository.ConfigurationRepository,
	users repository.UserRepository,
	diamonds repository.DiamondRepository,
	settings repository.SettingRepository,
) *ConfigurationService {
	return &ConfigurationService{
		repo: repo,
		refs: referenceChecker{users: users, diamonds: diamonds, settings: settings},
	}
}

// ConfigurationInput 创建/更新定制方案输入，nil 表示不修改
type ConfigurationInput struct {
	UserID       *uint
	DiamondID    *uint
	SettingID    *uint
	RingSize     *string `validate:"omitempty,max=10"`
	ConfigName   *string `validate:"omitempty,max=200"`
	TotalPrice   *models.Money
	DiamondPrice *models.Money
	SettingPrice *models.Money
	IsSaved      *bool
	IsOrdered    *bool
}

// List 定制方案列表
func (s *ConfigurationService) List(filter repository.ConfigurationListFilter) ([]models.RingConfiguration, int64, error) {
	return s.repo.List(filter)
}

// ListByUser 指定用户的全部定制方案
func (s *ConfigurationService) ListByUser(userID uint) ([]models.RingConfiguration, error) {
	rows, _, err := s.repo.List(repository.ConfigurationListFilter{UserID: &userID})
	return rows, err
}

// GetByID 获取定制方案
func (s *ConfigurationService) GetByID(id uint) (*models.RingConfiguration, error) {
	config, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrNotFound
	}
	return config, nil
}

// Create 创建定制方案，缺省价格取钻石/戒托当前价格
func (s *ConfigurationService) Create(input ConfigurationInput) (*models.RingConfiguration, error) {
	config := &models.RingConfiguration{}
	if err := s.apply(config, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(config); err != nil {
		return nil, err
	}
	return s.GetByID(config.ID)
}

// Update 部分更新定制方案
func (s *ConfigurationService) Update(id uint, input ConfigurationInput) (*models.RingConfiguration, error) {
	config, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(config, input); err != nil {
		return nil, err
	}
	config.Diamond, config.Setting = nil, nil
	if err := s.repo.Update(config); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete 删除定制方案
func (s *ConfigurationService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *ConfigurationService) apply(config *models.RingConfiguration, input ConfigurationInput) error {
	input.RingSize = trimPtr(input.RingSize)
	input.ConfigName = trimPtr(input.ConfigName)
	if err := validateStruct(ErrInvalidConfiguration, input); err != nil {
		return err
	}
	for _, amount := range []*models.Money{input.TotalPrice, input.DiamondPrice, input.SettingPrice} {
		if amount != nil && amount.IsNegative() {
			return fmt.Errorf("%w: prices must not be negative", ErrInvalidConfiguration)
		}
	}
	if err := s.refs.check(references{UserID: input.UserID}); err != nil {
		return err
	}

	if input.UserID != nil {
		config.UserID = input.UserID
	}
	if input.DiamondID != nil {
		diamond, err := s.refs.diamond(*input.DiamondID)
		if err != nil {
			return err
		}
		config.DiamondID = input.DiamondID
		if input.DiamondPrice == nil {
			snapshot := diamond.BasePrice
			config.DiamondPrice = &snapshot
		}
	}
	if input.SettingID != nil {
		setting, err := s.refs.setting(*input.SettingID)
		if err != nil {
			return err
		}
		config.SettingID = input.SettingID
		if input.SettingPrice == nil {
			snapshot := setting.BasePrice
			config.SettingPrice = &snapshot
		}
	}
	if input.DiamondPrice != nil {
		config.DiamondPrice = input.DiamondPrice
	}
	if input.SettingPrice != nil {
		config.SettingPrice = input.SettingPrice
	}
	if input.RingSize != nil {
		config.RingSize = *input.RingSize
	}
	if input.ConfigName != nil {
		config.ConfigName = *input.ConfigName
	}
	if input.IsSaved != nil {
		config.IsSaved = *input.IsSaved
	}
	if input.IsOrdered != nil {
		config.IsOrdered = *input.IsOrdered
	}

	switch {
	case input.TotalPrice != nil:
		config.TotalPrice = *input.TotalPrice
	case config.DiamondPrice != nil || config.SettingPrice != nil:
		if input.DiamondID != nil || input.SettingID != nil || input.DiamondPrice != nil || input.SettingPrice != nil || config.ID == 0 {
			config.TotalPrice = sumPrices(config.DiamondPrice, config.SettingPrice)
		}
	case config.ID == 0:
		return fmt.Errorf("%w: total_price is required without diamond or setting", ErrInvalidConfiguration)
	}
	return nil
}

func sumPrices(prices ...*models.Money) models.Money {
	total := models.Money{}
	for _, price := range prices {
		if price != nil {
			total = total.Add(*price)
		}
	}
	return total
}
