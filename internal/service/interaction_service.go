package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"

	"gorm.io/datatypes"
)

// InteractionService 用户行为埋点服务
type InteractionService struct {
	repo repository.InteractionRepository
	refs referenceChecker
}

// NewInteractionService 创建用户行为服务
func NewInteractionService(
	repo repository.InteractionRepository,
	users repository.UserRepository,
	diamonds repository.DiamondRepository,
	settings repository.SettingRepository,
	configs repository.ConfigurationRepository,
) *InteractionService {
	return &InteractionService{
		repo: repo,
		refs: referenceChecker{users: users, diamonds: diamonds, settings: settings, configs: configs},
	}
}

// InteractionInput 记录用户行为输入
type InteractionInput struct {
	UserID          *uint
	SessionID       *string `validate:"omitempty,max=100"`
	InteractionType *string `validate:"omitempty,max=50"`
	DiamondID       *uint
	SettingID       *uint
	ConfigID        *uint
	InteractionData json.RawMessage
	PageURL         *string `validate:"omitempty,max=500"`
	DeviceType      *string `validate:"omitempty,max=50"`
	Browser         *string `validate:"omitempty,max=50"`
}

// AnalyticsSummary 行为汇总
type AnalyticsSummary = repository.InteractionSummary

// List 用户行为列表
func (s *InteractionService) List(filter repository.InteractionListFilter) ([]models.UserInteraction, int64, error) {
	return s.repo.List(filter)
}

// GetByID 获取用户行为
func (s *InteractionService) GetByID(id uint) (*models.UserInteraction, error) {
	interaction, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, ErrNotFound
	}
	return interaction, nil
}

// Create 记录用户行为，目标最多一个
func (s *InteractionService) Create(input InteractionInput) (*models.UserInteraction, error) {
	if input.InteractionType == nil || strings.TrimSpace(*input.InteractionType) == "" {
		return nil, fmt.Errorf("%w: interaction_type is required", ErrInvalidInteraction)
	}
	interaction := &models.UserInteraction{}
	if err := s.apply(interaction, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

// Update 部分更新用户行为
func (s *InteractionService) Update(id uint, input InteractionInput) (*models.UserInteraction, error) {
	interaction, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.InteractionType != nil && strings.TrimSpace(*input.InteractionType) == "" {
		return nil, fmt.Errorf("%w: interaction_type cannot be blank", ErrInvalidInteraction)
	}
	if err := s.apply(interaction, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

// Delete 删除用户行为
func (s *InteractionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// Summary 汇总时间范围内的行为
func (s *InteractionService) Summary(from, to *time.Time) (*AnalyticsSummary, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: start_date is after end_date", ErrInvalidInteraction)
	}
	return s.repo.Summary(from, to)
}

func (s *InteractionService) apply(interaction *models.UserInteraction, input InteractionInput) error {
	for _, field := range []**string{&input.SessionID, &input.InteractionType, &input.PageURL, &input.DeviceType, &input.Browser} {
		*field = trimPtr(*field)
	}
	if err := validateStruct(ErrInvalidInteraction, input); err != nil {
		return err
	}
	targets := countSet(input.DiamondID, input.SettingID, input.ConfigID)
	if targets > 1 {
		return ErrInteractionTargetConflict
	}
	if len(input.InteractionData) > 0 && !json.Valid(input.InteractionData) {
		return fmt.Errorf("%w: interaction_data must be valid JSON", ErrInvalidInteraction)
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
		interaction.UserID = input.UserID
	}
	if targets == 1 {
		interaction.DiamondID = input.DiamondID
		interaction.SettingID = input.SettingID
		interaction.ConfigID = input.ConfigID
	}
	if len(input.InteractionData) > 0 {
		interaction.InteractionData = datatypes.JSON(input.InteractionData)
	}
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&interaction.SessionID, input.SessionID)
	setString(&interaction.InteractionType, input.InteractionType)
	setString(&interaction.PageURL, input.PageURL)
	setString(&interaction.DeviceType, input.DeviceType)
	setString(&interaction.Browser, input.Browser)
	return nil
}
