package service

import (
	"fmt"

	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"
)

// referenceChecker 写入前校验外键引用存在（不要求在售）
type referenceChecker struct {
	users    repository.UserRepository
	diamonds repository.DiamondRepository
	settings repository.SettingRepository
	configs  repository.ConfigurationRepository
}

type references struct {
	UserID    *uint
	DiamondID *uint
	SettingID *uint
	ConfigID  *uint
}

func (c referenceChecker) check(refs references) error {
	if refs.UserID != nil && c.users != nil {
		user, err := c.users.GetByID(*refs.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: user %d", ErrReferenceNotFound, *refs.UserID)
		}
	}
	if refs.DiamondID != nil && c.diamonds != nil {
		if _, err := c.diamond(*refs.DiamondID); err != nil {
			return err
		}
	}
	if refs.SettingID != nil && c.settings != nil {
		if _, err := c.setting(*refs.SettingID); err != nil {
			return err
		}
	}
	if refs.ConfigID != nil && c.configs != nil {
		config, err := c.configs.GetByID(*refs.ConfigID)
		if err != nil {
			return err
		}
		if config == nil {
			return fmt.Errorf("%w: configuration %d", ErrReferenceNotFound, *refs.ConfigID)
		}
	}
	return nil
}

func (c referenceChecker) diamond(id uint) (*models.Diamond, error) {
	diamond, err := c.diamonds.GetByID(id)
	if err != nil {
		return nil, err
	}
	if diamond == nil {
		return nil, fmt.Errorf("%w: diamond %d", ErrReferenceNotFound, id)
	}
	return diamond, nil
}

func (c referenceChecker) setting(id uint) (*models.Setting, error) {
	setting, err := c.settings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, fmt.Errorf("%w: setting %d", ErrReferenceNotFound, id)
	}
	return setting, nil
}
