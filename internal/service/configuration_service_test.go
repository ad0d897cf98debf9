package service

import (
	"errors"
	"testing"
)

func TestConfigurationCreateSnapshotsPrices(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewConfigurationService(env.configs, env.users, env.diamonds, env.settings)
	diamond := env.createDiamond(t, "LD-CFG-1", 4200)
	setting := env.createSetting(t, "ST-CFG-1", 1350.5)

	config, err := svc.Create(ConfigurationInput{
		DiamondID:  &diamond.ID,
		SettingID:  &setting.ID,
		RingSize:   strPtr(" 6.5 "),
		ConfigName: strPtr("Engagement"),
		IsSaved:    boolPtr(true),
	})
	if err != nil {
		t.Fatalf("create configuration failed: %v", err)
	}
	if config.DiamondPrice == nil || config.DiamondPrice.String() != "4200.00" {
		t.Fatalf("diamond price should snapshot base price, got %v", config.DiamondPrice)
	}
	if config.SettingPrice == nil || config.SettingPrice.String() != "1350.50" {
		t.Fatalf("setting price should snapshot base price, got %v", config.SettingPrice)
	}
	if config.TotalPrice.String() != "5550.50" {
		t.Fatalf("total price want 5550.50 got %s", config.TotalPrice)
	}
	if config.RingSize != "6.5" || config.Diamond == nil || config.Setting == nil {
		t.Fatalf("configuration round trip mismatch: %+v", config)
	}

	fetched, err := svc.GetByID(config.ID)
	if err != nil {
		t.Fatalf("get configuration failed: %v", err)
	}
	if fetched.ConfigName != "Engagement" || !fetched.IsSaved || fetched.IsOrdered {
		t.Fatalf("fetched configuration mismatch: %+v", fetched)
	}
}

func TestConfigurationExplicitTotalAndReferences(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewConfigurationService(env.configs, env.users, env.diamonds, env.settings)
	diamond := env.createDiamond(t, "LD-CFG-2", 3000)

	config, err := svc.Create(ConfigurationInput{DiamondID: &diamond.ID, TotalPrice: moneyPtr(2999)})
	if err != nil {
		t.Fatalf("create configuration failed: %v", err)
	}
	if config.TotalPrice.String() != "2999.00" {
		t.Fatalf("explicit total should win, got %s", config.TotalPrice)
	}

	if _, err := svc.Create(ConfigurationInput{DiamondID: uintPtr(diamond.ID + 10)}); !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("missing diamond want ErrReferenceNotFound got %v", err)
	}
	if _, err := svc.Create(ConfigurationInput{ConfigName: strPtr("empty")}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("configuration without price want ErrInvalidConfiguration got %v", err)
	}

	updated, err := svc.Update(config.ID, ConfigurationInput{IsOrdered: boolPtr(true)})
	if err != nil {
		t.Fatalf("update configuration failed: %v", err)
	}
	if !updated.IsOrdered || updated.TotalPrice.String() != "2999.00" {
		t.Fatalf("partial update should keep total, got %+v", updated)
	}

	if err := svc.Delete(config.ID); err != nil {
		t.Fatalf("delete configuration failed: %v", err)
	}
	if _, err := svc.GetByID(config.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted configuration want ErrNotFound got %v", err)
	}
}
