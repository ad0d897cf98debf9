package service

import (
	"errors"
	"testing"
)

func TestFavoriteTargets(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewFavoriteService(env.favorites, env.users, env.diamonds, env.settings, env.configs)
	diamond := env.createDiamond(t, "LD-FAV-1", 1800)
	setting := env.createSetting(t, "ST-FAV-1", 700)

	if _, err := svc.Create(FavoriteInput{UserNotes: strPtr("nothing")}); !errors.Is(err, ErrInvalidFavorite) {
		t.Fatalf("favorite without target want ErrInvalidFavorite got %v", err)
	}
	if _, err := svc.Create(FavoriteInput{DiamondID: &diamond.ID, SettingID: &setting.ID}); !errors.Is(err, ErrFavoriteTargetConflict) {
		t.Fatalf("favorite with two targets want ErrFavoriteTargetConflict got %v", err)
	}
	if _, err := svc.Create(FavoriteInput{SettingID: uintPtr(setting.ID + 40)}); !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("favorite with missing setting want ErrReferenceNotFound got %v", err)
	}

	favorite, err := svc.Create(FavoriteInput{DiamondID: &diamond.ID, UserNotes: strPtr(" love it ")})
	if err != nil {
		t.Fatalf("create favorite failed: %v", err)
	}
	if favorite.Diamond == nil || favorite.UserNotes != "love it" {
		t.Fatalf("favorite should embed diamond and trim notes: %+v", favorite)
	}

	updated, err := svc.Update(favorite.ID, FavoriteInput{SettingID: &setting.ID})
	if err != nil {
		t.Fatalf("retarget favorite failed: %v", err)
	}
	if updated.DiamondID != nil || updated.SettingID == nil || updated.Setting == nil {
		t.Fatalf("retarget should replace diamond with setting: %+v", updated)
	}
}
