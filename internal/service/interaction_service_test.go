package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestInteractionCreateValidation(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewInteractionService(env.interactions, env.users, env.diamonds, env.settings, env.configs)
	diamond := env.createDiamond(t, "LD-INT-1", 1200)
	setting := env.createSetting(t, "ST-INT-1", 800)

	if _, err := svc.Create(InteractionInput{SessionID: strPtr("s1")}); !errors.Is(err, ErrInvalidInteraction) {
		t.Fatalf("missing type want ErrInvalidInteraction got %v", err)
	}
	if _, err := svc.Create(InteractionInput{
		InteractionType: strPtr("view"),
		DiamondID:       &diamond.ID,
		SettingID:       &setting.ID,
	}); !errors.Is(err, ErrInteractionTargetConflict) {
		t.Fatalf("two targets want ErrInteractionTargetConflict got %v", err)
	}
	if _, err := svc.Create(InteractionInput{
		InteractionType: strPtr("view"),
		InteractionData: json.RawMessage(`{"broken":`),
	}); !errors.Is(err, ErrInvalidInteraction) {
		t.Fatalf("broken payload want ErrInvalidInteraction got %v", err)
	}

	created, err := svc.Create(InteractionInput{
		InteractionType: strPtr("view"),
		SessionID:       strPtr("s1"),
		DiamondID:       &diamond.ID,
		InteractionData: json.RawMessage(`{"source":"grid","position":3}`),
		DeviceType:      strPtr("mobile"),
	})
	if err != nil {
		t.Fatalf("create interaction failed: %v", err)
	}
	fetched, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get interaction failed: %v", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(fetched.InteractionData, &payload); err != nil {
		t.Fatalf("payload should round trip: %v", err)
	}
	if payload["source"] != "grid" {
		t.Fatalf("payload source want grid got %v", payload["source"])
	}
}

func TestInteractionSummaryRejectsInvertedRange(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewInteractionService(env.interactions, env.users, env.diamonds, env.settings, env.configs)
	from := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)
	if _, err := svc.Summary(&from, &to); !errors.Is(err, ErrInvalidInteraction) {
		t.Fatalf("inverted range want ErrInvalidInteraction got %v", err)
	}

	summary, err := svc.Summary(nil, nil)
	if err != nil {
		t.Fatalf("empty summary failed: %v", err)
	}
	if summary.TotalInteractions != 0 || summary.UniqueSessions != 0 || len(summary.ByType) != 0 {
		t.Fatalf("empty summary should be zero: %+v", summary)
	}
}

func TestInteractionSummaryWindowIgnoresOffset(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewInteractionService(env.interactions, env.users, env.diamonds, env.settings, env.configs)
	if _, err := svc.Create(InteractionInput{InteractionType: strPtr("view"), SessionID: strPtr("s1")}); err != nil {
		t.Fatalf("create interaction failed: %v", err)
	}

	tokyo := time.FixedZone("JST", 9*3600)
	pacific := time.FixedZone("PST", -8*3600)
	now := time.Now()
	cases := []struct {
		name string
		from *time.Time
		to   *time.Time
		want int64
	}{
		{name: "from in +09:00", from: timePtr(now.Add(-2 * time.Hour).In(tokyo)), want: 1},
		{name: "window in -08:00", from: timePtr(now.Add(-2 * time.Hour).In(pacific)), to: timePtr(now.Add(2 * time.Hour).In(pacific)), want: 1},
		{name: "to in +09:00 before row", to: timePtr(now.Add(-time.Hour).In(tokyo)), want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary, err := svc.Summary(tc.from, tc.to)
			if err != nil {
				t.Fatalf("summary failed: %v", err)
			}
			if summary.TotalInteractions != tc.want {
				t.Fatalf("total want %d got %d", tc.want, summary.TotalInteractions)
			}
		})
	}
}
