package repository

import (
	"testing"
)

func TestLikeOperatorByDialect(t *testing.T) {
	if got := likeOperatorByDialect("postgres"); got != "ILIKE" {
		t.Fatalf("postgres operator want ILIKE got %s", got)
	}
	if got := likeOperatorByDialect("sqlite"); got != "LIKE" {
		t.Fatalf("sqlite operator want LIKE got %s", got)
	}
}

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("postgres", []string{"email", " ", "first_name"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	want := "(email ILIKE ? OR first_name ILIKE ?)"
	if condition != want {
		t.Fatalf("condition want %s got %s", want, condition)
	}

	condition, argCount = buildLikeCondition(nil, []string{"sku"})
	if argCount != 1 || condition != "(sku LIKE ?)" {
		t.Fatalf("nil db should fall back to sqlite LIKE, got %s (%d)", condition, argCount)
	}

	condition, argCount = buildLikeConditionByDialect("sqlite", nil)
	if argCount != 0 || condition != "" {
		t.Fatalf("empty columns should build nothing, got %s (%d)", condition, argCount)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
