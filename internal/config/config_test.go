package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWith(viper.New())
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Fatalf("server addr want 0.0.0.0:8080 got %s", cfg.Server.Addr())
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("database driver want sqlite got %s", cfg.Database.Driver)
	}
	if cfg.Order.NumberPrefix != "LUX" {
		t.Fatalf("order prefix want LUX got %s", cfg.Order.NumberPrefix)
	}
	if cfg.Security.WriteRateLimit.MaxRequests != 120 {
		t.Fatalf("write rate limit want 120 got %d", cfg.Security.WriteRateLimit.MaxRequests)
	}
	if cfg.Security.HelpfulRateLimit.WindowSeconds != 3600 || cfg.Security.HelpfulRateLimit.MaxRequests != 3 {
		t.Fatalf("helpful rate limit defaults mismatch: %+v", cfg.Security.HelpfulRateLimit)
	}
	if cfg.Catalog.StatisticsCacheTTL() != time.Minute {
		t.Fatalf("statistics ttl want 1m got %s", cfg.Catalog.StatisticsCacheTTL())
	}
	if cfg.Database.SlowThreshold() != 200*time.Millisecond {
		t.Fatalf("slow threshold want 200ms got %s", cfg.Database.SlowThreshold())
	}
	if opts := cfg.Database.ToDBOptions(); opts.DSN != "./db/luxe.db" || opts.SlowThreshold != 200*time.Millisecond {
		t.Fatalf("db options mismatch: %+v", opts)
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		t.Fatalf("cors methods should have defaults")
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("TELEMETRY_ENABLED", "true")

	cfg, err := LoadWith(viper.New())
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.Server.Port != "9191" {
		t.Fatalf("server port want 9191 got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("database driver want postgres got %s", cfg.Database.Driver)
	}
	if !cfg.Telemetry.Enabled {
		t.Fatalf("telemetry should be enabled by env")
	}
}
