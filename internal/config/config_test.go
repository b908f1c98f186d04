package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestTypedAccessors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T)
	}{
		{"int parsed", "14", func(t *testing.T) {
			if got := getInt("CFG_TYPED", 30); got != 14 {
				t.Errorf("getInt = %d, want 14", got)
			}
		}},
		{"int garbage", "two weeks", func(t *testing.T) {
			if got := getInt("CFG_TYPED", 30); got != 30 {
				t.Errorf("getInt = %d, want default", got)
			}
		}},
		{"int negative", "-3", func(t *testing.T) {
			if got := getInt("CFG_TYPED", 30); got != 30 {
				t.Errorf("getInt = %d, want default", got)
			}
		}},
		{"bool parsed", "1", func(t *testing.T) {
			if !getBool("CFG_TYPED", false) {
				t.Error("getBool = false, want true")
			}
		}},
		{"duration parsed", "90s", func(t *testing.T) {
			if got := getDuration("CFG_TYPED", time.Minute); got != 90*time.Second {
				t.Errorf("getDuration = %v, want 90s", got)
			}
		}},
		{"duration garbage", "soon", func(t *testing.T) {
			if got := getDuration("CFG_TYPED", time.Minute); got != time.Minute {
				t.Errorf("getDuration = %v, want default", got)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CFG_TYPED", tt.value)
			tt.check(t)
		})
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	for _, key := range []string{
		"PORT", "DATABASE_DRIVER", "DATABASE_URL", "LOG_LEVEL", "LOG_MODE", "SEED",
		"REDIS_ADDR", "SNAPSHOT_CACHE_TTL", "ANALYTICS_WINDOW_DAYS",
		"OPENAI_API_KEY", "OPENAI_NARRATIVE_MODEL",
		"LANGFUSE_BASE_URL", "LANGFUSE_PUBLIC_KEY", "LANGFUSE_SECRET_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.DatabaseDriver != DriverPostgres || cfg.Seed || cfg.RedisAddr != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AnalyticsWindowDays != 30 || cfg.SnapshotCacheTTL != 10*time.Minute {
		t.Fatalf("analytics defaults not applied: %+v", cfg)
	}
	if cfg.LangfuseEnabled() {
		t.Fatal("expected Langfuse disabled without credentials")
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("ANALYTICS_WINDOW_DAYS", "14")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_NARRATIVE_MODEL", "model")
	t.Setenv("LANGFUSE_BASE_URL", "http://langfuse")
	t.Setenv("LANGFUSE_PUBLIC_KEY", "pk")
	t.Setenv("LANGFUSE_SECRET_KEY", "sk")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseDriver != DriverSQLite || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.AnalyticsWindowDays != 14 {
		t.Fatalf("redis/analytics overrides missing: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAINarrativeModel != "model" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
	if !cfg.LangfuseEnabled() {
		t.Fatal("expected Langfuse enabled with all credentials")
	}
}

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := &Config{DatabaseDriver: DriverSQLite, DatabaseURL: "file::memory:"}

	db, err := NewDatabase(cfg)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, model := range Models() {
		if !db.Migrator().HasTable(model) {
			t.Errorf("missing table for %T", model)
		}
	}
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	if _, err := NewDatabase(&Config{DatabaseDriver: "oracle"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
