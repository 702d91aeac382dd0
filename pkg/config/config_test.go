package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if got := cfg.Agent.MemoryTTL; got != 24*time.Hour {
		t.Fatalf("expected memory ttl 24h, got %v", got)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected default origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_BuildsMySQLDSNFromParts(t *testing.T) {
	t.Setenv(EnvAppEnv, "dev")
	t.Setenv(EnvDBDriver, "mysql")
	t.Setenv(EnvDBHost, "db.internal")
	t.Setenv(EnvDBPort, "3307")
	t.Setenv(EnvDBUser, "sgroot")
	t.Setenv(EnvDBPassword, "secret")
	t.Setenv(EnvDBName, "ballin_wear")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !strings.HasPrefix(cfg.DB.DSN, "sgroot:secret@tcp(db.internal:3307)/ballin_wear?") {
		t.Fatalf("unexpected mysql dsn %q", cfg.DB.DSN)
	}
	if !strings.Contains(cfg.DB.DSN, "parseTime=true") {
		t.Fatalf("expected parseTime in dsn %q", cfg.DB.DSN)
	}
}

func TestLoad_BuildsPostgresDSNFromParts(t *testing.T) {
	t.Setenv(EnvDBDriver, "postgres")
	t.Setenv(EnvDBHost, "localhost")
	t.Setenv(EnvDBPort, "5432")
	t.Setenv(EnvDBUser, "ballin")
	t.Setenv(EnvDBName, "ballin_wear")
	t.Setenv(EnvDBSSLMode, "disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DB.DSN != "postgres://ballin@localhost:5432/ballin_wear?sslmode=disable" {
		t.Fatalf("unexpected postgres dsn %q", cfg.DB.DSN)
	}
}

func TestLoad_MissingDBUser(t *testing.T) {
	t.Setenv(EnvDBDriver, "mysql")
	t.Setenv(EnvDBUser, "")
	t.Setenv(EnvDBDSN, "")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing db user to return an error")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv(EnvDBDriver, "oracle")
	t.Setenv(EnvDBDSN, "whatever")

	if _, err := Load(); err == nil {
		t.Fatal("expected unsupported driver to return an error")
	}
}

func TestLoad_SQLiteFlagOverridesDriver(t *testing.T) {
	t.Setenv(EnvUseSQLite, "true")
	t.Setenv(EnvDBDSN, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DB.Driver != DriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.DB.Driver)
	}
	if !strings.HasPrefix(cfg.DB.DSN, "file:") {
		t.Fatalf("unexpected sqlite dsn %q", cfg.DB.DSN)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvDBDriver, "mysql")
	t.Setenv(EnvDBDSN, "user:pass@tcp(localhost:3306)/ballin_wear?parseTime=true")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}

func TestAgentConfigHelpers(t *testing.T) {
	cfg := AgentConfig{MemoryBackend: " Redis "}
	if !cfg.UsesRedisMemory() {
		t.Fatal("expected redis memory backend")
	}
	if cfg.Enabled() {
		t.Fatal("expected agent disabled without api key")
	}
	if (RedisConfig{}).Enabled() {
		t.Fatal("expected redis disabled without url or address")
	}
}
