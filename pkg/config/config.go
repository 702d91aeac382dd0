package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Agent        AgentConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = DriverSQLite
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BALLIN_APP_ENV" default:"dev"`
	Port         string `envconfig:"BALLIN_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"BALLIN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BALLIN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BALLIN_DB_DSN"`
	Driver string `envconfig:"BALLIN_DB_DRIVER" default:"mysql"`

	Host     string `envconfig:"BALLIN_DB_HOST" default:"localhost"`
	Port     int    `envconfig:"BALLIN_DB_PORT" default:"3306"`
	User     string `envconfig:"BALLIN_DB_USER"`
	Password string `envconfig:"BALLIN_DB_PASSWORD"`
	Name     string `envconfig:"BALLIN_DB_NAME" default:"ballin_wear"`
	SSLMode  string `envconfig:"BALLIN_DB_SSLMODE"`

	MaxOpenConns    int           `envconfig:"BALLIN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BALLIN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BALLIN_DB_CONN_MAX_LIFETIME" default:"3m"`
	ConnMaxIdleTime time.Duration `envconfig:"BALLIN_DB_CONN_MAX_IDLE_TIME" default:"1m"`
}

// RedisConfig is optional; an empty URL and address disables Redis-backed memory.
type RedisConfig struct {
	URL          string        `envconfig:"BALLIN_REDIS_URL"`
	Address      string        `envconfig:"BALLIN_REDIS_ADDR"`
	Password     string        `envconfig:"BALLIN_REDIS_PASSWORD"`
	DB           int           `envconfig:"BALLIN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BALLIN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BALLIN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BALLIN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BALLIN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BALLIN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type AgentConfig struct {
	APIKey        string        `envconfig:"BALLIN_OPENAI_API_KEY"`
	BaseURL       string        `envconfig:"BALLIN_OPENAI_BASE_URL"`
	Model         string        `envconfig:"BALLIN_AGENT_MODEL" default:"gpt-4o-mini"`
	Temperature   float32       `envconfig:"BALLIN_AGENT_TEMPERATURE" default:"0"`
	MaxSteps      int           `envconfig:"BALLIN_AGENT_MAX_STEPS" default:"8"`
	MaxHistory    int           `envconfig:"BALLIN_AGENT_MAX_HISTORY" default:"60"`
	Timeout       time.Duration `envconfig:"BALLIN_AGENT_TIMEOUT" default:"60s"`
	MemoryBackend string        `envconfig:"BALLIN_AGENT_MEMORY" default:"memory"`
	MemoryTTL     time.Duration `envconfig:"BALLIN_AGENT_MEMORY_TTL" default:"24h"`
}

// Enabled reports whether the agent has the credentials it needs to start.
func (a AgentConfig) Enabled() bool {
	return strings.TrimSpace(a.APIKey) != ""
}

// UsesRedisMemory reports whether conversation memory should live in Redis.
func (a AgentConfig) UsesRedisMemory() bool {
	return strings.EqualFold(strings.TrimSpace(a.MemoryBackend), MemoryBackendRedis)
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BALLIN_CORS_ALLOWED_ORIGINS" default:"https://ballin-wear.onrender.com,http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"BALLIN_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"BALLIN_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	db.Driver = strings.ToLower(strings.TrimSpace(db.Driver))
	switch db.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported %s %q", EnvDBDriver, db.Driver)
	}

	if db.DSN != "" {
		return nil
	}

	if db.Driver == DriverSQLite {
		name := db.Name
		if name == "" {
			name = "ballin_wear"
		}
		db.DSN = fmt.Sprintf("file:%s.db?cache=shared", name)
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	if db.Driver == DriverMySQL {
		db.DSN = db.mysqlDSN()
		return nil
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

func (db *DBConfig) mysqlDSN() string {
	q := url.Values{}
	q.Set("parseTime", "true")
	q.Set("loc", "UTC")
	q.Set("charset", "utf8mb4")
	if db.SSLMode != "" {
		q.Set("tls", db.SSLMode)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", db.User, db.Password, db.Host, db.Port, db.Name, q.Encode())
}
