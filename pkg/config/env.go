package config

const (
	EnvPrefix = "BALLIN"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	MemoryBackendMemory = "memory"
	MemoryBackendRedis  = "redis"
)

const (
	EnvAppEnv   = "BALLIN_APP_ENV"
	EnvPort     = "BALLIN_APP_PORT"
	EnvLogLevel = "BALLIN_LOG_LEVEL"

	EnvDBDSN      = "BALLIN_DB_DSN"
	EnvDBDriver   = "BALLIN_DB_DRIVER"
	EnvDBHost     = "BALLIN_DB_HOST"
	EnvDBPort     = "BALLIN_DB_PORT"
	EnvDBUser     = "BALLIN_DB_USER"
	EnvDBPassword = "BALLIN_DB_PASSWORD"
	EnvDBName     = "BALLIN_DB_NAME"
	EnvDBSSLMode  = "BALLIN_DB_SSLMODE"

	EnvRedisURL = "BALLIN_REDIS_URL"

	EnvOpenAIAPIKey = "BALLIN_OPENAI_API_KEY"
	EnvAgentModel   = "BALLIN_AGENT_MODEL"
	EnvAgentMemory  = "BALLIN_AGENT_MEMORY"

	EnvCORSOrigins = "BALLIN_CORS_ALLOWED_ORIGINS"
	EnvUseSQLite   = "BALLIN_USE_SQLITE"
)

var requiredDBEnvVars = []string{
	EnvDBHost,
	EnvDBUser,
	EnvDBName,
}
