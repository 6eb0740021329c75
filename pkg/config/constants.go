package config

// EnvPrefix is handed to envconfig; every field carries an explicit envconfig tag so the
// prefix only matters for fields without one.
const EnvPrefix = "SHOP"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "SHOP_APP_ENV"
	EnvPort         = "SHOP_APP_PORT"
	EnvLogLevel     = "SHOP_LOG_LEVEL"
	EnvLogWarnStack = "SHOP_LOG_WARN_STACK"

	EnvDBDSN      = "SHOP_DB_DSN"
	EnvDBHost     = "SHOP_DB_HOST"
	EnvDBPort     = "SHOP_DB_PORT"
	EnvDBUser     = "SHOP_DB_USER"
	EnvDBPassword = "SHOP_DB_PASSWORD"
	EnvDBName     = "SHOP_DB_NAME"
	EnvDBSSLMode  = "SHOP_DB_SSLMODE"

	EnvRedisURL  = "SHOP_REDIS_URL"
	EnvRedisAddr = "SHOP_REDIS_ADDR"

	EnvAutoMigrate = "SHOP_AUTO_MIGRATE"

	EnvTracingEnabled  = "SHOP_TRACING_ENABLED"
	EnvTracingEndpoint = "SHOP_TRACING_OTLP_ENDPOINT"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
