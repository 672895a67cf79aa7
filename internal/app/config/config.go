package config

import (
	"healthapp-admin/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
		},
		Upstream: Upstream{
			BaseUrl:                utils.GetEnvString("UPSTREAM_BASE_URL", "http://localhost:5000/api"),
			RequestTimeoutInSecond: utils.GetEnvInt("UPSTREAM_REQUEST_TIMEOUT_IN_SECOND", 10),
			MaxRequestsPerSecond:   utils.GetEnvInt("UPSTREAM_MAX_REQUESTS_PER_SECOND", 20),
		},
		Console: Console{
			PollIntervalInSecond: utils.GetEnvInt("CONSOLE_POLL_INTERVAL_IN_SECOND", 30),
			SessionTTLInHour:     utils.GetEnvInt("CONSOLE_SESSION_TTL_IN_HOUR", 24),
		},
	}
}
