package config

import (
	"sparrc-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MySQL: MySQL{
			Host:     utils.GetEnvString("MYSQL_HOST", "localhost"),
			Port:     utils.GetEnvString("MYSQL_PORT", "3306"),
			DbName:   utils.GetEnvString("MYSQL_DB_NAME", "sparrc"),
			Username: utils.GetEnvString("MYSQL_USERNAME", "root"),
			Password: utils.GetEnvString("MYSQL_PASSWORD", "root123"),
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
			Port:                      utils.GetEnvString("APP_PORT", ":3001"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
		},
		PatientAPI: PatientAPI{
			BaseUrl:                 utils.GetEnvString("PATIENT_API_BASE_URL", "http://localhost:3001/api"),
			RequestTimeoutInSeconds: utils.GetEnvInt("PATIENT_API_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
	}
}
