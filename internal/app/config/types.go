package config

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MySQL          *sql.DB
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App        App
		PatientAPI PatientAPI
	}

	DriverConfig struct {
		MySQL  MySQL
		Logger Logger
	}

	App struct {
		Env                       string
		Port                      string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		RequestTimeoutInSeconds   int
		MaxTimeRequestsPerSeconds int
	}

	MySQL struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	// PatientAPI points the session store at the remote patient API.
	PatientAPI struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
	}
)
