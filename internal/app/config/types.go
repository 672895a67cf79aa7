package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		Upstream Upstream
		Console  Console
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		ShutdownTimeout           int
		MaxRequests               int
		MaxTimeRequestsPerSeconds int
	}

	// Upstream is the healthcare API this console fronts.
	Upstream struct {
		BaseUrl                string
		RequestTimeoutInSecond int
		MaxRequestsPerSecond   int
	}

	// Console holds dashboard behavior knobs.
	Console struct {
		PollIntervalInSecond int
		SessionTTLInHour     int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
