package main

import (
	"context"

	"github.com/mileusna/crontab"
	"pokedex.dev/pokedex-api/app/domain/healthcheck"
	"pokedex.dev/pokedex-api/app/infrastructure/cache"
	"pokedex.dev/pokedex-api/app/interfaces/http"
	"pokedex.dev/pokedex-api/app/utils/logger"
	"pokedex.dev/pokedex-api/config"
	"pokedex.dev/pokedex-api/config/environment_variables"
)

type Application struct {
	HttpServer  *http.HttpServer
	Healthcheck *healthcheck.HealthcheckCrontabService
	Cache       cache.CacheService
}

func (application *Application) Start() {
	cron := crontab.New()
	if err := application.Healthcheck.Start(context.Background(), cron); err != nil {
		logger.GetLogger().Errorf("failed to schedule health checks: %v", err)
	}
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	logger.SetLevel(environment_variables.EnvironmentVariables.LOG_LEVEL)
}

// @title       Pokedex API
// @version     1.0
// @description Pokemon species information with optional fun translations.
// @BasePath    /
func main() {
	logger.GetLogger().Infof("starting pokedex-api %s", config.Version)
	startProfiler(environment_variables.EnvironmentVariables.PPROF_ADDR)

	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}
	defer application.Cache.Close()
	application.Start()
}
