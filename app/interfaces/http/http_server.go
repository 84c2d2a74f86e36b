package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "pokedex.dev/pokedex-api/docs"

	"pokedex.dev/pokedex-api/app/domain/healthcheck"
	"pokedex.dev/pokedex-api/app/interfaces/http/middleware"
	v1 "pokedex.dev/pokedex-api/app/interfaces/http/routes/v1"
	"pokedex.dev/pokedex-api/app/utils/logger"
	"pokedex.dev/pokedex-api/config/environment_variables"
)

type HttpServer struct {
	engine      *gin.Engine
	v1Route     *v1.V1Route
	healthcheck *healthcheck.HealthcheckCrontabService
}

type HealthCheckResponse struct {
	Status       string               `json:"status"`
	Dependencies healthcheck.Snapshot `json:"dependencies"`
}

func NewHttpServer(v1Route *v1.V1Route, healthcheckService *healthcheck.HealthcheckCrontabService) *HttpServer {
	gin.SetMode(gin.ReleaseMode)
	server := HttpServer{
		engine:      gin.New(),
		v1Route:     v1Route,
		healthcheck: healthcheckService,
	}
	server.engine.Use(
		gin.Recovery(),
		middleware.LoggerMiddleware(logger.GetLogger()),
		middleware.CORS(environment_variables.EnvironmentVariables.ALLOWED_CORS_HOSTS),
	)
	// Liveness only: degraded dependencies are reported, not failed on.
	server.engine.GET("/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthCheckResponse{
			Status:       "ok",
			Dependencies: server.healthcheck.Snapshot(),
		})
	})
	server.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	v1Route.RegisterRouter(server.engine.Group("/"))
	return &server
}

func (httpServer *HttpServer) Handler() http.Handler {
	return httpServer.engine
}

func (httpServer *HttpServer) Run() error {
	port := environment_variables.EnvironmentVariables.HttpPort()
	logger.GetLogger().Infof("listening on :%d", port)
	if err := httpServer.engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		return err
	}
	return nil
}
