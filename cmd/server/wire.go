//go:build wireinject

package main

import (
	"github.com/google/wire"
	"pokedex.dev/pokedex-api/app/domain"
	"pokedex.dev/pokedex-api/app/infrastructure"
	"pokedex.dev/pokedex-api/app/interfaces/http"
	"pokedex.dev/pokedex-api/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
