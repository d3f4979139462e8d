//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"todos/config"
	"todos/infras/jwt"
	"todos/infras/otel"
	"todos/infras/postgres"
	"todos/infras/redis"
	todoListService "todos/internal/domains/todolist/service"
	authHandler "todos/internal/handlers/auth"
	todoListHandler "todos/internal/handlers/todolist"
	"todos/internal/session"
	"todos/shared/cache"
	"todos/transport/http"
	"todos/transport/http/middleware"
	"todos/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	session.NewManager,
)

var middlewares = wire.NewSet(
	wire.Struct(new(router.Middlewares), "*"),
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
	middleware.NewStoreMiddleware,
)

var domains = wire.NewSet(
	todoListService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoListHandler.New,
	authHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
