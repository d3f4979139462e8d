package router

import (
	"github.com/go-chi/chi/v5"

	"todos/internal/handlers/auth"
	"todos/internal/handlers/todolist"
	"todos/transport/http/middleware"
)

type DomainHandlers struct {
	Auth     auth.Handler
	TodoList todolist.Handler
}

type Middlewares struct {
	App     middleware.AppMiddleware
	Session middleware.Session
	Store   middleware.Store
}

type Router struct {
	DomainHandlers DomainHandlers
	Middlewares    Middlewares
}

// SetupRoutes mounts the API under /v1. The store middleware needs the
// session, so Session must run first.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middlewares.App.Tracing,
		r.Middlewares.App.CORS(),
		r.Middlewares.Session.Session,
		r.Middlewares.Store.Store,
	)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.TodoList.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middlewares Middlewares) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middlewares:    middlewares,
	}
}
