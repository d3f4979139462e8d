package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/infras/otel"
	"todos/infras/postgres"
	"todos/internal/domains/auth/service"
	"todos/internal/domains/todolist/store"
	"todos/internal/session"
	"todos/shared/constant"
)

type Store interface {
	// Store picks the todo store for the request: PostgreSQL when a database
	// is configured, the visitor's session otherwise. Runs after Session.
	Store(next http.Handler) http.Handler
}

type storeMiddleware struct {
	config     *config.Config
	connection *postgres.Connection
	otel       otel.Otel
}

func NewStoreMiddleware(config *config.Config, connection *postgres.Connection, otel otel.Otel) Store {
	return &storeMiddleware{
		config:     config,
		connection: connection,
		otel:       otel,
	}
}

func (m *storeMiddleware) Store(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		sess := session.FromContext(ctx)

		if !m.config.DurableStorage() {
			todoStore := store.NewSession(sess, service.NewStaticVerifier(m.config))
			next.ServeHTTP(writer, request.WithContext(store.WithContext(ctx, todoStore)))

			return
		}

		executor := postgres.NewExecutor(m.connection, m.otel)
		defer func() {
			if err := executor.Close(); err != nil {
				log.Error().Err(err).Msg("failed to release database connection")
			}
		}()

		username := constant.Empty
		if sess.SignedIn {
			username = sess.Username
		}

		verifier := service.NewUserVerifier(executor, m.otel)
		todoStore := store.NewPostgres(executor, verifier, m.otel, username)

		next.ServeHTTP(writer, request.WithContext(store.WithContext(ctx, todoStore)))
	})
}
