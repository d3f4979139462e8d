package middleware

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/infras/otel"
	"todos/internal/session"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/transport/http/response"
)

type Session interface {
	// Session loads the visitor's session before the handler runs and saves
	// it, refreshing the cookie, just before the response header goes out.
	Session(next http.Handler) http.Handler
	RequireSignIn(next http.Handler) http.Handler
}

type sessionMiddleware struct {
	manager session.Manager
	config  *config.Config
	otel    otel.Otel
}

func NewSessionMiddleware(manager session.Manager, config *config.Config, otel otel.Otel) Session {
	return &sessionMiddleware{
		manager: manager,
		config:  config,
		otel:    otel,
	}
}

func (m *sessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "session.middleware")
		defer scope.End()

		token := constant.Empty
		if cookie, err := request.Cookie(m.config.Session.CookieName); err == nil {
			token = cookie.Value
		}

		sess, err := m.manager.Load(ctx, token)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to load session")

			response.WithError(writer, err)

			return
		}

		request = request.WithContext(session.WithContext(ctx, sess))

		sessionWriter := &sessionWriter{
			ResponseWriter: writer,
			save: func() {
				m.save(request, writer, sess)
			},
		}

		next.ServeHTTP(sessionWriter, request)

		sessionWriter.saveOnce()
	})
}

func (m *sessionMiddleware) save(request *http.Request, writer http.ResponseWriter, sess *session.Session) {
	token, err := m.manager.Save(request.Context(), sess)
	if err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("failed to save session")

		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     m.config.Session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   m.config.Session.MaxAgeDays * constant.DaysToSeconds,
		HttpOnly: true,
		Secure:   m.config.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *sessionMiddleware) RequireSignIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		sess := session.FromContext(request.Context())
		if sess == nil || !sess.SignedIn {
			response.WithError(writer, failure.SignInRequired)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// sessionWriter saves the session the first time the handler commits the
// response, while cookies can still be set.
type sessionWriter struct {
	http.ResponseWriter
	save func()
	once sync.Once
}

func (w *sessionWriter) saveOnce() {
	w.once.Do(w.save)
}

func (w *sessionWriter) WriteHeader(code int) {
	w.saveOnce()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) Write(body []byte) (int, error) {
	w.saveOnce()

	return w.ResponseWriter.Write(body)
}
