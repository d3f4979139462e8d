package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todos/config"
	otelMocks "todos/infras/otel/mocks"
	"todos/infras/postgres"
	"todos/internal/domains/todolist/store"
	"todos/internal/session"
	sessionMocks "todos/internal/session/mocks"
	"todos/transport/http/middleware"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.CookieName = "todos-session-id"
	cfg.Session.MaxAgeDays = 31

	return cfg
}

func TestSession_LoadsAndSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := sessionMocks.NewMockManager(ctrl)
	m := middleware.NewSessionMiddleware(manager, newConfig(), otelMocks.NewOtel())

	sess := session.New()

	manager.EXPECT().Load(gomock.Any(), "old-token").Return(sess, nil)
	manager.EXPECT().Save(gomock.Any(), sess).Return("new-token", nil)

	handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session.FromContext(r.Context()).SignIn("admin")
		w.WriteHeader(http.StatusNoContent)
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: "todos-session-id", Value: "old-token"})
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, sess.SignedIn)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "new-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 31*24*60*60, cookies[0].MaxAge)
}

func TestSession_SavesWhenHandlerWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := sessionMocks.NewMockManager(ctrl)
	m := middleware.NewSessionMiddleware(manager, newConfig(), otelMocks.NewOtel())

	sess := session.New()

	manager.EXPECT().Load(gomock.Any(), "").Return(sess, nil)
	manager.EXPECT().Save(gomock.Any(), sess).Return("token", nil).Times(1)

	recorder := httptest.NewRecorder()
	m.Session(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, recorder.Result().Cookies(), 1)
}

func TestSession_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := sessionMocks.NewMockManager(ctrl)
	m := middleware.NewSessionMiddleware(manager, newConfig(), otelMocks.NewOtel())

	manager.EXPECT().Load(gomock.Any(), "").Return(nil, errors.New("redis down"))

	recorder := httptest.NewRecorder()
	m.Session(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestRequireSignIn(t *testing.T) {
	m := middleware.NewSessionMiddleware(nil, newConfig(), otelMocks.NewOtel())
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	signedIn := session.New()
	signedIn.SignIn("admin")

	for name, tt := range map[string]struct {
		sess     *session.Session
		wantCode int
	}{
		"no session":     {nil, http.StatusUnauthorized},
		"anonymous":      {session.New(), http.StatusUnauthorized},
		"signed in user": {signedIn, http.StatusOK},
	} {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.sess != nil {
			request = request.WithContext(session.WithContext(request.Context(), tt.sess))
		}

		recorder := httptest.NewRecorder()
		m.RequireSignIn(next).ServeHTTP(recorder, request)

		assert.Equal(t, tt.wantCode, recorder.Code, name)
	}
}

func TestStore_SessionBacked(t *testing.T) {
	m := middleware.NewStoreMiddleware(newConfig(), &postgres.Connection{}, otelMocks.NewOtel())
	sess := session.New()

	var selected store.Store

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request = request.WithContext(session.WithContext(request.Context(), sess))

	m.Store(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		selected = store.FromContext(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), request)

	require.NotNil(t, selected)
	assert.NotNil(t, sess.TodoLists(), "the session was seeded")

	lists, err := selected.SortedTodoLists(request.Context())
	require.NoError(t, err)
	assert.NotEmpty(t, lists)
}

func TestStore_DatabaseBacked(t *testing.T) {
	cfg := newConfig()
	cfg.DB.Postgres.Host = "localhost"

	m := middleware.NewStoreMiddleware(cfg, &postgres.Connection{}, otelMocks.NewOtel())
	sess := session.New()
	sess.SignIn("admin")

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request = request.WithContext(session.WithContext(request.Context(), sess))

	var err error

	m.Store(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, err = store.FromContext(r.Context()).SortedTodoLists(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), request)

	assert.ErrorIs(t, err, postgres.ErrNoDatabase)
	assert.Nil(t, sess.TodoLists(), "the session is left alone")
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	disabled := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig())
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Origin", "http://example.com")
	recorder := httptest.NewRecorder()
	disabled.CORS()(next).ServeHTTP(recorder, request)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))

	cfg := newConfig()
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"http://example.com"}

	enabled := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg)
	recorder = httptest.NewRecorder()
	enabled.CORS()(next).ServeHTTP(recorder, request)
	assert.Equal(t, "http://example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
}
