package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todos/config"
	"todos/infras/jwt"
	otelMocks "todos/infras/otel/mocks"
	"todos/internal/domains/todolist/model"
	"todos/internal/session"
	"todos/shared/cache"
	cacheMocks "todos/shared/cache/mocks"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "todos"
	cfg.Session.Secret = "test-secret"
	cfg.Session.MaxAgeDays = 31

	return cfg
}

func TestManager_SaveThenLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	cfg := newConfig()
	manager := session.NewManager(mockCache, jwt.New(cfg), cfg, otelMocks.NewOtel())
	ctx := context.Background()

	sess := session.New()
	sess.SignIn("admin")
	sess.SetTodoLists(model.Seed())

	key := "session:" + sess.ID

	mockCache.EXPECT().Save(gomock.Any(), key, sess, 31*24*60*60).Return(nil)

	token, err := manager.Save(ctx, sess)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	mockCache.EXPECT().
		Get(gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*session.Session) = *sess

			return nil
		})

	loaded, err := manager.Load(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, "admin", loaded.Username)
	assert.True(t, loaded.SignedIn)
	assert.Equal(t, model.Seed(), loaded.TodoLists())
}

func TestManager_LoadStartsFreshSession(t *testing.T) {
	cfg := newConfig()
	valid, err := jwt.New(cfg).GenerateSessionToken("known-id")
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		setupMock func(mockCache *cacheMocks.MockRedisCache)
	}{
		{
			name:      "no cookie",
			token:     "",
			setupMock: func(_ *cacheMocks.MockRedisCache) {},
		},
		{
			name:      "forged token",
			token:     "not-a-token",
			setupMock: func(_ *cacheMocks.MockRedisCache) {},
		},
		{
			name:  "session expired from cache",
			token: valid,
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), "session:known-id", gomock.Any()).
					Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			manager := session.NewManager(mockCache, jwt.New(cfg), cfg, otelMocks.NewOtel())

			sess, err := manager.Load(context.Background(), tt.token)

			require.NoError(t, err)
			assert.NotEmpty(t, sess.ID)
			assert.NotEqual(t, "known-id", sess.ID)
			assert.False(t, sess.SignedIn)
			assert.Nil(t, sess.TodoLists())
		})
	}
}

func TestManager_CacheFailures(t *testing.T) {
	cfg := newConfig()
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	manager := session.NewManager(mockCache, jwt.New(cfg), cfg, otelMocks.NewOtel())
	ctx := context.Background()

	token, err := jwt.New(cfg).GenerateSessionToken("known-id")
	require.NoError(t, err)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	sess, err := manager.Load(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, sess)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	token, err = manager.Save(ctx, session.New())
	assert.Error(t, err)
	assert.Empty(t, token)
}
