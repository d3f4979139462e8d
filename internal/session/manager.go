package session

//go:generate go run go.uber.org/mock/mockgen -source=./manager.go -destination=./mocks/manager_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/infras/jwt"
	"todos/infras/otel"
	"todos/shared"
	"todos/shared/cache"
	"todos/shared/constant"
)

type Manager interface {
	// Load resolves a session token. A missing, forged, or expired token, or
	// one whose session is gone, yields a brand new session.
	Load(ctx context.Context, token string) (*Session, error)
	// Save persists the session and returns the token for the cookie.
	Save(ctx context.Context, sess *Session) (string, error)
}

type managerImpl struct {
	cache cache.RedisCache
	jwt   jwt.JWT
	cfg   *config.Config
	otel  otel.Otel
}

func NewManager(cache cache.RedisCache, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Manager {
	return &managerImpl{
		cache: cache,
		jwt:   jwt,
		cfg:   cfg,
		otel:  otel,
	}
}

func (m *managerImpl) Load(ctx context.Context, token string) (sess *Session, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoadSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if token == constant.Empty {
		return New(), nil
	}

	claims, err := m.jwt.ValidateSessionToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("discarding session token")

		return New(), nil
	}

	sess = &Session{}
	if err = m.cache.Get(ctx, cacheKey(claims.SessionID), sess); err != nil {
		if errors.Is(err, cache.Nil) {
			return New(), nil
		}

		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	sess.ID = claims.SessionID

	return sess, nil
}

func (m *managerImpl) Save(ctx context.Context, sess *Session) (token string, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ttl := m.cfg.Session.MaxAgeDays * constant.DaysToSeconds

	if err = m.cache.Save(ctx, cacheKey(sess.ID), sess, ttl); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	token, err = m.jwt.GenerateSessionToken(sess.ID)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}

	return token, nil
}

func cacheKey(sessionID string) string {
	return shared.BuildCacheKey(constant.CacheKeySession, sessionID)
}
