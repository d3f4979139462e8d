package service

//go:generate go run go.uber.org/mock/mockgen -source=./verifier.go -destination=./mocks/verifier_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/infras/otel"
	"todos/infras/postgres"
	userModel "todos/internal/domains/user/model"
	"todos/shared/constant"
	"todos/shared/password"
)

// Verifier checks a username/password pair. Unknown users and wrong
// passwords both come back as false; only infrastructure problems are errors.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

var findPasswordQuery = fmt.Sprintf(
	"SELECT %s FROM %s WHERE %s = $1",
	userModel.FieldPassword, userModel.TableName, userModel.FieldUsername,
)

type userVerifier struct {
	executor postgres.Executor
	otel     otel.Otel
}

// NewUserVerifier checks credentials against the users table.
func NewUserVerifier(executor postgres.Executor, otel otel.Otel) Verifier {
	return &userVerifier{
		executor: executor,
		otel:     otel,
	}
}

func (v *userVerifier) Verify(ctx context.Context, username, plain string) (ok bool, err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var hashes []string
	if err = v.executor.Select(ctx, &hashes, findPasswordQuery, username); err != nil {
		return false, fmt.Errorf("failed to find password hash: %w", err)
	}

	if len(hashes) == 0 {
		log.Warn().Str("username", username).Msg("sign in attempt with unknown username")

		return false, nil
	}

	return compare(username, plain, hashes[0])
}

type staticVerifier struct {
	username string
	hash     string
}

// NewStaticVerifier accepts only the configured demo account. With no demo
// account configured nobody can sign in.
func NewStaticVerifier(cfg *config.Config) Verifier {
	return &staticVerifier{
		username: cfg.App.Demo.Username,
		hash:     cfg.App.Demo.PasswordHash,
	}
}

func (v *staticVerifier) Verify(_ context.Context, username, plain string) (bool, error) {
	if v.username == "" || username != v.username {
		return false, nil
	}

	return compare(username, plain, v.hash)
}

func compare(username, plain, hash string) (bool, error) {
	err := password.Verify(plain, hash)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, password.ErrInvalidPassword):
		log.Warn().Str("username", username).Msg("sign in attempt with wrong password")

		return false, nil
	default:
		return false, fmt.Errorf("failed to compare password: %w", err)
	}
}
