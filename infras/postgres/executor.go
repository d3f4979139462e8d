package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./executor.go -destination=./mocks/executor_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"todos/infras/otel"
	"todos/shared/constant"
)

var ErrNoDatabase = errors.New("no database configured")

// Executor runs positional ($1, $2, ...) statements for a single request.
type Executor interface {
	// Select scans every returned row into dest, a pointer to a slice.
	Select(ctx context.Context, dest any, statement string, params ...any) error
	// Get scans exactly one row into dest; a missing row is sql.ErrNoRows.
	Get(ctx context.Context, dest any, statement string, params ...any) error
	// Exec returns the number of affected rows.
	Exec(ctx context.Context, statement string, params ...any) (int64, error)
	// Close releases the connection back to the pool.
	Close() error
}

// executorImpl holds at most one connection, acquired on the first statement.
// Statements are serialised because a connection runs one at a time.
type executorImpl struct {
	db   *sqlx.DB
	otel otel.Otel

	mu   sync.Mutex
	conn *sqlx.Conn
}

func NewExecutor(connection *Connection, otel otel.Otel) Executor {
	return &executorImpl{
		db:   connection.DB,
		otel: otel,
	}
}

func (e *executorImpl) Select(ctx context.Context, dest any, statement string, params ...any) (err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelExecutorScopeName, constant.OtelExecutorScopeName+".Select")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	e.mu.Lock()
	defer e.mu.Unlock()

	conn, err := e.acquire(ctx)
	if err != nil {
		return err
	}

	logStatement(statement, params)

	if err = conn.SelectContext(ctx, dest, statement, params...); err != nil {
		return fmt.Errorf("failed to select: %w", err)
	}

	return nil
}

func (e *executorImpl) Get(ctx context.Context, dest any, statement string, params ...any) (err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelExecutorScopeName, constant.OtelExecutorScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	e.mu.Lock()
	defer e.mu.Unlock()

	conn, err := e.acquire(ctx)
	if err != nil {
		return err
	}

	logStatement(statement, params)

	if err = conn.GetContext(ctx, dest, statement, params...); err != nil {
		return fmt.Errorf("failed to get: %w", err)
	}

	return nil
}

func (e *executorImpl) Exec(ctx context.Context, statement string, params ...any) (affected int64, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelExecutorScopeName, constant.OtelExecutorScopeName+".Exec")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	e.mu.Lock()
	defer e.mu.Unlock()

	conn, err := e.acquire(ctx)
	if err != nil {
		return 0, err
	}

	logStatement(statement, params)

	result, err := conn.ExecContext(ctx, statement, params...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute: %w", err)
	}

	affected, err = result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func (e *executorImpl) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.conn == nil {
		return nil
	}

	err := e.conn.Close()
	e.conn = nil

	if err != nil {
		return fmt.Errorf("failed to release connection: %w", err)
	}

	return nil
}

// acquire must be called with mu held.
func (e *executorImpl) acquire(ctx context.Context) (*sqlx.Conn, error) {
	if e.conn != nil {
		return e.conn, nil
	}

	if e.db == nil {
		return nil, ErrNoDatabase
	}

	conn, err := e.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	e.conn = conn

	return conn, nil
}

func logStatement(statement string, params []any) {
	log.Info().Str("statement", statement).Interface("params", params).Msg("Executing statement")
}
