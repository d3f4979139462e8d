package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"todos/config"
)

const (
	postgresMaxIdleConnection = 5
)

// Connection holds the shared pool. DB is nil when no database is configured.
type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	if !config.DurableStorage() {
		log.Info().Msg("No database configured, todo lists are kept in the session")

		return &Connection{}
	}

	return &Connection{
		DB: CreatePostgresConnection(
			Descriptor(config),
			config.DB.Postgres.MaxRetry,
			config.DB.Postgres.RetryWaitTime,
			config.DB.Postgres.MaxConnections,
		),
	}
}

// Descriptor builds the connection string. The sslmode parameter always
// follows config.PostgresSSLMode, overriding whatever the URL carried.
func Descriptor(config *config.Config) string {
	pg := config.DB.Postgres
	sslMode := config.PostgresSSLMode()

	if pg.URL != "" {
		parsed, err := url.Parse(pg.URL)
		if err != nil {
			log.Error().Err(err).Msg("Malformed database url, using it verbatim")

			return pg.URL
		}

		query := parsed.Query()
		query.Set("sslmode", sslMode)
		parsed.RawQuery = query.Encode()

		return parsed.String()
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(pg.Username),
		url.QueryEscape(pg.Password),
		net.JoinHostPort(pg.Host, pg.Port),
		pg.Name,
		sslMode,
	)
}

// CreatePostgresConnection opens the pool, retrying maxRetry times waitTime seconds apart.
func CreatePostgresConnection(descriptor string, maxRetry, waitTime, maxOpen int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.Info().Msg("Connected to database")
			sqlDB.SetMaxIdleConns(min(postgresMaxIdleConnection, maxOpen))
			sqlDB.SetMaxOpenConns(maxOpen)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Int("attempts", maxRetry).Msg("Could not connect to database")

	return nil
}
