package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"3000"`
		Host     string `envconfig:"HOST" default:"localhost"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"NAME" default:"todos"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		// Demo is the only account known when no database is configured.
		Demo struct {
			Username     string `envconfig:"USERNAME"`
			PasswordHash string `envconfig:"PASSWORD_HASH"`
		} `envconfig:"DEMO"`
	} `envconfig:"APP"`

	Session struct {
		CookieName string `envconfig:"COOKIE_NAME" default:"todos-session-id"`
		Secret     string `envconfig:"SECRET"`
		MaxAgeDays int    `envconfig:"MAX_AGE_DAYS" default:"31"`
		Secure     bool   `envconfig:"SECURE"`
	} `envconfig:"SESSION"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			// URL points at a hosted database; connections made with it always use SSL.
			URL            string `envconfig:"URL"`
			Host           string `envconfig:"HOST"`
			Port           string `envconfig:"PORT"`
			Username       string `envconfig:"USER"`
			Password       string `envconfig:"PASSWORD"`
			Name           string `envconfig:"NAME"`
			MaxRetry       int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MaxConnections int    `envconfig:"MAX_CONNECTIONS" default:"10"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

const (
	SSLModeRequire = "require"
	SSLModeDisable = "disable"
)

// DurableStorage reports whether a relational database is configured. When it
// is not, todo lists live in the visitor's session only.
func (c *Config) DurableStorage() bool {
	return c.DB.Postgres.URL != "" || c.DB.Postgres.Host != ""
}

// PostgresSSLMode is fixed by the kind of database configuration: a URL means
// a hosted database reached over SSL, discrete host settings mean a local one.
func (c *Config) PostgresSSLMode() string {
	if c.DB.Postgres.URL != "" {
		return SSLModeRequire
	}

	return SSLModeDisable
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Bool("durableStorage", conf.DurableStorage()).Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}
