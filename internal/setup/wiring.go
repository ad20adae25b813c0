package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/povarna/algo-drills/internal/api"
	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/database"
	"github.com/povarna/algo-drills/internal/executor"
	"github.com/povarna/algo-drills/internal/problems"
	"github.com/povarna/algo-drills/internal/stream"
	"github.com/povarna/algo-drills/internal/stream/redis"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel       string
	APIPort        string
	StreamProvider string
	RedisAddr      string
	RedisPassword  string
	RequestStream  string
	ResultStream   string
	ConsumerGroup  string
	ConsumerName   string
	DBRetries      int
	Postgres       database.Config
}

type Dependencies struct {
	Catalog  *problems.Catalog
	Executor *executor.Executor
	History  api.HistoryReader
	Logger   *zerolog.Logger

	db *database.DB
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		APIPort:        getEnv("DRILLS_API_PORT", "18082"),
		StreamProvider: getEnv("STREAM_PROVIDER", stream.ProviderRedis),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RequestStream:  getEnv("REQUEST_STREAM", "drill-requests"),
		ResultStream:   getEnv("RESULT_STREAM", "drill-results"),
		ConsumerGroup:  getEnv("CONSUMER_GROUP", "drill-group"),
		ConsumerName:   getEnv("HOSTNAME", "drills-worker"),
		DBRetries:      getEnvInt("POSTGRES_RETRIES", 3),
		Postgres: database.Config{
			Host:     getEnv("POSTGRES_HOST", ""),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "drills"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "drills"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
	}
}

// HistoryEnabled reports whether a Postgres host is configured.
func (c *Config) HistoryEnabled() bool {
	return c.Postgres.Host != ""
}

func (c *Config) StreamConfig() *stream.StreamConfig {
	return stream.NewStreamConfig(
		c.StreamProvider,
		redis.NewRedisStreamConfig(
			c.RedisAddr,
			c.RedisPassword,
			c.RequestStream,
			c.ResultStream,
			c.ConsumerGroup,
			c.ConsumerName,
		),
	)
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	// Load problem catalog from YAML
	catalogConfig, err := config.LoadCatalogConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load problem config: %w", err)
	}

	return WireCatalog(ctx, cfg, catalogConfig, logger)
}

// WireCatalog builds the dependencies from an already loaded catalog config.
func WireCatalog(ctx context.Context, cfg *Config, catalogConfig *config.CatalogConfig, logger *zerolog.Logger) (*Dependencies, error) {
	catalog, err := problems.NewCatalog(catalogConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build problem catalog: %w", err)
	}

	deps := &Dependencies{
		Catalog: catalog,
		Logger:  logger,
	}

	// History store is optional
	var store executor.ResultStore
	if cfg.HistoryEnabled() {
		db, err := database.NewWithBackoff(ctx, cfg.Postgres, cfg.DBRetries)
		if err != nil {
			return nil, fmt.Errorf("failed to connect history store: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}

		deps.db = db
		deps.History = db
		store = db
	} else {
		logger.Info().Msg("POSTGRES_HOST not set, history store disabled")
	}

	deps.Executor = executor.NewExecutor(catalog, store, logger)

	return deps, nil
}

// Close releases the history store connection, if any.
func (d *Dependencies) Close() {
	if d.db != nil {
		d.db.Close()
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
