package stream

import (
	"context"
	"fmt"

	red "github.com/povarna/algo-drills/internal/redis"
	"github.com/povarna/algo-drills/internal/stream/redis"
	"github.com/rs/zerolog"
)

const connectRetries = 5

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	exec redis.Executor,
	logger *zerolog.Logger,
) (StreamConsumer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("stream config required")
	}

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderRedis
	}

	switch provider {
	case ProviderRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := red.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			connectRetries,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, exec, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
