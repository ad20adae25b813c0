package stream

import "github.com/povarna/algo-drills/internal/stream/redis"

const ProviderRedis = "redis"

type StreamConfig struct {
	Provider    string // redis is the only provider so far
	RedisConfig *redis.RedisStreamConfig
}

func NewStreamConfig(provider string, redisConfig *redis.RedisStreamConfig) *StreamConfig {
	return &StreamConfig{
		Provider:    provider,
		RedisConfig: redisConfig,
	}
}
