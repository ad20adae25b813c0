package redis

import (
	"context"

	"github.com/povarna/algo-drills/internal/models"
	"github.com/redis/go-redis/v9"
)

type Producer struct {
	client *redis.Client
	stream string
}

func NewProducer(client *redis.Client, stream string) *Producer {
	return &Producer{client: client, stream: stream}
}

// Publish appends req to the request stream and returns the entry ID.
func (p *Producer) Publish(ctx context.Context, req models.SolveRequest) (string, error) {
	values, err := EncodeRequest(req)
	if err != nil {
		return "", err
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Result()
}
