package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/algo-drills/internal/models"
	red "github.com/povarna/algo-drills/internal/redis"
	"github.com/povarna/algo-drills/internal/setup"
	"github.com/povarna/algo-drills/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON SolveRequest")
	stream := flag.String("stream", "", "Stream name, REQUEST_STREAM when empty")
	flag.Parse()

	if *data == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>'")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*data, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(data, stream string) error {
	_ = godotenv.Load()

	cfg := setup.LoadConfig()
	if stream == "" {
		stream = cfg.RequestStream
	}

	var req models.SolveRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 3)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := redis.NewProducer(client, stream).Publish(ctx, req)
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("request_id", req.RequestID).Msg("Published successfully!")
	return nil
}
