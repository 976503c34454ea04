package redis_client

import (
	"context"
	"strconv"

	"github.com/railboard/railboard/pkg/util"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Client *redis.Client

const defaultDatabase = 0

// Connect sets up the shared redis client used by the feed cache.
// Redis is optional here - when no address is configured the client
// stays nil and callers run uncached.
func Connect() error {
	env := util.GetEnvironmentVariables()

	address := env["RAILBOARD_REDIS_ADDRESS"]
	if address == "" {
		log.Info().Msg("Skipping redis setup, feed cache disabled")
		return nil
	}

	password := env["RAILBOARD_REDIS_PASSWORD"]

	database := defaultDatabase
	if env["RAILBOARD_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["RAILBOARD_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := client.Ping(context.Background())
	if err := statusCmd.Err(); err != nil {
		return err
	}

	Client = client

	log.Info().Str("address", address).Msg("Connected to redis")

	return nil
}
