package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GhostCrab/parlay-club-server/internal/league"
)

// Stream names. Downstream consumers (notification jobs, the web frontend's
// event bridge) read these; changing them is a breaking change.
const (
	gameUpdateStream = "games.updates.nfl"
	pickUpdateStream = "picks.updates.nfl"
)

// RedisStreamPublisher publishes update events to Redis streams
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a new Redis stream publisher from existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
	}
}

// PublishGameUpdates publishes one poll cycle's game delta to the stream.
// The whole delta goes out as a single entry so consumers see a poll cycle
// atomically.
func (rsp *RedisStreamPublisher) PublishGameUpdates(ctx context.Context, games []league.GameData) error {
	if len(games) == 0 {
		return nil
	}

	data, err := json.Marshal(games)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: gameUpdateStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}

// PublishPickUpdate publishes an accepted pick set to the stream
func (rsp *RedisStreamPublisher) PublishPickUpdate(ctx context.Context, set league.PickSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: pickUpdateStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
