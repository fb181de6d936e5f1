package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GhostCrab/parlay-club-server/internal/league"
)

// Cache key layout. Week snapshots carry a TTL so a scheduler outage cannot
// serve stale lines forever; the current week pointer is refreshed on every
// recompute and never expires.
const (
	keyCurrentWeek = "parlay:week:current"
	keyWeekGames   = "parlay:games:week:%d"

	weekGamesTTL = 6 * time.Hour
)

// RedisCache handles caching and fast state storage
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// SetCurrentWeek stores the league-wide current week pointer
func (rc *RedisCache) SetCurrentWeek(ctx context.Context, week int) error {
	return rc.client.Set(ctx, keyCurrentWeek, week, 0).Err()
}

// GetCurrentWeek retrieves the cached current week pointer. A cache miss
// returns (0, nil); callers fall back to recomputing from the collection.
func (rc *RedisCache) GetCurrentWeek(ctx context.Context) (int, error) {
	val, err := rc.client.Get(ctx, keyCurrentWeek).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}

// SetWeekGames caches one week's game snapshots as a JSON blob
func (rc *RedisCache) SetWeekGames(ctx context.Context, week int, games []league.GameData) error {
	blob, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("marshaling week %d games: %w", week, err)
	}
	key := fmt.Sprintf(keyWeekGames, week)
	return rc.client.Set(ctx, key, blob, weekGamesTTL).Err()
}

// GetWeekGames retrieves one week's cached snapshots. A cache miss returns
// (nil, nil).
func (rc *RedisCache) GetWeekGames(ctx context.Context, week int) ([]league.GameData, error) {
	key := fmt.Sprintf(keyWeekGames, week)
	blob, err := rc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var games []league.GameData
	if err := json.Unmarshal(blob, &games); err != nil {
		return nil, fmt.Errorf("unmarshaling week %d games: %w", week, err)
	}
	return games, nil
}

// InvalidateWeek drops one week's cached snapshots
func (rc *RedisCache) InvalidateWeek(ctx context.Context, week int) error {
	return rc.client.Del(ctx, fmt.Sprintf(keyWeekGames, week)).Err()
}
