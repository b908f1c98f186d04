package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/logger"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultChannel = "wellbeing.insights"
	defaultTTL     = 10 * time.Minute
	keyPrefix      = "wellbeing:snapshot:"
	fieldData      = "data"
)

type RedisConfig struct {
	Addr    string
	Channel string
	TTL     time.Duration
}

// Redis implements SnapshotCache and InsightPublisher on a single client.
type Redis struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
	ttl     time.Duration
}

// NewRedis connects and pings the server.
func NewRedis(cfg RedisConfig, log *logger.Logger) (*Redis, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	if cfg.Channel == "" {
		cfg.Channel = defaultChannel
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Redis{
		log:     log.With("service", "RedisCache"),
		rdb:     rdb,
		channel: cfg.Channel,
		ttl:     cfg.TTL,
	}, nil
}

func snapshotKey(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

func (c *Redis) Get(ctx context.Context, userID uuid.UUID) (*domain.MentalHealthScoreSnapshot, bool, error) {
	raw, err := c.rdb.HGet(ctx, snapshotKey(userID), fieldData).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	snapshot, err := decodeSnapshot(raw)
	if err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.log.Warn("bad cached snapshot", "user_id", userID.String(), "error", err)
		_ = c.rdb.Del(ctx, snapshotKey(userID)).Err()
		return nil, false, nil
	}
	return snapshot, true, nil
}

// storeIfNewer keeps the entry with the highest calculated_at version.
var storeIfNewer = goredis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current and tonumber(current) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'data', ARGV[2])
if tonumber(ARGV[3]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[3])
end
return 1
`)

// Set stores snapshot unless the cache already holds a newer one.
func (c *Redis) Set(ctx context.Context, snapshot *domain.MentalHealthScoreSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	keys := []string{snapshotKey(snapshot.UserID)}
	return storeIfNewer.Run(ctx, c.rdb, keys, snapshotVersion(snapshot), raw, c.ttl.Milliseconds()).Err()
}

// snapshotVersion orders snapshots by calculated_at in milliseconds, which a
// Lua number holds exactly.
func snapshotVersion(snapshot *domain.MentalHealthScoreSnapshot) int64 {
	return snapshot.CalculatedAt.UnixMilli()
}

func (c *Redis) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.rdb.Del(ctx, snapshotKey(userID)).Err()
}

func (c *Redis) PublishInsights(ctx context.Context, userID uuid.UUID, insights []domain.MentalHealthInsight) error {
	if len(insights) == 0 {
		return nil
	}
	raw, err := encodeEvent(userID, insights, time.Now().UTC())
	if err != nil {
		return err
	}
	return c.rdb.Publish(ctx, c.channel, raw).Err()
}

func (c *Redis) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func decodeSnapshot(raw []byte) (*domain.MentalHealthScoreSnapshot, error) {
	var snapshot domain.MentalHealthScoreSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, err
	}
	if snapshot.UserID == uuid.Nil {
		return nil, fmt.Errorf("cached snapshot has no user")
	}
	return &snapshot, nil
}

func encodeEvent(userID uuid.UUID, insights []domain.MentalHealthInsight, at time.Time) ([]byte, error) {
	return json.Marshal(InsightEvent{UserID: userID, Insights: insights, PublishedAt: at})
}
