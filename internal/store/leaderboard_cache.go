package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	leaderboardVersionKey      = "leaderboard::version"
	DefaultLeaderboardCacheTTL = 5 * time.Minute
)

// LeaderboardCache keeps computed leaderboards in redis. Cache keys carry a version
// which every attempt or profile write bumps, so a write is visible on the next read.
// All other calls go straight to the wrapped store.
type LeaderboardCache struct {
	Store
	redisClient *redis.Client
	ttl         time.Duration
}

func NewLeaderboardCache(store Store, redisClient *redis.Client, ttl time.Duration) *LeaderboardCache {
	if ttl <= 0 {
		ttl = DefaultLeaderboardCacheTTL
	}
	return &LeaderboardCache{
		Store:       store,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (c *LeaderboardCache) SaveAttempt(ctx context.Context, attempt assessment.Attempt) (*assessment.Attempt, error) {
	saved, err := c.Store.SaveAttempt(ctx, attempt)
	if err != nil {
		return nil, err
	}
	c.bumpVersion(ctx)
	return saved, nil
}

func (c *LeaderboardCache) SaveProfile(ctx context.Context, profile assessment.Profile) (*assessment.Profile, error) {
	saved, err := c.Store.SaveProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	c.bumpVersion(ctx)
	return saved, nil
}

func (c *LeaderboardCache) GetLeaderboard(ctx context.Context, query LeaderboardQuery) (_ []assessment.LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.leaderboardCache.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	version, err := c.redisClient.Get(ctx, leaderboardVersionKey).Result()
	if errors.Is(err, redis.Nil) {
		version = "0"
	} else if err != nil {
		log.Errorf("get leaderboard cache version: %s", err)
		return c.Store.GetLeaderboard(ctx, query)
	}

	key := leaderboardCacheKey(version, query)
	cached, err := c.redisClient.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var entries []assessment.LeaderboardEntry
		if err := json.Unmarshal(cached, &entries); err != nil {
			log.Errorf("unmarshal cached leaderboard [%s]: %s", key, err)
			break
		}
		span.SetAttributes(attribute.Bool("leaderboard.from-cache", true))
		return entries, nil
	case !errors.Is(err, redis.Nil):
		log.Errorf("get cached leaderboard [%s]: %s", key, err)
	}
	span.SetAttributes(attribute.Bool("leaderboard.from-cache", false))

	entries, err := c.Store.GetLeaderboard(ctx, query)
	if err != nil {
		return nil, err
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal leaderboard for cache: %s", err)
		return entries, nil
	}
	if err := c.redisClient.Set(ctx, key, entriesJson, c.ttl).Err(); err != nil {
		log.Errorf("set cached leaderboard [%s]: %s", key, err)
	}

	return entries, nil
}

func (c *LeaderboardCache) bumpVersion(ctx context.Context) {
	// stale entries are bounded by the ttl if this fails
	if err := c.redisClient.Incr(ctx, leaderboardVersionKey).Err(); err != nil {
		log.Errorf("bump leaderboard cache version: %s", err)
	}
}

func leaderboardCacheKey(version string, query LeaderboardQuery) string {
	return fmt.Sprintf(
		"leaderboard::v%s::%s::%s::%s::%d",
		version, query.Level, query.sportFilter(), query.Region, query.limit(),
	)
}
