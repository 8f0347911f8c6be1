package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error)
	ResetLoginAttempts(ctx context.Context, email string) error
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.RateConfig
	now    func() time.Time
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.RedisConnect.Username, cfg.RedisConnect.Host, cfg.RedisConnect.Port)))

	// Parse the Redis URL
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil

}

func NewRateLimitRepo(client *redis.Client, cfg *config.RateConfig) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg, now: time.Now}
}

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// Sliding window over a sorted set scored by attempt time.
// Returns isAllowed, attempts left, seconds to wait, error
func (r *redisRepository) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsKey(email)

	now := r.now()
	window := int64(r.cfg.WindowSize.Seconds())

	// only attempts after windowStart are counted
	windowStart := now.Unix() - window

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))

	// nanosecond member keeps attempts within the same second distinct
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.Unix()), Member: now.UnixNano()})

	count := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.MaxAttempts - attempts

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{
			Key: key, Start: 0, Stop: 0,
		}).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(window), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		oldestTimestamp := int64(scores[0].Score)

		retryAfter := max((oldestTimestamp+window)-now.Unix(), 0)

		logger.Warn("Rate limit exceeded for user", slog.String("email", email), slog.Int64("attempts", attempts))
		return false, 0, int(retryAfter), nil
	}

	logger.Debug("Rate limit check passed", slog.String("email", email), slog.Int64("attempts", attempts), slog.Int64("remaining", remaining))
	return true, int(remaining), 0, nil
}

// ResetLoginAttempts clears the window after a successful login.
func (r *redisRepository) ResetLoginAttempts(ctx context.Context, email string) error {

	if err := r.client.Del(ctx, loginAttemptsKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}
