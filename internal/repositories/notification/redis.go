package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key for the capped notification list
	notificationsKey = "notifications:recent"
)

// Config holds configuration for the Redis notification repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxEntries caps the list length; DefaultMaxEntries when zero
	MaxEntries int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxEntries int
}

// NewRedis creates a new Redis-backed notification repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxEntries: maxEntries,
	}, nil
}

// SaveNotification pushes a notification onto the head of the list and trims the tail
func (r *redisRepository) SaveNotification(ctx context.Context, input *SaveNotificationInput) error {
	if err := validateSave(input); err != nil {
		return err
	}

	notificationJSON, err := json.Marshal(input.Notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, notificationsKey, notificationJSON)
	pipe.LTrim(ctx, notificationsKey, 0, int64(r.maxEntries-1))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}

// GetRecentNotifications reads the newest notifications from the list
func (r *redisRepository) GetRecentNotifications(ctx context.Context, input *GetRecentNotificationsInput) (*GetRecentNotificationsOutput, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	entries, err := r.client.LRange(ctx, notificationsKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]*models.Notification, 0, len(entries))
	for _, entry := range entries {
		var n models.Notification
		if err := json.Unmarshal([]byte(entry), &n); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
		}
		notifications = append(notifications, &n)
	}

	return &GetRecentNotificationsOutput{
		Notifications: notifications,
	}, nil
}
