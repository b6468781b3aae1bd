package ionotify

import (
	"context"
	"log/slog"

	"github.com/gnames/gnfmt"
	"github.com/go-redis/redis/v8"
	"github.com/sigapair/airlab/pkg/config"
	"github.com/sigapair/airlab/pkg/lifecycle"
)

type redisNotifier struct {
	client *redis.Client
	stream string
}

// NewRedisClient creates a client from the notify settings.
func NewRedisClient(cfg config.NotifyConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewRedisNotifier creates a notifier that appends notifications to a
// Redis stream. Each entry has the notification id, user id, type and
// the JSON encoded notification under "data".
func NewRedisNotifier(client *redis.Client, stream string) lifecycle.Notifier {
	return &redisNotifier{client: client, stream: stream}
}

// Notify publishes the notification with XADD.
func (n *redisNotifier) Notify(ctx context.Context, msg lifecycle.Notification) error {
	data, err := gnfmt.GNjson{}.Encode(msg)
	if err != nil {
		return PublishError(msg.ID, n.stream, err)
	}

	id, err := n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		Values: map[string]any{
			"id":      msg.ID,
			"user_id": msg.UserID,
			"type":    string(msg.Type),
			"data":    string(data),
		},
	}).Result()
	if err != nil {
		return PublishError(msg.ID, n.stream, err)
	}

	slog.Debug("Notification published",
		"stream", n.stream, "entry", id, "notification_id", msg.ID)
	return nil
}
