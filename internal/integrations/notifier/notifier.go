package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultKey список Redis, из которого сервис рассылки забирает сообщения
const DefaultKey = "barberqueue:notifications"

// RedisNotifier кладет сообщения в Redis-список (LPUSH), доставка не наша забота
type RedisNotifier struct {
	rdb     redis.Cmdable
	key     string
	log     Logger
	metrics MetricsRecorder
}

// NewRedisNotifier создает notifier поверх Redis
func NewRedisNotifier(rdb redis.Cmdable, key string, log Logger, metrics MetricsRecorder) *RedisNotifier {
	if key == "" {
		key = DefaultKey
	}
	return &RedisNotifier{
		rdb:     rdb,
		key:     key,
		log:     log,
		metrics: metrics,
	}
}

// Notify сериализует сообщение и кладет его в outbox
func (n *RedisNotifier) Notify(ctx context.Context, msg Message) error {
	err := n.push(ctx, msg)
	if n.metrics != nil {
		n.metrics.RecordNotification(msg.Type, err)
	}
	if err != nil {
		n.log.Error("Notifier: failed to enqueue %s for %s: %v", msg.Type, msg.EntityID, err)
		return err
	}

	n.log.Info("Notifier: enqueued %s for %s (shop=%s)", msg.Type, msg.EntityID, msg.ShopID)
	return nil
}

func (n *RedisNotifier) push(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if err := n.rdb.LPush(ctx, n.key, data).Err(); err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrPush, n.key, err)
	}
	return nil
}

// LogNotifier используется, когда Redis выключен: сообщение только пишется в лог
type LogNotifier struct {
	log     Logger
	metrics MetricsRecorder
}

func NewLogNotifier(log Logger, metrics MetricsRecorder) *LogNotifier {
	return &LogNotifier{log: log, metrics: metrics}
}

func (n *LogNotifier) Notify(_ context.Context, msg Message) error {
	if n.metrics != nil {
		n.metrics.RecordNotification(msg.Type, nil)
	}
	n.log.Info("Notifier (log only): %s for %s (shop=%s)", msg.Type, msg.EntityID, msg.ShopID)
	return nil
}
