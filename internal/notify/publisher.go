package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// eventQueueKey - очередь событий для доставки вебхуком
	eventQueueKey = "dispatch_events"

	hospitalChannelPrefix = "dispatch:hospital:"
	userChannelPrefix     = "dispatch:user:"
	requestChannelPrefix  = "dispatch:request:"
)

// EventPublisher - интерфейс публикации событий по логическим каналам
type EventPublisher interface {
	PublishToHospital(ctx context.Context, hospitalID int64, event Event) error
	PublishToUser(ctx context.Context, userID string, event Event) error
	PublishToRequestWatchers(ctx context.Context, requestID int64, event Event) error
}

// RedisEventPublisher - реализация EventPublisher поверх Redis.
// Каждое событие уходит в Pub/Sub канал получателя и дублируется
// в очередь eventQueueKey, которую разбирает вебхук-воркер.
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// PublishToHospital публикует событие в канал больницы
func (p *RedisEventPublisher) PublishToHospital(ctx context.Context, hospitalID int64, event Event) error {
	return p.publish(ctx, fmt.Sprintf("%s%d", hospitalChannelPrefix, hospitalID), event)
}

// PublishToUser публикует событие в канал пользователя
func (p *RedisEventPublisher) PublishToUser(ctx context.Context, userID string, event Event) error {
	return p.publish(ctx, userChannelPrefix+userID, event)
}

// PublishToRequestWatchers публикует событие в канал наблюдателей запроса
func (p *RedisEventPublisher) PublishToRequestWatchers(ctx context.Context, requestID int64, event Event) error {
	return p.publish(ctx, fmt.Sprintf("%s%d", requestChannelPrefix, requestID), event)
}

func (p *RedisEventPublisher) publish(ctx context.Context, channel string, event Event) error {
	event.Channel = channel
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.Type, err)
	}

	if err := p.redisClient.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event %s to %s: %w", event.Type, channel, err)
	}

	// Очередь для внешней доставки; Pub/Sub уже состоялся, поэтому ошибку возвращаем отдельно
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue event %s for webhook delivery: %w", event.Type, err)
	}
	return nil
}
