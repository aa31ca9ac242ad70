package repository

import (
	"context"
	"time"

	"github.com/building-identifier/internal/domain"
)

// EventPublisher публикует сообщения в стрим
type EventPublisher interface {
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	EventPublisher

	// ConsumeBatch читает до maxCount новых сообщений для consumer group
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// ClaimPending забирает на consumer неподтверждённые сообщения,
	// которые простаивают дольше minIdle
	ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration, maxCount int) ([]domain.StreamMessage, error)

	// AckMessages подтверждает обработку нескольких сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error
}
