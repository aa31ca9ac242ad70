package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/building-identifier/internal/domain"
	"github.com/building-identifier/internal/domain/repository"
	"github.com/building-identifier/internal/metrics"
	"github.com/building-identifier/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second
	retryBackoff    = 200 * time.Millisecond

	// Сообщения другого consumer'а, простаивающие дольше pendingMinIdle, забираются
	// раз в claimInterval
	pendingMinIdle = time.Minute
	claimInterval  = 30 * time.Second
	ackTimeout     = 5 * time.Second
)

// errInterrupted - запись прервана остановкой воркера, сообщение остаётся в PEL
var errInterrupted = errors.New("record interrupted by shutdown")

// EventRecorder сохраняет события идентификации
type EventRecorder interface {
	Record(ctx context.Context, event *domain.IdentificationEvent) (bool, error)
	Stats(ctx context.Context) (*domain.AuditStats, error)
}

// AuditWorker переносит события идентификации из Redis Stream в журнал
type AuditWorker struct {
	*worker.BaseWorker
	streamRepo    repository.StreamRepository
	recorder      EventRecorder
	metrics       *metrics.Metrics
	stream        string
	consumerName  string
	maxRetries    int
	statsInterval time.Duration
	retryBackoff  time.Duration
}

// NewAuditWorker создает новый AuditWorker
func NewAuditWorker(
	streamRepo repository.StreamRepository,
	recorder EventRecorder,
	m *metrics.Metrics,
	stream string,
	consumerGroup string,
	maxRetries int,
	statsInterval time.Duration,
	logger *zap.Logger,
) *AuditWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if maxRetries < 1 {
		maxRetries = 1
	}

	return &AuditWorker{
		BaseWorker:    worker.NewBaseWorker("identification-audit", consumerGroup, logger),
		streamRepo:    streamRepo,
		recorder:      recorder,
		metrics:       m,
		stream:        stream,
		consumerName:  consumerName,
		maxRetries:    maxRetries,
		statsInterval: statsInterval,
		retryBackoff:  retryBackoff,
	}
}

// Start запускает воркер и блокируется до остановки
func (w *AuditWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AuditWorker",
		zap.String("stream", w.stream),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize),
		zap.Int("max_retries", w.maxRetries))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.stream, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	lastStats := time.Now()
	var lastClaim time.Time

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		if time.Since(lastClaim) >= claimInterval {
			if _, err := w.claimPending(ctx); err != nil {
				logger.Error("Failed to claim pending messages", zap.Error(err))
			}
			lastClaim = time.Now()
		}

		processed, err := w.processBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Sleep(ctx, errorSleep)
			continue
		}

		if w.statsInterval > 0 && time.Since(lastStats) >= w.statsInterval {
			w.logStats(ctx)
			lastStats = time.Now()
		}

		if processed == 0 {
			w.Sleep(ctx, emptyQueueSleep)
		}
	}
}

// processBatch читает и обрабатывает batch новых сообщений.
// Возвращает количество прочитанных сообщений.
func (w *AuditWorker) processBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(ctx, w.stream, w.ConsumerGroup(), w.consumerName, maxBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	w.handleMessages(ctx, messages)
	return len(messages), nil
}

// claimPending забирает и обрабатывает сообщения, брошенные остановленными consumer'ами
func (w *AuditWorker) claimPending(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ClaimPending(ctx, w.stream, w.ConsumerGroup(), w.consumerName, pendingMinIdle, maxBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending messages: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	w.handleMessages(ctx, messages)
	return len(messages), nil
}

// handleMessages сохраняет события и подтверждает обработанные сообщения.
// При остановке необработанный остаток batch не подтверждается.
func (w *AuditWorker) handleMessages(ctx context.Context, messages []domain.StreamMessage) {
	logger := w.Logger()

	start := time.Now()
	defer func() {
		w.metrics.AuditBatchSeconds.Observe(time.Since(start).Seconds())
	}()

	var inserted, duplicates, failed, dropped, pending int
	ackIDs := make([]string, 0, len(messages))

	for i, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, dropping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ackIDs = append(ackIDs, msg.ID)
			dropped++
			continue
		}

		ok, err := w.record(ctx, event)
		switch {
		case errors.Is(err, errInterrupted):
			pending = len(messages) - i
		case err != nil:
			logger.Error("Failed to record event, dropping",
				zap.String("message_id", msg.ID),
				zap.String("event_id", event.EventID.String()),
				zap.Int("attempts", w.maxRetries),
				zap.Error(err))
			ackIDs = append(ackIDs, msg.ID)
			failed++
		case ok:
			ackIDs = append(ackIDs, msg.ID)
			inserted++
		default:
			ackIDs = append(ackIDs, msg.ID)
			duplicates++
		}

		if pending > 0 {
			logger.Info("Worker stopping, leaving messages pending",
				zap.Int("pending", pending))
			break
		}
	}

	w.metrics.AuditProcessed.WithLabelValues(metrics.StatusSuccess).Add(float64(inserted))
	w.metrics.AuditProcessed.WithLabelValues(metrics.StatusDuplicate).Add(float64(duplicates))
	w.metrics.AuditProcessed.WithLabelValues(metrics.StatusFailed).Add(float64(failed))
	w.metrics.AuditProcessed.WithLabelValues(metrics.StatusDropped).Add(float64(dropped))

	// ACK всего обработанного, включая битые сообщения, чтобы они не застревали.
	// Контекст отвязан от отмены, чтобы подтверждение дошло и при остановке.
	if len(ackIDs) > 0 {
		ackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ackTimeout)
		if err := w.streamRepo.AckMessages(ackCtx, w.stream, w.ConsumerGroup(), ackIDs); err != nil {
			logger.Error("Failed to ack messages", zap.Error(err))
		}
		cancel()
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("inserted", inserted),
		zap.Int("duplicates", duplicates),
		zap.Int("failed", failed),
		zap.Int("dropped", dropped),
		zap.Int("pending", pending))
}

// record вызывает Record до maxRetries раз. Возвращает errInterrupted, если
// воркер остановлен или контекст отменён, не дожидаясь исчерпания попыток.
func (w *AuditWorker) record(ctx context.Context, event *domain.IdentificationEvent) (bool, error) {
	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		inserted, err := w.recorder.Record(ctx, event)
		if err == nil {
			return inserted, nil
		}
		if ctx.Err() != nil {
			return false, errInterrupted
		}
		lastErr = err

		if attempt < w.maxRetries {
			w.Logger().Warn("Record attempt failed, retrying",
				zap.String("event_id", event.EventID.String()),
				zap.Int("attempt", attempt),
				zap.Error(err))
			if !w.Sleep(ctx, time.Duration(attempt)*w.retryBackoff) {
				return false, errInterrupted
			}
		}
	}
	return false, lastErr
}

func (w *AuditWorker) logStats(ctx context.Context) {
	stats, err := w.recorder.Stats(ctx)
	if err != nil {
		w.Logger().Warn("Failed to load audit stats", zap.Error(err))
		return
	}

	w.Logger().Info("Audit stats",
		zap.Int64("total_identifications", stats.TotalIdentifications),
		zap.Int64("distinct_buildings", stats.DistinctBuildings),
		zap.Time("first_seen", stats.FirstSeen),
		zap.Time("last_seen", stats.LastSeen))
}

func parseMessage(msg domain.StreamMessage) (*domain.IdentificationEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("empty payload")
	}

	var event domain.IdentificationEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	return &event, nil
}
