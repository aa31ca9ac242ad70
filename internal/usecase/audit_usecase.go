package usecase

import (
	"context"
	"fmt"

	"github.com/building-identifier/internal/domain"
	"github.com/building-identifier/internal/domain/repository"
	"go.uber.org/zap"
)

// AuditUseCase обрабатывает бизнес-логику журнала идентификаций
type AuditUseCase struct {
	auditRepo repository.AuditRepository
	logger    *zap.Logger
}

// NewAuditUseCase создает новый экземпляр AuditUseCase
func NewAuditUseCase(auditRepo repository.AuditRepository, logger *zap.Logger) *AuditUseCase {
	return &AuditUseCase{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record сохраняет событие. Для уже сохранённого события возвращает false
// без ошибки.
func (uc *AuditUseCase) Record(ctx context.Context, event *domain.IdentificationEvent) (bool, error) {
	if err := event.Validate(); err != nil {
		return false, fmt.Errorf("invalid identification event: %w", err)
	}

	inserted, err := uc.auditRepo.SaveEvent(ctx, event)
	if err != nil {
		return false, fmt.Errorf("save identification event: %w", err)
	}

	if !inserted {
		uc.logger.Debug("Identification event already recorded",
			zap.String("event_id", event.EventID.String()))
	}

	return inserted, nil
}

// Stats возвращает агрегированную статистику
func (uc *AuditUseCase) Stats(ctx context.Context) (*domain.AuditStats, error) {
	stats, err := uc.auditRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get audit stats: %w", err)
	}
	return stats, nil
}
