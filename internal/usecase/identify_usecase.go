package usecase

import (
	"context"
	"time"

	"github.com/building-identifier/internal/domain"
	"github.com/building-identifier/internal/domain/repository"
	"github.com/building-identifier/internal/metrics"
	"github.com/building-identifier/internal/pkg/utils"
	"github.com/building-identifier/internal/usecase/dto"
	"go.uber.org/zap"
)

// Фиксированный результат идентификации. За этими значениями нет базы зданий,
// это константы и смещения.
const (
	MockBuildingID    = "MOCK_1"
	MockBuildingLabel = "Mock building"
	MockConfidence    = 0.84
	MockBearingOffset = 12.0
	MockDeltaDeg      = 12.0
	MockDistanceM     = 38.0
	MockCentroidDLat  = 0.0002
	MockCentroidDLon  = 0.0001
	MockEstimate      = 720000
	MockForecast12m   = 741600
	MockRangeLow      = 700000
	MockRangeHigh     = 780000

	// ConeDeg - ширина сектора поиска
	ConeDeg = 60

	publishTimeout = 2 * time.Second
)

// IdentifyUseCase - use case для идентификации здания по позиции и азимуту
type IdentifyUseCase struct {
	publisher repository.EventPublisher
	stream    string
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewIdentifyUseCase создает новый IdentifyUseCase.
// publisher может быть nil, тогда события не публикуются.
func NewIdentifyUseCase(
	publisher repository.EventPublisher,
	stream string,
	m *metrics.Metrics,
	logger *zap.Logger,
) *IdentifyUseCase {
	return &IdentifyUseCase{
		publisher: publisher,
		stream:    stream,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock used for timestamps.
func (uc *IdentifyUseCase) WithClock(now func() time.Time) *IdentifyUseCase {
	uc.now = now
	return uc
}

// Identify строит ответ для уже провалидированного запроса.
// Ошибки публикации события только логируются и считаются в метриках.
func (uc *IdentifyUseCase) Identify(ctx context.Context, q domain.IdentifyQuery) *dto.IdentifyResponse {
	nowMs := uc.now().UnixMilli()

	building := domain.BuildingMatch{
		BuildingID:  MockBuildingID,
		Label:       MockBuildingLabel,
		Confidence:  MockConfidence,
		BearingDeg:  utils.NormalizeDegrees(q.HeadingDeg + MockBearingOffset),
		DeltaDeg:    MockDeltaDeg,
		DistanceM:   MockDistanceM,
		Centroid:    q.Position.Offset(MockCentroidDLat, MockCentroidDLon),
		Estimate:    MockEstimate,
		Forecast12m: MockForecast12m,
		RangeLow:    MockRangeLow,
		RangeHigh:   MockRangeHigh,
	}

	meta := domain.RequestMeta{
		RadiusM:     q.RadiusM,
		ConeDeg:     ConeDeg,
		HeadingDeg:  q.HeadingDeg,
		TimestampMs: nowMs,
	}

	uc.logger.Debug("Building identified",
		zap.Float64("lat", q.Position.Lat),
		zap.Float64("lon", q.Position.Lon),
		zap.Float64("heading", q.HeadingDeg),
		zap.Int("radius_m", q.RadiusM),
		zap.String("building_id", building.BuildingID),
	)

	if uc.publisher != nil {
		uc.publish(ctx, domain.NewIdentificationEvent(q, building, nowMs))
	}

	return &dto.IdentifyResponse{
		Building: building,
		Meta:     meta,
	}
}

func (uc *IdentifyUseCase) publish(ctx context.Context, event *domain.IdentificationEvent) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := uc.publisher.PublishToStream(ctx, uc.stream, event); err != nil {
		uc.metrics.EventsPublished.WithLabelValues(metrics.StatusFailed).Inc()
		uc.logger.Warn("Failed to publish identification event",
			zap.String("event_id", event.EventID.String()),
			zap.String("stream", uc.stream),
			zap.Error(err))
		return
	}

	uc.metrics.EventsPublished.WithLabelValues(metrics.StatusSuccess).Inc()
}
