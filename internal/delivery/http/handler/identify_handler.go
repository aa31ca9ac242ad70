package handler

import (
	"time"

	"github.com/building-identifier/internal/metrics"
	"github.com/building-identifier/internal/pkg/errors"
	"github.com/building-identifier/internal/pkg/utils"
	"github.com/building-identifier/internal/pkg/validator"
	"github.com/building-identifier/internal/usecase"
	"github.com/building-identifier/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IdentifyHandler - обработчик запросов идентификации здания
type IdentifyHandler struct {
	identifyUC *usecase.IdentifyUseCase
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewIdentifyHandler - создание нового IdentifyHandler
func NewIdentifyHandler(identifyUC *usecase.IdentifyUseCase, m *metrics.Metrics, logger *zap.Logger) *IdentifyHandler {
	return &IdentifyHandler{
		identifyUC: identifyUC,
		metrics:    m,
		logger:     logger,
	}
}

// Identify godoc
// @Summary Identify the building in front of the observer
// @Description Returns the building matched for a position, compass heading and search radius. Parameters are validated before any lookup runs.
// @Tags Identify
// @Produce json
// @Param lat query number true "Observer latitude"
// @Param lon query number true "Observer longitude"
// @Param heading query number true "Compass heading in degrees, 0 <= heading < 360"
// @Param radius_m query int false "Search radius in meters, 10..500" default(150)
// @Success 200 {object} dto.IdentifyResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /identify [get]
func (h *IdentifyHandler) Identify(c *fiber.Ctx) error {
	start := time.Now()

	req, fields := dto.ParseIdentifyRequest(queryLookup(c))
	if len(fields) > 0 {
		h.metrics.IdentifyRequests.WithLabelValues(metrics.OutcomeInvalid).Inc()
		h.logger.Debug("Malformed identify query", zap.Any("fields", fields))
		return utils.SendError(c, errors.NewValidationError(fields))
	}

	req.ApplyDefaults()

	if err := validator.Validate(req); err != nil {
		h.metrics.IdentifyRequests.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return utils.SendError(c, err)
	}

	result := h.identifyUC.Identify(c.Context(), req.ToQuery())

	h.metrics.IdentifyRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	h.metrics.IdentifySeconds.Observe(time.Since(start).Seconds())

	return c.JSON(result)
}

// queryLookup ищет параметр по точному имени ключа. Для повторяющегося ключа
// берётся последнее значение.
func queryLookup(c *fiber.Ctx) dto.QueryLookup {
	args := c.Context().QueryArgs()
	return func(key string) (string, bool) {
		values := args.PeekMulti(key)
		if len(values) == 0 {
			return "", false
		}
		return string(values[len(values)-1]), true
	}
}
