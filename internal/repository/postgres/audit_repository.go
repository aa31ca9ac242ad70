package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/building-identifier/internal/domain"
	"github.com/building-identifier/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// undefinedTable - SQLSTATE для отсутствующей таблицы
const undefinedTable = "42P01"

type auditRepository struct {
	db *DB
}

// NewAuditRepository создает репозиторий журнала идентификаций
func NewAuditRepository(db *DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

const insertEventQuery = `
	INSERT INTO identification_events (
		event_id, building_id, lat, lon, heading_deg, radius_m,
		bearing_deg, confidence, identified_at
	) VALUES (
		:event_id, :building_id, :lat, :lon, :heading_deg, :radius_m,
		:bearing_deg, :confidence, :identified_at
	)
	ON CONFLICT (event_id) DO NOTHING`

type eventRow struct {
	EventID      string    `db:"event_id"`
	BuildingID   string    `db:"building_id"`
	Lat          float64   `db:"lat"`
	Lon          float64   `db:"lon"`
	HeadingDeg   float64   `db:"heading_deg"`
	RadiusM      int       `db:"radius_m"`
	BearingDeg   float64   `db:"bearing_deg"`
	Confidence   float64   `db:"confidence"`
	IdentifiedAt time.Time `db:"identified_at"`
}

func (r *auditRepository) SaveEvent(ctx context.Context, event *domain.IdentificationEvent) (bool, error) {
	row := eventRow{
		EventID:      event.EventID.String(),
		BuildingID:   event.BuildingID,
		Lat:          event.Query.Position.Lat,
		Lon:          event.Query.Position.Lon,
		HeadingDeg:   event.Query.HeadingDeg,
		RadiusM:      event.Query.RadiusM,
		BearingDeg:   event.BearingDeg,
		Confidence:   event.Confidence,
		IdentifiedAt: time.UnixMilli(event.TimestampMs).UTC(),
	}

	res, err := r.db.NamedExecContext(ctx, insertEventQuery, row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
			r.db.logger.Error("Audit table is missing, run migrations", zap.String("message", pgErr.Message))
		}
		return false, fmt.Errorf("insert identification event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return affected > 0, nil
}

const statsQuery = `
	SELECT
		COUNT(*)                    AS total_identifications,
		COUNT(DISTINCT building_id) AS distinct_buildings,
		COALESCE(MIN(identified_at), to_timestamp(0)) AS first_seen,
		COALESCE(MAX(identified_at), to_timestamp(0)) AS last_seen
	FROM identification_events`

func (r *auditRepository) Stats(ctx context.Context) (*domain.AuditStats, error) {
	var stats domain.AuditStats
	if err := r.db.GetContext(ctx, &stats, statsQuery); err != nil {
		return nil, fmt.Errorf("query audit stats: %w", err)
	}
	return &stats, nil
}
