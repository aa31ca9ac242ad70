package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/building-identifier/internal/domain"
	"github.com/building-identifier/internal/repository/postgres"
	"github.com/building-identifier/internal/repository/postgres/testhelpers"
)

func setupAuditRepo(t *testing.T) (*testhelpers.TestDB, *postgres.DB) {
	t.Helper()

	tdb := testhelpers.SetupTestDB(t)
	t.Cleanup(tdb.Close)

	db := postgres.NewDBForTest(tdb.DB, tdb.Logger)
	ctx := context.Background()

	require.NoError(t, db.Migrate(ctx))
	// Second run must be a no-op
	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, tdb.Cleanup(ctx))

	return tdb, db
}

func newEvent(buildingID string, ts time.Time) *domain.IdentificationEvent {
	return &domain.IdentificationEvent{
		EventID: uuid.New(),
		Query: domain.IdentifyQuery{
			Position:   domain.Coordinate{Lat: 40.0, Lon: -73.0},
			HeadingDeg: 10,
			RadiusM:    100,
		},
		BuildingID:  buildingID,
		BearingDeg:  22,
		Confidence:  0.84,
		TimestampMs: ts.UnixMilli(),
	}
}

func TestAuditRepository_SaveEvent(t *testing.T) {
	tdb, db := setupAuditRepo(t)
	repo := postgres.NewAuditRepository(db)
	ctx := context.Background()

	event := newEvent("MOCK_1", time.Now())

	inserted, err := repo.SaveEvent(ctx, event)
	require.NoError(t, err)
	assert.True(t, inserted)

	// Redelivery of the same event is ignored
	inserted, err = repo.SaveEvent(ctx, event)
	require.NoError(t, err)
	assert.False(t, inserted)

	var stored struct {
		BuildingID string  `db:"building_id"`
		RadiusM    int     `db:"radius_m"`
		BearingDeg float64 `db:"bearing_deg"`
	}
	err = tdb.DB.GetContext(ctx, &stored,
		"SELECT building_id, radius_m, bearing_deg FROM identification_events WHERE event_id = $1",
		event.EventID.String())
	require.NoError(t, err)
	assert.Equal(t, "MOCK_1", stored.BuildingID)
	assert.Equal(t, 100, stored.RadiusM)
	assert.Equal(t, 22.0, stored.BearingDeg)
}

func TestAuditRepository_Stats(t *testing.T) {
	_, db := setupAuditRepo(t)
	repo := postgres.NewAuditRepository(db)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalIdentifications)
		assert.Equal(t, int64(0), stats.DistinctBuildings)
	})

	t.Run("aggregates stored events", func(t *testing.T) {
		first := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		last := first.Add(2 * time.Hour)

		for _, e := range []*domain.IdentificationEvent{
			newEvent("MOCK_1", first),
			newEvent("MOCK_1", first.Add(time.Hour)),
			newEvent("MOCK_2", last),
		} {
			_, err := repo.SaveEvent(ctx, e)
			require.NoError(t, err)
		}

		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalIdentifications)
		assert.Equal(t, int64(2), stats.DistinctBuildings)
		assert.True(t, first.Equal(stats.FirstSeen), "first seen %v", stats.FirstSeen)
		assert.True(t, last.Equal(stats.LastSeen), "last seen %v", stats.LastSeen)
	})
}
