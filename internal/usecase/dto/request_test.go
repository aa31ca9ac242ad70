package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/building-identifier/internal/usecase/dto"
)

func lookupFrom(values map[string]string) dto.QueryLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestParseIdentifyRequest(t *testing.T) {
	t.Run("all parameters", func(t *testing.T) {
		req, fields := dto.ParseIdentifyRequest(lookupFrom(map[string]string{
			"lat": "40.5", "lon": "-73", "heading": "359.9", "radius_m": "100",
		}))
		require.Empty(t, fields)

		q := req.ToQuery()
		assert.Equal(t, 40.5, q.Position.Lat)
		assert.Equal(t, -73.0, q.Position.Lon)
		assert.Equal(t, 359.9, q.HeadingDeg)
		assert.Equal(t, 100, q.RadiusM)
	})

	t.Run("absent keys stay nil", func(t *testing.T) {
		req, fields := dto.ParseIdentifyRequest(lookupFrom(map[string]string{"LAT": "40"}))
		require.Empty(t, fields)
		assert.Nil(t, req.Lat)
		assert.Nil(t, req.RadiusM)

		req.ApplyDefaults()
		require.NotNil(t, req.RadiusM)
		assert.Equal(t, dto.DefaultRadiusM, *req.RadiusM)
	})

	t.Run("unparsable values", func(t *testing.T) {
		_, fields := dto.ParseIdentifyRequest(lookupFrom(map[string]string{
			"lat": "abc", "lon": "", "heading": "10", "radius_m": "12.5",
		}))
		require.Len(t, fields, 3)

		assert.Equal(t, "lat", fields[0].Field)
		assert.Equal(t, "number", fields[0].Rule)
		assert.Equal(t, "lon", fields[1].Field)
		assert.Equal(t, "number", fields[1].Rule)
		assert.Equal(t, "radius_m", fields[2].Field)
		assert.Equal(t, "integer", fields[2].Rule)
	})
}
