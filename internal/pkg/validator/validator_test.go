package validator_test

import (
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/building-identifier/internal/pkg/errors"
	"github.com/building-identifier/internal/pkg/validator"
	"github.com/building-identifier/internal/usecase/dto"
)

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

func validRequest() dto.IdentifyRequest {
	return dto.IdentifyRequest{
		Lat:     ptrFloat64(40.0),
		Lon:     ptrFloat64(-73.0),
		Heading: ptrFloat64(10),
		RadiusM: ptrInt(100),
	}
}

func fieldsOf(t *testing.T, err error) []errors.FieldError {
	t.Helper()
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok, "expected *errors.AppError, got %T", err)
	assert.Equal(t, errors.CodeValidation, appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.StatusCode)

	fields, ok := appErr.Details["fields"].([]errors.FieldError)
	require.True(t, ok)
	return fields
}

func TestValidate_IdentifyRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("zero coordinates are accepted", func(t *testing.T) {
		req := validRequest()
		req.Lat = ptrFloat64(0)
		req.Lon = ptrFloat64(0)
		req.Heading = ptrFloat64(0)
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("heading bounds", func(t *testing.T) {
		for _, h := range []float64{360, -1, 360.5, math.NaN()} {
			req := validRequest()
			req.Heading = ptrFloat64(h)

			fields := fieldsOf(t, validator.Validate(&req))
			require.Len(t, fields, 1)
			assert.Equal(t, "heading", fields[0].Field)
		}

		req := validRequest()
		req.Heading = ptrFloat64(359.999)
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("radius bounds", func(t *testing.T) {
		for _, r := range []int{9, 501, 0} {
			req := validRequest()
			req.RadiusM = ptrInt(r)

			fields := fieldsOf(t, validator.Validate(&req))
			require.Len(t, fields, 1)
			assert.Equal(t, "radius_m", fields[0].Field)
		}

		for _, r := range []int{10, 500} {
			req := validRequest()
			req.RadiusM = ptrInt(r)
			assert.NoError(t, validator.Validate(&req))
		}
	})

	t.Run("missing parameters are reported by query name", func(t *testing.T) {
		req := dto.IdentifyRequest{RadiusM: ptrInt(150)}

		fields := fieldsOf(t, validator.Validate(&req))
		require.Len(t, fields, 3)

		names := []string{fields[0].Field, fields[1].Field, fields[2].Field}
		assert.ElementsMatch(t, []string{"lat", "lon", "heading"}, names)
		for _, f := range fields {
			assert.Equal(t, "required", f.Rule)
			assert.Equal(t, "field required", f.Message)
		}
	})

	t.Run("non finite latitude", func(t *testing.T) {
		req := validRequest()
		req.Lat = ptrFloat64(math.Inf(1))

		fields := fieldsOf(t, validator.Validate(&req))
		require.Len(t, fields, 1)
		assert.Equal(t, "lat", fields[0].Field)
		assert.Equal(t, "finite", fields[0].Rule)
	})

	t.Run("heading message carries the bound", func(t *testing.T) {
		req := validRequest()
		req.Heading = ptrFloat64(360)

		fields := fieldsOf(t, validator.Validate(&req))
		require.Len(t, fields, 1)
		assert.Equal(t, "lt", fields[0].Rule)
		assert.Equal(t, "360", fields[0].Param)
		assert.Equal(t, "ensure this value is less than 360", fields[0].Message)
	})
}
