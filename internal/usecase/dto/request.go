package dto

import (
	"strconv"

	"github.com/building-identifier/internal/domain"
	"github.com/building-identifier/internal/pkg/errors"
)

// DefaultRadiusM - радиус поиска, если radius_m не передан
const DefaultRadiusM = 150

// IdentifyRequest - параметры запроса /identify.
// Указатели отличают отсутствующий параметр от нулевого значения.
type IdentifyRequest struct {
	Lat     *float64 `query:"lat" validate:"required,finite"`
	Lon     *float64 `query:"lon" validate:"required,finite"`
	Heading *float64 `query:"heading" validate:"required,gte=0,lt=360"`
	RadiusM *int     `query:"radius_m" validate:"required,gte=10,lte=500"`
}

// QueryLookup returns the raw value of a query key and whether the key was sent.
type QueryLookup func(key string) (string, bool)

// ParseIdentifyRequest reads the query by exact key. Keys differing only in case
// are ignored, so "LAT" never stands in for "lat". Values that do not parse are
// reported as field errors; range checks are left to the validator.
func ParseIdentifyRequest(lookup QueryLookup) (*IdentifyRequest, []errors.FieldError) {
	var (
		req    IdentifyRequest
		fields []errors.FieldError
	)

	for _, p := range []struct {
		key string
		dst **float64
	}{
		{"lat", &req.Lat},
		{"lon", &req.Lon},
		{"heading", &req.Heading},
	} {
		key := p.key
		raw, ok := lookup(key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields = append(fields, errors.FieldError{
				Field:   key,
				Rule:    "number",
				Value:   raw,
				Message: "value is not a valid number",
			})
			continue
		}
		*p.dst = &v
	}

	if raw, ok := lookup("radius_m"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, errors.FieldError{
				Field:   "radius_m",
				Rule:    "integer",
				Value:   raw,
				Message: "value is not a valid integer",
			})
		} else {
			req.RadiusM = &v
		}
	}

	if len(fields) > 0 {
		return nil, fields
	}
	return &req, nil
}

// ApplyDefaults fills optional parameters that were not supplied.
func (r *IdentifyRequest) ApplyDefaults() {
	if r.RadiusM == nil {
		radius := DefaultRadiusM
		r.RadiusM = &radius
	}
}

// ToQuery converts a validated request into the domain query.
func (r *IdentifyRequest) ToQuery() domain.IdentifyQuery {
	return domain.IdentifyQuery{
		Position:   domain.Coordinate{Lat: *r.Lat, Lon: *r.Lon},
		HeadingDeg: *r.Heading,
		RadiusM:    *r.RadiusM,
	}
}
