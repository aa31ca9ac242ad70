package domain

import "time"

// Coordinate - WGS84 point. No range validation is applied.
type Coordinate struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// Offset returns the coordinate shifted by the given degrees.
func (c Coordinate) Offset(dLat, dLon float64) Coordinate {
	return Coordinate{Lat: c.Lat + dLat, Lon: c.Lon + dLon}
}

// AuditStats - aggregated view of stored identification events
type AuditStats struct {
	TotalIdentifications int64     `json:"total_identifications" db:"total_identifications"`
	DistinctBuildings    int64     `json:"distinct_buildings" db:"distinct_buildings"`
	FirstSeen            time.Time `json:"first_seen" db:"first_seen"`
	LastSeen             time.Time `json:"last_seen" db:"last_seen"`
}
