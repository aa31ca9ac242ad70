package domain

// BuildingMatch describes the building the observer is assumed to be facing.
// Confidence and the value fields are not validated.
type BuildingMatch struct {
	BuildingID  string     `json:"building_id"`
	Label       string     `json:"label"`
	Confidence  float64    `json:"confidence"`
	BearingDeg  float64    `json:"bearing_deg"`
	DeltaDeg    float64    `json:"delta_deg"`
	DistanceM   float64    `json:"distance_m"`
	Centroid    Coordinate `json:"centroid"`
	Estimate    int64      `json:"estimate"`
	Forecast12m int64      `json:"forecast_12m"`
	RangeLow    int64      `json:"range_low"`
	RangeHigh   int64      `json:"range_high"`
}

// RequestMeta echoes the search parameters of an identify request.
type RequestMeta struct {
	RadiusM     int     `json:"radius_m"`
	ConeDeg     int     `json:"cone_deg"`
	HeadingDeg  float64 `json:"heading_deg"`
	TimestampMs int64   `json:"timestamp_ms"`
}

// IdentifyQuery - validated input of an identification
type IdentifyQuery struct {
	Position   Coordinate `json:"position"`
	HeadingDeg float64    `json:"heading_deg"`
	RadiusM    int        `json:"radius_m"`
}
