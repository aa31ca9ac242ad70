package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamBuildingIdentified = "stream:building:identified"
)

// IdentificationEvent - событие об успешной идентификации здания
type IdentificationEvent struct {
	EventID     uuid.UUID     `json:"event_id"`
	Query       IdentifyQuery `json:"query"`
	BuildingID  string        `json:"building_id"`
	BearingDeg  float64       `json:"bearing_deg"`
	Confidence  float64       `json:"confidence"`
	TimestampMs int64         `json:"timestamp_ms"`
}

// NewIdentificationEvent builds an event for a completed identification.
func NewIdentificationEvent(q IdentifyQuery, b BuildingMatch, timestampMs int64) *IdentificationEvent {
	return &IdentificationEvent{
		EventID:     uuid.New(),
		Query:       q,
		BuildingID:  b.BuildingID,
		BearingDeg:  b.BearingDeg,
		Confidence:  b.Confidence,
		TimestampMs: timestampMs,
	}
}

// Validate checks the fields the audit store relies on.
func (e *IdentificationEvent) Validate() error {
	if e.EventID == uuid.Nil {
		return fmt.Errorf("event_id is required")
	}
	if e.BuildingID == "" {
		return fmt.Errorf("building_id is required")
	}
	if e.TimestampMs <= 0 {
		return fmt.Errorf("timestamp_ms must be positive")
	}
	return nil
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
