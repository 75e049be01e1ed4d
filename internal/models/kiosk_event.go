package models

import "time"

// Journal event types.
const (
	EventSessionStart    = "SESSION_START"
	EventSessionComplete = "SESSION_COMPLETE"
	EventSessionCancel   = "SESSION_CANCEL"
	EventAirQuality      = "AIR_QUALITY"
)

// KioskEvent is a single journal entry.
type KioskEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // SESSION_START | SESSION_COMPLETE | SESSION_CANCEL | AIR_QUALITY
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
