package models

import "time"

// SessionStatus is the lifecycle state of a ChargingSession.
type SessionStatus string

const (
	SessionIdle      SessionStatus = "idle"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// ChargingSession is one charging attempt. Device and PaymentMethod are copies owned
// by the session, nil while Idle.
type ChargingSession struct {
	ID                   string         `json:"id,omitempty"`
	Status               SessionStatus  `json:"status"`
	Device               *DeviceProfile `json:"device"`
	PaymentMethod        *PaymentMethod `json:"payment_method"`
	ProgressPercent      int            `json:"progress_percent"`       // 0..100
	TimeRemainingMinutes float64        `json:"time_remaining_minutes"` // 0 iff progress is 100
	CostFcfa             int            `json:"cost_fcfa"`
	StartedAt            time.Time      `json:"started_at,omitempty"`
	CompletedAt          time.Time      `json:"completed_at,omitempty"`
}

// IdleSession returns the reset state of a controller.
func IdleSession() ChargingSession {
	return ChargingSession{Status: SessionIdle}
}

// Clone returns a deep copy so callers never share the owned device/payment values.
func (s ChargingSession) Clone() ChargingSession {
	out := s
	if s.Device != nil {
		d := *s.Device
		out.Device = &d
	}
	if s.PaymentMethod != nil {
		p := *s.PaymentMethod
		out.PaymentMethod = &p
	}
	return out
}
