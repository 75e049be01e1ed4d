package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"solar_kiosk/internal/clock"
	"solar_kiosk/internal/logger"
	"solar_kiosk/internal/models"
	"solar_kiosk/internal/repository"

	"github.com/google/uuid"
)

// DefaultProgressInterval is the cadence of one progress step.
const DefaultProgressInterval = 100 * time.Millisecond

// progressSteps is the number of ticks from 0 to 100 percent.
const progressSteps = 100

// Selections resolves catalog ids. *catalog.Catalog satisfies it.
type Selections interface {
	Device(id string) (models.DeviceProfile, bool)
	PaymentMethod(id string) (models.PaymentMethod, bool)
}

// SessionService owns the single charging session of one kiosk.
type SessionService struct {
	clock    clock.Clock
	interval time.Duration
	catalog  Selections
	journal  repository.EventRepo
	log      *logger.Logger

	mu      sync.Mutex
	session models.ChargingSession
	timer   clock.Timer
	gen     uint64
}

// NewSessionService returns an Idle controller. journal and log may be nil.
func NewSessionService(clk clock.Clock, interval time.Duration, catalog Selections, journal repository.EventRepo, log *logger.Logger) *SessionService {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SessionService{
		clock:    clk,
		interval: interval,
		catalog:  catalog,
		journal:  journal,
		log:      log,
		session:  models.IdleSession(),
	}
}

// Start begins charging the selected device. Unknown ids fail with ErrInvalidSelection,
// a running session with ErrSessionAlreadyActive; neither changes state.
// A Completed session is replaced.
func (s *SessionService) Start(ctx context.Context, deviceID, paymentMethodID string) (models.ChargingSession, error) {
	device, ok := s.catalog.Device(deviceID)
	if !ok {
		return models.ChargingSession{}, fmt.Errorf("%w: unknown device %q", ErrInvalidSelection, deviceID)
	}
	payment, ok := s.catalog.PaymentMethod(paymentMethodID)
	if !ok {
		return models.ChargingSession{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidSelection, paymentMethodID)
	}

	s.mu.Lock()
	if s.session.Status == models.SessionActive {
		s.mu.Unlock()
		return models.ChargingSession{}, ErrSessionAlreadyActive
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	now := s.clock.Now().UTC()
	s.gen++
	gen := s.gen
	s.session = models.ChargingSession{
		ID:                   uuid.NewString(),
		Status:               models.SessionActive,
		Device:               &device,
		PaymentMethod:        &payment,
		ProgressPercent:      0,
		TimeRemainingMinutes: float64(device.ChargeTimeMinutes),
		CostFcfa:             device.PriceFcfa,
		StartedAt:            now,
	}
	s.timer = s.clock.Every(s.interval, func(now time.Time) { s.advance(gen, now) })
	out := s.session.Clone()
	s.mu.Unlock()

	s.log.Infow("session_started", "session_id", out.ID, "device", device.ID, "payment_method", payment.ID, "cost_fcfa", out.CostFcfa)
	appendEvent(ctx, s.journal, s.log, models.KioskEvent{
		OccurredAt:  now,
		Type:        models.EventSessionStart,
		Description: fmt.Sprintf("Charging %s paid with %s", device.Name, payment.Name),
		Metadata: map[string]any{
			"session_id":     out.ID,
			"device":         device.ID,
			"payment_method": payment.ID,
			"cost_fcfa":      out.CostFcfa,
		},
	})
	return out, nil
}

// Cancel discards the current session and returns to Idle. It always succeeds.
func (s *SessionService) Cancel(ctx context.Context) models.ChargingSession {
	s.mu.Lock()
	prev := s.session
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.session = models.IdleSession()
	s.mu.Unlock()

	if prev.Status == models.SessionIdle {
		return models.IdleSession()
	}

	s.log.Infow("session_cancelled", "session_id", prev.ID, "status", prev.Status, "progress", prev.ProgressPercent)
	meta := map[string]any{
		"session_id": prev.ID,
		"status":     prev.Status,
		"progress":   prev.ProgressPercent,
	}
	if prev.Device != nil {
		meta["device"] = prev.Device.ID
	}
	appendEvent(ctx, s.journal, s.log, models.KioskEvent{
		OccurredAt:  s.clock.Now().UTC(),
		Type:        models.EventSessionCancel,
		Description: "Charging session cancelled",
		Metadata:    meta,
	})
	return models.IdleSession()
}

// Current returns a copy of the session.
func (s *SessionService) Current() models.ChargingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// advance applies one progress step.
func (s *SessionService) advance(gen uint64, now time.Time) {
	s.mu.Lock()
	if gen != s.gen || s.session.Status != models.SessionActive {
		s.mu.Unlock()
		return
	}

	sess := &s.session
	sess.ProgressPercent++
	if sess.ProgressPercent > progressSteps {
		sess.ProgressPercent = progressSteps
	}
	chargeTime := float64(sess.Device.ChargeTimeMinutes)
	sess.TimeRemainingMinutes = chargeTime * float64(progressSteps-sess.ProgressPercent) / progressSteps
	if sess.TimeRemainingMinutes < 0 {
		sess.TimeRemainingMinutes = 0
	}

	if sess.ProgressPercent < progressSteps {
		s.mu.Unlock()
		return
	}

	sess.TimeRemainingMinutes = 0
	sess.Status = models.SessionCompleted
	sess.CompletedAt = now.UTC()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	done := sess.Clone()
	s.mu.Unlock()

	s.log.Infow("session_completed", "session_id", done.ID, "device", done.Device.ID)
	appendEvent(context.Background(), s.journal, s.log, models.KioskEvent{
		OccurredAt:  done.CompletedAt,
		Type:        models.EventSessionComplete,
		Description: fmt.Sprintf("%s fully charged", done.Device.Name),
		Metadata: map[string]any{
			"session_id": done.ID,
			"device":     done.Device.ID,
			"cost_fcfa":  done.CostFcfa,
		},
	})
}
