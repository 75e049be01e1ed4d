package handlers

import (
	"context"
	"sync"
	"time"

	"solar_kiosk/internal/models"
	"solar_kiosk/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockTelemetry struct {
	mu       sync.Mutex
	snap     models.TelemetrySnapshot
	setErr   error
	lastSet  models.AirQuality
	setCalls int
}

func (m *mockTelemetry) Start() {}
func (m *mockTelemetry) Stop()  {}

func (m *mockTelemetry) CurrentSnapshot() models.TelemetrySnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

func (m *mockTelemetry) SetAirQuality(ctx context.Context, q models.AirQuality) (models.TelemetrySnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	m.lastSet = q
	if m.setErr != nil {
		return models.TelemetrySnapshot{}, m.setErr
	}
	m.snap.AirQuality = q
	return m.snap, nil
}

type mockSessions struct {
	mu          sync.Mutex
	current     models.ChargingSession
	startErr    error
	lastDevice  string
	lastPayment string
	startCalls  int
	cancelCalls int
}

func (m *mockSessions) Start(ctx context.Context, deviceID, paymentMethodID string) (models.ChargingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startCalls++
	m.lastDevice = deviceID
	m.lastPayment = paymentMethodID
	if m.startErr != nil {
		return models.ChargingSession{}, m.startErr
	}
	m.current = models.ChargingSession{
		ID:                   "s-1",
		Status:               models.SessionActive,
		Device:               &models.DeviceProfile{ID: deviceID, ChargeTimeMinutes: 30, PriceFcfa: 100},
		PaymentMethod:        &models.PaymentMethod{ID: paymentMethodID},
		TimeRemainingMinutes: 30,
		CostFcfa:             100,
	}
	return m.current, nil
}

func (m *mockSessions) Cancel(ctx context.Context) models.ChargingSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelCalls++
	m.current = models.IdleSession()
	return m.current
}

func (m *mockSessions) Current() models.ChargingSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

type mockCatalog struct {
	devices  []models.DeviceProfile
	payments []models.PaymentMethod
	stations []models.Station
}

func (m *mockCatalog) Devices() []models.DeviceProfile        { return m.devices }
func (m *mockCatalog) PaymentMethods() []models.PaymentMethod { return m.payments }
func (m *mockCatalog) Stations() []models.Station             { return m.stations }

type mockEventLog struct {
	resp     []models.KioskEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.KioskEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockEnvironment struct {
	resp       models.EnvironmentSummary
	err        error
	lastWindow time.Duration
}

func (m *mockEnvironment) Summary(ctx context.Context, window time.Duration) (models.EnvironmentSummary, error) {
	m.lastWindow = window
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
