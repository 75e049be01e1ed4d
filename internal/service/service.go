package service

import (
	"context"
	"time"

	"solar_kiosk/internal/clock"
	"solar_kiosk/internal/logger"
	"solar_kiosk/internal/models"
	"solar_kiosk/internal/repository"
)

// Telemetry exposes the generator's lifecycle and readings.
type Telemetry interface {
	Start()
	Stop()
	CurrentSnapshot() models.TelemetrySnapshot
	SetAirQuality(ctx context.Context, q models.AirQuality) (models.TelemetrySnapshot, error)
}

// Sessions exposes the charging session commands and state.
type Sessions interface {
	Start(ctx context.Context, deviceID, paymentMethodID string) (models.ChargingSession, error)
	Cancel(ctx context.Context) models.ChargingSession
	Current() models.ChargingSession
}

// Catalog exposes the static selection tables.
type Catalog interface {
	Devices() []models.DeviceProfile
	PaymentMethods() []models.PaymentMethod
	Stations() []models.Station
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.KioskEvent, error)
}

// Environment exposes the analytics over recent telemetry.
type Environment interface {
	Summary(ctx context.Context, window time.Duration) (models.EnvironmentSummary, error)
}

// Service aggregates all sub-services.
type Service struct {
	Telemetry
	Sessions
	Catalog
	EventLog
	Environment
}

// Deps carries what NewService wires together.
type Deps struct {
	Clock            clock.Clock
	Random           RandomSource
	Catalog          CatalogSource
	Telemetry        TelemetryConfig
	ProgressInterval time.Duration
	HistoryRetention time.Duration
	Sinks            []TelemetrySink
	Logger           *logger.Logger
}

// CatalogSource is what the services need from the catalog. *catalog.Catalog satisfies it.
type CatalogSource interface {
	Selections
	Catalog
}

// NewService wires the repository layer into concrete services.
// Telemetry snapshots are recorded into the history before any extra sink sees them.
func NewService(repos *repository.Repository, d Deps) *Service {
	telemetry := NewTelemetryService(d.Clock, d.Random, d.Telemetry, repos.EventRepo, d.Logger)
	telemetry.AddSink(NewTelemetryHistory(repos.TelemetryRepo, d.HistoryRetention))
	for _, sink := range d.Sinks {
		telemetry.AddSink(sink)
	}

	return &Service{
		Telemetry:   telemetry,
		Sessions:    NewSessionService(d.Clock, d.ProgressInterval, d.Catalog, repos.EventRepo, d.Logger),
		Catalog:     d.Catalog,
		EventLog:    NewEventLogService(repos.EventRepo),
		Environment: NewEnvironmentService(repos.TelemetryRepo, d.Clock),
	}
}
