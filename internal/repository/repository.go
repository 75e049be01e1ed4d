package repository

import (
	"context"
	"database/sql"
	"time"

	"solar_kiosk/internal/models"
)

// EventRepo stores the kiosk journal.
type EventRepo interface {
	Append(ctx context.Context, e models.KioskEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.KioskEvent, error)
}

// TelemetryRepo stores the telemetry history used by the environment summary.
type TelemetryRepo interface {
	Append(ctx context.Context, s models.TelemetrySnapshot) error
	Stats(ctx context.Context, since time.Time) (models.TelemetryStats, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
}

type Repository struct {
	EventRepo     EventRepo
	TelemetryRepo TelemetryRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo:     NewEventSQLite(db),
		TelemetryRepo: NewTelemetrySQLite(db),
	}
}
