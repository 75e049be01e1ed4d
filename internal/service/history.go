package service

import (
	"context"
	"time"

	"solar_kiosk/internal/models"
	"solar_kiosk/internal/repository"
)

// pruneEvery is how many recorded samples pass between two retention sweeps.
const pruneEvery = 20

// TelemetryHistory is a TelemetrySink that stores snapshots for the environment summary
// and drops samples older than the retention.
type TelemetryHistory struct {
	repo      repository.TelemetryRepo
	retention time.Duration
}

// NewTelemetryHistory returns a history sink. A non-positive retention keeps everything.
func NewTelemetryHistory(repo repository.TelemetryRepo, retention time.Duration) *TelemetryHistory {
	return &TelemetryHistory{repo: repo, retention: retention}
}

func (h *TelemetryHistory) Record(ctx context.Context, s models.TelemetrySnapshot) error {
	if err := h.repo.Append(ctx, s); err != nil {
		return err
	}
	if h.retention <= 0 || s.Sequence%pruneEvery != 0 {
		return nil
	}
	_, err := h.repo.Prune(ctx, s.UpdatedAt.Add(-h.retention))
	return err
}
