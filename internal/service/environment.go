package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"solar_kiosk/internal/clock"
	"solar_kiosk/internal/models"
	"solar_kiosk/internal/repository"
)

const (
	// AlertTemperatureC raises the summary alert when the window's max reaches it.
	AlertTemperatureC = 30.0
	// DefaultSummaryWindow is used when the caller gives no window.
	DefaultSummaryWindow = 15 * time.Minute
)

// EnvironmentService summarizes the recorded telemetry history.
type EnvironmentService struct {
	repo  repository.TelemetryRepo
	clock clock.Clock
}

func NewEnvironmentService(repo repository.TelemetryRepo, clk clock.Clock) *EnvironmentService {
	return &EnvironmentService{repo: repo, clock: clk}
}

// Summary aggregates the samples recorded within window before now.
// An empty history yields a zero summary, not an error.
func (s *EnvironmentService) Summary(ctx context.Context, window time.Duration) (models.EnvironmentSummary, error) {
	if window <= 0 {
		return models.EnvironmentSummary{}, fmt.Errorf("%w: %s", ErrInvalidWindow, window)
	}
	since := s.clock.Now().UTC().Add(-window)

	st, err := s.repo.Stats(ctx, since)
	if err != nil {
		return models.EnvironmentSummary{}, err
	}

	out := models.EnvironmentSummary{Window: window.String(), Samples: st.Samples}
	if st.Samples == 0 {
		return out, nil
	}
	out.TemperatureAvg = round2(st.TemperatureAvg)
	out.TemperatureMin = round2(st.TemperatureMin)
	out.TemperatureMax = round2(st.TemperatureMax)
	out.TemperatureTrend = round2(st.TemperatureTail - st.TemperatureHead)
	out.HumidityAvg = round2(st.HumidityAvg)
	out.NoiseAvg = round2(st.NoiseAvg)
	out.Alert = st.TemperatureMax >= AlertTemperatureC
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
