package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"solar_kiosk/internal/models"
)

type TelemetrySQLite struct {
	db *sql.DB
}

func NewTelemetrySQLite(db *sql.DB) *TelemetrySQLite {
	return &TelemetrySQLite{db: db}
}

const (
	insertSampleSQL = `
		INSERT INTO telemetry_samples (seq, recorded_at, battery_pct, temp_c, humidity_pct, air_quality,
			active_users, energy_kwh, noise_db, co2_saved_kg)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	aggregateSamplesSQL = `
		SELECT COUNT(*), COALESCE(AVG(temp_c), 0), COALESCE(MIN(temp_c), 0), COALESCE(MAX(temp_c), 0),
			COALESCE(AVG(humidity_pct), 0), COALESCE(AVG(noise_db), 0)
		FROM telemetry_samples WHERE recorded_at >= ?
	`

	firstSampleTempSQL = `
		SELECT temp_c FROM telemetry_samples WHERE recorded_at >= ?
		ORDER BY recorded_at ASC, seq ASC LIMIT 1
	`

	lastSampleTempSQL = `
		SELECT temp_c FROM telemetry_samples WHERE recorded_at >= ?
		ORDER BY recorded_at DESC, seq DESC LIMIT 1
	`

	pruneSamplesSQL = `DELETE FROM telemetry_samples WHERE recorded_at < ?`
)

// Append stores one snapshot. A zero UpdatedAt is replaced by now; times are stored in UTC.
func (r *TelemetrySQLite) Append(ctx context.Context, s models.TelemetrySnapshot) error {
	ts := s.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertSampleSQL,
		int64(s.Sequence),
		ts,
		s.BatteryPercent,
		s.TemperatureC,
		s.HumidityPercent,
		string(s.AirQuality),
		s.ActiveUsers,
		s.EnergyProducedKwh,
		s.NoiseDb,
		s.CO2SavedKg,
	)
	return err
}

// Stats aggregates samples recorded at or after since.
// With no samples it returns a zero TelemetryStats and no error.
func (r *TelemetrySQLite) Stats(ctx context.Context, since time.Time) (models.TelemetryStats, error) {
	since = since.UTC()

	var st models.TelemetryStats
	row := r.db.QueryRowContext(ctx, aggregateSamplesSQL, since)
	if err := row.Scan(
		&st.Samples,
		&st.TemperatureAvg,
		&st.TemperatureMin,
		&st.TemperatureMax,
		&st.HumidityAvg,
		&st.NoiseAvg,
	); err != nil {
		return models.TelemetryStats{}, fmt.Errorf("aggregate samples: %w", err)
	}
	if st.Samples == 0 {
		return models.TelemetryStats{}, nil
	}

	head, err := r.edgeTemp(ctx, firstSampleTempSQL, since)
	if err != nil {
		return models.TelemetryStats{}, fmt.Errorf("first sample: %w", err)
	}
	tail, err := r.edgeTemp(ctx, lastSampleTempSQL, since)
	if err != nil {
		return models.TelemetryStats{}, fmt.Errorf("last sample: %w", err)
	}
	st.TemperatureHead = head
	st.TemperatureTail = tail
	return st, nil
}

func (r *TelemetrySQLite) edgeTemp(ctx context.Context, q string, since time.Time) (float64, error) {
	var v float64
	if err := r.db.QueryRowContext(ctx, q, since).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil // pruned between queries
		}
		return 0, err
	}
	return v, nil
}

// Prune deletes samples older than before and reports how many rows went away.
func (r *TelemetrySQLite) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, pruneSamplesSQL, before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
