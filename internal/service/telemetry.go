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
)

// DefaultTelemetryInterval is the cadence of the telemetry tick.
const DefaultTelemetryInterval = 3 * time.Second

// RandomSource is the noise generator behind the drift. *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// TelemetrySink receives every new snapshot after a tick.
type TelemetrySink interface {
	Record(ctx context.Context, s models.TelemetrySnapshot) error
}

// DriftRule perturbs a value by U(-Step, +Step) and clamps it to [Min, Max].
type DriftRule struct {
	Step float64
	Min  float64
	Max  float64
}

// Apply returns the next value of v.
func (r DriftRule) Apply(v float64, rng RandomSource) float64 {
	return clamp(v+(rng.Float64()*2-1)*r.Step, r.Min, r.Max)
}

// TelemetryModel holds the per-field evolution rules.
type TelemetryModel struct {
	Battery        DriftRule
	Temperature    DriftRule
	Humidity       DriftRule
	Noise          DriftRule
	MaxActiveUsers int     // users are redrawn in [0, MaxActiveUsers]
	EnergyStepKwh  float64 // energy grows by U[0, EnergyStepKwh) per tick
	CO2PerKwh      float64 // kg of CO2 saved per produced kWh
}

// DefaultTelemetryModel returns the kiosk's drift rules.
func DefaultTelemetryModel() TelemetryModel {
	return TelemetryModel{
		Battery:        DriftRule{Step: 1, Min: 0, Max: 100},
		Temperature:    DriftRule{Step: 0.5, Min: 26, Max: 30},
		Humidity:       DriftRule{Step: 1, Min: 60, Max: 70},
		Noise:          DriftRule{Step: 2, Min: 40, Max: 80},
		MaxActiveUsers: 4,
		EnergyStepKwh:  0.05,
		CO2PerKwh:      0.5,
	}
}

// Next computes the snapshot following prev. Sequence and UpdatedAt are left to the caller.
func (m TelemetryModel) Next(prev models.TelemetrySnapshot, rng RandomSource) models.TelemetrySnapshot {
	next := prev
	next.BatteryPercent = m.Battery.Apply(prev.BatteryPercent, rng)
	next.TemperatureC = m.Temperature.Apply(prev.TemperatureC, rng)
	next.HumidityPercent = m.Humidity.Apply(prev.HumidityPercent, rng)
	next.NoiseDb = m.Noise.Apply(prev.NoiseDb, rng)

	users := 0
	if m.MaxActiveUsers > 0 {
		users = rng.Intn(m.MaxActiveUsers + 1)
	}
	next.ActiveUsers = users

	delta := rng.Float64() * m.EnergyStepKwh
	if delta < 0 {
		delta = 0
	}
	next.EnergyProducedKwh = prev.EnergyProducedKwh + delta
	next.CO2SavedKg = prev.CO2SavedKg + delta*m.CO2PerKwh
	return next
}

// InitialSnapshot is the state the generator starts from.
func InitialSnapshot() models.TelemetrySnapshot {
	return models.TelemetrySnapshot{
		BatteryPercent:    87,
		TemperatureC:      28,
		HumidityPercent:   65,
		AirQuality:        models.AirGood,
		ActiveUsers:       3,
		EnergyProducedKwh: 2.4,
		NoiseDb:           58,
		CO2SavedKg:        1.2,
	}
}

// TelemetryConfig carries the generator's construction parameters.
// Zero values fall back to the defaults.
type TelemetryConfig struct {
	Interval time.Duration
	Model    *TelemetryModel
	Initial  *models.TelemetrySnapshot
}

// TelemetryService owns the current snapshot and evolves it on a fixed cadence.
type TelemetryService struct {
	clock    clock.Clock
	interval time.Duration
	model    TelemetryModel
	journal  repository.EventRepo
	log      *logger.Logger

	mu    sync.Mutex
	rng   RandomSource
	snap  models.TelemetrySnapshot
	sinks []TelemetrySink
	timer clock.Timer
	gen   uint64
}

// NewTelemetryService builds a stopped generator. journal and log may be nil.
func NewTelemetryService(clk clock.Clock, rng RandomSource, cfg TelemetryConfig, journal repository.EventRepo, log *logger.Logger) *TelemetryService {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultTelemetryInterval
	}
	model := DefaultTelemetryModel()
	if cfg.Model != nil {
		model = *cfg.Model
	}
	snap := InitialSnapshot()
	if cfg.Initial != nil {
		snap = *cfg.Initial
	}
	if log == nil {
		log = logger.Nop()
	}
	snap.UpdatedAt = clk.Now().UTC()
	return &TelemetryService{
		clock:    clk,
		interval: cfg.Interval,
		model:    model,
		journal:  journal,
		log:      log,
		rng:      rng,
		snap:     snap,
	}
}

// AddSink registers a consumer of new snapshots.
func (s *TelemetryService) AddSink(sink TelemetrySink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, sink)
}

// Start begins ticking. Calling it while running does nothing.
func (s *TelemetryService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		return
	}
	s.gen++
	gen := s.gen
	s.timer = s.clock.Every(s.interval, func(now time.Time) { s.tick(gen, now) })
	s.log.Infow("telemetry_started", "interval", s.interval.String())
}

// Stop halts ticking. Safe to call any number of times.
func (s *TelemetryService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil {
		return
	}
	s.timer.Stop()
	s.timer = nil
	s.gen++
	s.log.Infow("telemetry_stopped", "sequence", s.snap.Sequence)
}

// Running reports whether the tick is registered.
func (s *TelemetryService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// CurrentSnapshot returns a copy of the latest snapshot.
func (s *TelemetryService) CurrentSnapshot() models.TelemetrySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// SetAirQuality replaces the air quality label; the tick never changes it.
func (s *TelemetryService) SetAirQuality(ctx context.Context, q models.AirQuality) (models.TelemetrySnapshot, error) {
	if !q.Valid() {
		return models.TelemetrySnapshot{}, fmt.Errorf("%w: %q", ErrInvalidAirQuality, q)
	}

	s.mu.Lock()
	prev := s.snap.AirQuality
	s.snap.AirQuality = q
	s.snap.UpdatedAt = s.clock.Now().UTC()
	out := s.snap
	s.mu.Unlock()

	if prev != q {
		appendEvent(ctx, s.journal, s.log, models.KioskEvent{
			OccurredAt:  out.UpdatedAt,
			Type:        models.EventAirQuality,
			Description: fmt.Sprintf("Air quality changed from %s to %s", prev, q),
			Metadata:    map[string]any{"from": prev, "to": q},
		})
	}
	return out, nil
}

func (s *TelemetryService) tick(gen uint64, now time.Time) {
	s.mu.Lock()
	if gen != s.gen || s.timer == nil {
		// Stop won the race against this tick
		s.mu.Unlock()
		return
	}
	next := s.model.Next(s.snap, s.rng)
	next.Sequence = s.snap.Sequence + 1
	next.UpdatedAt = now.UTC()
	s.snap = next
	sinks := append([]TelemetrySink(nil), s.sinks...)
	s.mu.Unlock()

	for _, sink := range sinks {
		if err := sink.Record(context.Background(), next); err != nil {
			s.log.Warnw("telemetry_sink_failed", "sequence", next.Sequence, "error", err)
		}
	}
}

// appendEvent writes to the journal; failures are logged, never returned.
func appendEvent(ctx context.Context, journal repository.EventRepo, log *logger.Logger, ev models.KioskEvent) {
	if journal == nil {
		return
	}
	if err := journal.Append(ctx, ev); err != nil {
		log.Errorw("journal_append_failed", "type", ev.Type, "error", err)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
