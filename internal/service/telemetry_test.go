package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"solar_kiosk/internal/clock"
	"solar_kiosk/internal/models"
)

// fixedRand returns the same draw every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

// sinkStub collects recorded snapshots.
type sinkStub struct {
	mu   sync.Mutex
	got  []models.TelemetrySnapshot
	err  error
	seen int
}

func (s *sinkStub) Record(ctx context.Context, snap models.TelemetrySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen++
	if s.err == nil {
		s.got = append(s.got, snap)
	}
	return s.err
}

func newTelemetryFixture(t *testing.T, seed int64) (*TelemetryService, *clock.Manual, *journalStub) {
	t.Helper()
	clk := clock.NewManual(epoch)
	journal := &journalStub{}
	svc := NewTelemetryService(clk, rand.New(rand.NewSource(seed)), TelemetryConfig{}, journal, nil)
	return svc, clk, journal
}

func TestDriftRule_ApplyClamps(t *testing.T) {
	t.Parallel()

	rule := DriftRule{Step: 1, Min: 0, Max: 100}
	cases := []struct {
		name string
		v    float64
		rng  RandomSource
		want float64
	}{
		{name: "upper bound", v: 99.8, rng: fixedRand{f: 0.999}, want: 100},
		{name: "lower bound", v: 0.2, rng: fixedRand{f: 0}, want: 0},
		{name: "midpoint draw keeps value", v: 50, rng: fixedRand{f: 0.5}, want: 50},
		{name: "full negative step", v: 50, rng: fixedRand{f: 0}, want: 49},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := rule.Apply(tc.v, tc.rng); got != tc.want {
				t.Fatalf("Apply(%v) = %v; want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestDriftRule_SeededThousandTicksStayInRange(t *testing.T) {
	t.Parallel()

	rule := DriftRule{Step: 1, Min: 0, Max: 100}
	for _, start := range []float64{0, 0.5, 50, 99.5, 100} {
		rng := rand.New(rand.NewSource(42))
		v := start
		for i := 0; i < 1000; i++ {
			v = rule.Apply(v, rng)
			if v < 0 || v > 100 {
				t.Fatalf("start %v tick %d: %v out of [0,100]", start, i, v)
			}
		}
	}
}

func TestTelemetryService_ThousandTicksRespectBounds(t *testing.T) {
	t.Parallel()
	svc, clk, _ := newTelemetryFixture(t, 7)
	model := DefaultTelemetryModel()

	svc.Start()
	prev := svc.CurrentSnapshot()
	for i := 1; i <= 1000; i++ {
		clk.Advance(DefaultTelemetryInterval)
		s := svc.CurrentSnapshot()

		if s.BatteryPercent < 0 || s.BatteryPercent > 100 {
			t.Fatalf("tick %d: battery %v", i, s.BatteryPercent)
		}
		if s.TemperatureC < model.Temperature.Min || s.TemperatureC > model.Temperature.Max {
			t.Fatalf("tick %d: temperature %v", i, s.TemperatureC)
		}
		if s.HumidityPercent < model.Humidity.Min || s.HumidityPercent > model.Humidity.Max {
			t.Fatalf("tick %d: humidity %v", i, s.HumidityPercent)
		}
		if s.NoiseDb < model.Noise.Min || s.NoiseDb > model.Noise.Max {
			t.Fatalf("tick %d: noise %v", i, s.NoiseDb)
		}
		if s.ActiveUsers < 0 || s.ActiveUsers > model.MaxActiveUsers {
			t.Fatalf("tick %d: users %d", i, s.ActiveUsers)
		}
		if s.EnergyProducedKwh < prev.EnergyProducedKwh || s.CO2SavedKg < prev.CO2SavedKg {
			t.Fatalf("tick %d: cumulative counters decreased", i)
		}
		if s.AirQuality != models.AirGood {
			t.Fatalf("tick %d: air quality changed to %s", i, s.AirQuality)
		}
		if s.Sequence != uint64(i) {
			t.Fatalf("tick %d: sequence %d", i, s.Sequence)
		}
		prev = s
	}
	svc.Stop()
	if clk.Pending() != 0 {
		t.Fatalf("timer left after Stop")
	}
}

func TestTelemetryService_SameSeedSameStream(t *testing.T) {
	t.Parallel()
	a, clkA, _ := newTelemetryFixture(t, 99)
	b, clkB, _ := newTelemetryFixture(t, 99)

	a.Start()
	b.Start()
	clkA.Advance(50 * DefaultTelemetryInterval)
	clkB.Advance(50 * DefaultTelemetryInterval)

	if a.CurrentSnapshot() != b.CurrentSnapshot() {
		t.Fatalf("seeded streams diverged:\n%+v\n%+v", a.CurrentSnapshot(), b.CurrentSnapshot())
	}
}

func TestTelemetryService_StartStopIdempotent(t *testing.T) {
	t.Parallel()
	svc, clk, _ := newTelemetryFixture(t, 1)

	svc.Stop() // stop before start is fine
	svc.Start()
	svc.Start()
	if clk.Pending() != 1 {
		t.Fatalf("expected one registration, got %d", clk.Pending())
	}
	if !svc.Running() {
		t.Fatalf("expected running")
	}

	clk.Advance(DefaultTelemetryInterval)
	if seq := svc.CurrentSnapshot().Sequence; seq != 1 {
		t.Fatalf("sequence = %d; want 1", seq)
	}

	svc.Stop()
	svc.Stop()
	if clk.Pending() != 0 || svc.Running() {
		t.Fatalf("timer survived Stop")
	}
	clk.Advance(10 * DefaultTelemetryInterval)
	if seq := svc.CurrentSnapshot().Sequence; seq != 1 {
		t.Fatalf("tick after Stop: sequence = %d", seq)
	}

	// restart resumes from the last snapshot
	svc.Start()
	clk.Advance(DefaultTelemetryInterval)
	if seq := svc.CurrentSnapshot().Sequence; seq != 2 {
		t.Fatalf("sequence after restart = %d; want 2", seq)
	}
	svc.Stop()
}

func TestTelemetryService_InitialSnapshot(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTelemetryFixture(t, 1)

	got := svc.CurrentSnapshot()
	want := InitialSnapshot()
	want.UpdatedAt = epoch
	if got != want {
		t.Fatalf("initial = %+v; want %+v", got, want)
	}
}

func TestTelemetryService_SinksReceiveEveryTick(t *testing.T) {
	t.Parallel()
	svc, clk, _ := newTelemetryFixture(t, 3)
	good := &sinkStub{}
	bad := &sinkStub{err: errors.New("broker down")}
	svc.AddSink(bad)
	svc.AddSink(good)

	svc.Start()
	clk.Advance(3 * DefaultTelemetryInterval)
	svc.Stop()

	if bad.seen != 3 {
		t.Fatalf("failing sink saw %d ticks; want 3", bad.seen)
	}
	if len(good.got) != 3 {
		t.Fatalf("good sink got %d; want 3", len(good.got))
	}
	for i, s := range good.got {
		if s.Sequence != uint64(i+1) {
			t.Fatalf("sink snapshot %d has sequence %d", i, s.Sequence)
		}
		if !s.UpdatedAt.Equal(epoch.Add(time.Duration(i+1) * DefaultTelemetryInterval)) {
			t.Fatalf("sink snapshot %d has UpdatedAt %v", i, s.UpdatedAt)
		}
	}
}

func TestTelemetryService_SetAirQuality(t *testing.T) {
	t.Parallel()
	svc, clk, journal := newTelemetryFixture(t, 5)

	if _, err := svc.SetAirQuality(context.Background(), "Bonne"); !errors.Is(err, ErrInvalidAirQuality) {
		t.Fatalf("err = %v; want ErrInvalidAirQuality", err)
	}
	if svc.CurrentSnapshot().AirQuality != models.AirGood {
		t.Fatalf("invalid label changed state")
	}

	got, err := svc.SetAirQuality(context.Background(), models.AirModerate)
	if err != nil {
		t.Fatalf("SetAirQuality: %v", err)
	}
	if got.AirQuality != models.AirModerate {
		t.Fatalf("returned %s", got.AirQuality)
	}

	// same label again is not journaled
	if _, err := svc.SetAirQuality(context.Background(), models.AirModerate); err != nil {
		t.Fatalf("SetAirQuality: %v", err)
	}
	if types := journal.types(); len(types) != 1 || types[0] != models.EventAirQuality {
		t.Fatalf("journal = %v", types)
	}

	// the tick carries the label forward
	svc.Start()
	clk.Advance(5 * DefaultTelemetryInterval)
	svc.Stop()
	if q := svc.CurrentSnapshot().AirQuality; q != models.AirModerate {
		t.Fatalf("tick changed air quality to %s", q)
	}
}

func TestTelemetryModel_NextEnergyAndCO2(t *testing.T) {
	t.Parallel()
	m := DefaultTelemetryModel()
	prev := InitialSnapshot()

	next := m.Next(prev, fixedRand{f: 0.5, n: 2})

	wantDelta := 0.5 * m.EnergyStepKwh
	if got := next.EnergyProducedKwh - prev.EnergyProducedKwh; !almostEqual(got, wantDelta) {
		t.Fatalf("energy delta = %v; want %v", got, wantDelta)
	}
	if got := next.CO2SavedKg - prev.CO2SavedKg; !almostEqual(got, wantDelta*m.CO2PerKwh) {
		t.Fatalf("co2 delta = %v; want %v", got, wantDelta*m.CO2PerKwh)
	}
	if next.ActiveUsers != 2 {
		t.Fatalf("users = %d; want 2", next.ActiveUsers)
	}
}

func TestTelemetryService_ConcurrentReadsDuringRealTicks(t *testing.T) {
	t.Parallel()
	svc := NewTelemetryService(clock.NewReal(), rand.New(rand.NewSource(11)),
		TelemetryConfig{Interval: time.Millisecond}, &journalStub{}, nil)

	svc.Start()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s := svc.CurrentSnapshot()
				if s.BatteryPercent < 0 || s.BatteryPercent > 100 {
					t.Errorf("battery out of range: %v", s.BatteryPercent)
					return
				}
			}
		}()
	}
	wg.Wait()
	svc.Stop()

	seq := svc.CurrentSnapshot().Sequence
	time.Sleep(10 * time.Millisecond)
	if after := svc.CurrentSnapshot().Sequence; after != seq {
		t.Fatalf("tick landed after Stop: %d -> %d", seq, after)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
