package models

import "time"

// AirQuality is the enumerated air quality label shown on the dashboard.
type AirQuality string

const (
	AirExcellent AirQuality = "Excellent"
	AirGood      AirQuality = "Good"
	AirModerate  AirQuality = "Moderate"
	AirPoor      AirQuality = "Poor"
	AirHazardous AirQuality = "Hazardous"
)

// Valid reports whether q is one of the known labels.
func (q AirQuality) Valid() bool {
	switch q {
	case AirExcellent, AirGood, AirModerate, AirPoor, AirHazardous:
		return true
	}
	return false
}

// TelemetrySnapshot is the complete set of readings of the monitored station at one tick.
type TelemetrySnapshot struct {
	BatteryPercent    float64    `json:"battery_percent"`     // [0,100]
	TemperatureC      float64    `json:"temperature_c"`       // °C
	HumidityPercent   float64    `json:"humidity_percent"`    // %
	AirQuality        AirQuality `json:"air_quality"`         // label
	ActiveUsers       int        `json:"active_users"`        // >= 0
	EnergyProducedKwh float64    `json:"energy_produced_kwh"` // never decreases
	NoiseDb           float64    `json:"noise_db"`            // dB
	CO2SavedKg        float64    `json:"co2_saved_kg"`        // never decreases
	Sequence          uint64     `json:"sequence"`            // ticks applied so far
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TelemetryStats aggregates stored telemetry samples over a window.
type TelemetryStats struct {
	Samples         int
	TemperatureAvg  float64
	TemperatureMin  float64
	TemperatureMax  float64
	TemperatureHead float64 // oldest sample in the window
	TemperatureTail float64 // newest sample in the window
	HumidityAvg     float64
	NoiseAvg        float64
}

// EnvironmentSummary is the analytics view over recent telemetry.
type EnvironmentSummary struct {
	Window           string  `json:"window"`
	Samples          int     `json:"samples"`
	TemperatureAvg   float64 `json:"temperature_avg_c"`
	TemperatureMin   float64 `json:"temperature_min_c"`
	TemperatureMax   float64 `json:"temperature_max_c"`
	TemperatureTrend float64 `json:"temperature_trend_c"`
	HumidityAvg      float64 `json:"humidity_avg_percent"`
	NoiseAvg         float64 `json:"noise_avg_db"`
	Alert            bool    `json:"alert"`
}
