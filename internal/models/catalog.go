package models

// DeviceProfile describes a chargeable device type.
type DeviceProfile struct {
	ID                string `json:"id" mapstructure:"id"`
	Name              string `json:"name" mapstructure:"name"`
	PriceFcfa         int    `json:"price_fcfa" mapstructure:"price_fcfa"`
	ChargeTimeMinutes int    `json:"charge_time_minutes" mapstructure:"charge_time_minutes"`
	PowerWatts        string `json:"power_watts" mapstructure:"power_watts"` // label, e.g. "45W"
	Description       string `json:"description" mapstructure:"description"`
}

// PaymentMethod is a selectable way to pay for a session.
type PaymentMethod struct {
	ID          string `json:"id" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	Icon        string `json:"icon" mapstructure:"icon"`
	Description string `json:"description" mapstructure:"description"`
}

// Station status values.
const (
	StationActive      = "active"
	StationMaintenance = "maintenance"
)

// Station is one kiosk of the network with its last reported readings.
type Station struct {
	ID              int     `json:"id" mapstructure:"id"`
	Name            string  `json:"name" mapstructure:"name"`
	Zone            string  `json:"zone" mapstructure:"zone"`
	Lat             float64 `json:"lat" mapstructure:"lat"`
	Lng             float64 `json:"lng" mapstructure:"lng"`
	Status          string  `json:"status" mapstructure:"status"` // active | maintenance
	Users           int     `json:"users" mapstructure:"users"`
	TemperatureC    float64 `json:"temperature_c" mapstructure:"temperature_c"`
	HumidityPercent float64 `json:"humidity_percent" mapstructure:"humidity_percent"`
	AirQualityIndex int     `json:"air_quality_index" mapstructure:"air_quality_index"`
	PM25            int     `json:"pm25" mapstructure:"pm25"`
	NoiseDb         float64 `json:"noise_db" mapstructure:"noise_db"`
}
