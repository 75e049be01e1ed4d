package catalog

import "solar_kiosk/internal/models"

// DefaultDevices is the device table of the Dakar demo kiosk.
func DefaultDevices() []models.DeviceProfile {
	return []models.DeviceProfile{
		{ID: "smartphone", Name: "Smartphone", PriceFcfa: 100, ChargeTimeMinutes: 30, PowerWatts: "5W", Description: "Fast USB charge"},
		{ID: "tablet", Name: "Tablet", PriceFcfa: 150, ChargeTimeMinutes: 45, PowerWatts: "10W", Description: "Standard charge"},
		{ID: "laptop", Name: "Laptop", PriceFcfa: 300, ChargeTimeMinutes: 90, PowerWatts: "45W", Description: "Fast USB-C charge"},
		{ID: "powerbank", Name: "Power Bank", PriceFcfa: 200, ChargeTimeMinutes: 60, PowerWatts: "18W", Description: "Full charge"},
	}
}

func DefaultPaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{ID: "wave", Name: "Wave", Icon: "🌊", Description: "Instant mobile payment"},
		{ID: "orange", Name: "Orange Money", Icon: "🟠", Description: "Mobile money transfer"},
		{ID: "coins", Name: "Coins", Icon: "💰", Description: "Local currency accepted"},
	}
}

func DefaultStations() []models.Station {
	return []models.Station{
		{ID: 1, Name: "Plateau Centre", Zone: "Downtown", Lat: 14.6928, Lng: -17.4467, Status: models.StationActive, Users: 2, TemperatureC: 29.2, HumidityPercent: 68, AirQualityIndex: 48, PM25: 23, NoiseDb: 65},
		{ID: 2, Name: "Almadies", Zone: "Residential", Lat: 14.7392, Lng: -17.5089, Status: models.StationActive, Users: 1, TemperatureC: 27.8, HumidityPercent: 72, AirQualityIndex: 42, PM25: 18, NoiseDb: 52},
		{ID: 3, Name: "Parcelles Assainies", Zone: "Popular", Lat: 14.7644, Lng: -17.4518, Status: models.StationActive, Users: 0, TemperatureC: 30.1, HumidityPercent: 65, AirQualityIndex: 55, PM25: 31, NoiseDb: 72},
		{ID: 4, Name: "Ouakam", Zone: "Coastal", Lat: 14.7247, Lng: -17.4921, Status: models.StationMaintenance, Users: 0, TemperatureC: 26.5, HumidityPercent: 78, AirQualityIndex: 38, PM25: 15, NoiseDb: 48},
	}
}

// Default returns the catalog with all built-in tables.
func Default() *Catalog {
	return New(DefaultDevices(), DefaultPaymentMethods(), DefaultStations())
}
