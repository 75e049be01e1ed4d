package catalog

import (
	"errors"
	"fmt"
	"strings"

	"solar_kiosk/internal/models"
)

// Catalog holds the read-only device, payment and station tables.
// Every accessor hands out copies; the tables never change after New.
type Catalog struct {
	devices  []models.DeviceProfile
	payments []models.PaymentMethod
	stations []models.Station

	deviceIdx  map[string]int
	paymentIdx map[string]int
}

var (
	errDuplicateID  = errors.New("duplicate id")
	errEmptyID      = errors.New("empty id")
	errInvalidPrice = errors.New("price_fcfa must be > 0")
	errInvalidTime  = errors.New("charge_time_minutes must be > 0")
)

// New builds a catalog from copies of the given tables.
func New(devices []models.DeviceProfile, payments []models.PaymentMethod, stations []models.Station) *Catalog {
	c := &Catalog{
		devices:    append([]models.DeviceProfile(nil), devices...),
		payments:   append([]models.PaymentMethod(nil), payments...),
		stations:   append([]models.Station(nil), stations...),
		deviceIdx:  make(map[string]int, len(devices)),
		paymentIdx: make(map[string]int, len(payments)),
	}
	for i, d := range c.devices {
		if _, ok := c.deviceIdx[d.ID]; !ok {
			c.deviceIdx[d.ID] = i
		}
	}
	for i, p := range c.payments {
		if _, ok := c.paymentIdx[p.ID]; !ok {
			c.paymentIdx[p.ID] = i
		}
	}
	return c
}

// Validate rejects tables a session could not run on: empty or duplicate ids,
// non-positive price or charge time.
func Validate(devices []models.DeviceProfile, payments []models.PaymentMethod) error {
	seen := make(map[string]struct{}, len(devices))
	for _, d := range devices {
		id := strings.TrimSpace(d.ID)
		switch {
		case id == "":
			return fmt.Errorf("device %q: %w", d.Name, errEmptyID)
		case d.PriceFcfa <= 0:
			return fmt.Errorf("device %q: %w", id, errInvalidPrice)
		case d.ChargeTimeMinutes <= 0:
			return fmt.Errorf("device %q: %w", id, errInvalidTime)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("device %q: %w", id, errDuplicateID)
		}
		seen[id] = struct{}{}
	}

	seen = make(map[string]struct{}, len(payments))
	for _, p := range payments {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return fmt.Errorf("payment method %q: %w", p.Name, errEmptyID)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("payment method %q: %w", id, errDuplicateID)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Device looks up a device profile by id.
func (c *Catalog) Device(id string) (models.DeviceProfile, bool) {
	i, ok := c.deviceIdx[id]
	if !ok {
		return models.DeviceProfile{}, false
	}
	return c.devices[i], true
}

// PaymentMethod looks up a payment method by id.
func (c *Catalog) PaymentMethod(id string) (models.PaymentMethod, bool) {
	i, ok := c.paymentIdx[id]
	if !ok {
		return models.PaymentMethod{}, false
	}
	return c.payments[i], true
}

func (c *Catalog) Devices() []models.DeviceProfile {
	return append([]models.DeviceProfile(nil), c.devices...)
}

func (c *Catalog) PaymentMethods() []models.PaymentMethod {
	return append([]models.PaymentMethod(nil), c.payments...)
}

func (c *Catalog) Stations() []models.Station {
	return append([]models.Station(nil), c.stations...)
}
