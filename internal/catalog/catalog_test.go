package catalog

import (
	"errors"
	"testing"

	"solar_kiosk/internal/models"
)

func TestDefault_Lookups(t *testing.T) {
	t.Parallel()

	c := Default()

	d, ok := c.Device("smartphone")
	if !ok {
		t.Fatalf("smartphone not found")
	}
	if d.PriceFcfa != 100 || d.ChargeTimeMinutes != 30 {
		t.Fatalf("unexpected smartphone profile: %+v", d)
	}
	if _, ok := c.Device("unknown-id"); ok {
		t.Fatalf("unknown device should not resolve")
	}
	if p, ok := c.PaymentMethod("orange"); !ok || p.Name != "Orange Money" {
		t.Fatalf("orange lookup failed: %+v ok=%v", p, ok)
	}
	if _, ok := c.PaymentMethod(""); ok {
		t.Fatalf("empty payment id should not resolve")
	}
	if got := len(c.Stations()); got != 4 {
		t.Fatalf("expected 4 stations, got %d", got)
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	src := DefaultDevices()
	c := New(src, DefaultPaymentMethods(), nil)

	// mutating the constructor input must not leak in
	src[0].PriceFcfa = 1

	list := c.Devices()
	list[0].PriceFcfa = 999
	c.PaymentMethods()[0].Name = "mutated"

	d, _ := c.Device("smartphone")
	if d.PriceFcfa != 100 {
		t.Fatalf("catalog was mutated through a copy: %+v", d)
	}
	if p, _ := c.PaymentMethod("wave"); p.Name != "Wave" {
		t.Fatalf("payment table was mutated: %+v", p)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		devices  []models.DeviceProfile
		payments []models.PaymentMethod
		wantErr  error
	}{
		{name: "defaults ok", devices: DefaultDevices(), payments: DefaultPaymentMethods()},
		{
			name:    "empty device id",
			devices: []models.DeviceProfile{{ID: " ", PriceFcfa: 1, ChargeTimeMinutes: 1}},
			wantErr: errEmptyID,
		},
		{
			name:    "zero price",
			devices: []models.DeviceProfile{{ID: "a", PriceFcfa: 0, ChargeTimeMinutes: 1}},
			wantErr: errInvalidPrice,
		},
		{
			name:    "zero charge time",
			devices: []models.DeviceProfile{{ID: "a", PriceFcfa: 5, ChargeTimeMinutes: 0}},
			wantErr: errInvalidTime,
		},
		{
			name: "duplicate device",
			devices: []models.DeviceProfile{
				{ID: "a", PriceFcfa: 5, ChargeTimeMinutes: 1},
				{ID: "a", PriceFcfa: 6, ChargeTimeMinutes: 2},
			},
			wantErr: errDuplicateID,
		},
		{
			name:     "duplicate payment",
			payments: []models.PaymentMethod{{ID: "wave"}, {ID: "wave"}},
			wantErr:  errDuplicateID,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tc.devices, tc.payments)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v; want %v", err, tc.wantErr)
			}
		})
	}
}
