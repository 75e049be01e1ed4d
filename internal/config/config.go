package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"solar_kiosk/internal/catalog"
	"solar_kiosk/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. KIOSK_TELEMETRY_INTERVAL.
const EnvPrefix = "KIOSK"

type Config struct {
	Port      string          `mapstructure:"port"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Session   SessionConfig   `mapstructure:"session"`
	WS        WSConfig        `mapstructure:"ws"`
	MQTT      MQTTConfig      `mapstructure:"mqtt"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DBConfig struct {
	Path string `mapstructure:"path"` // ":memory:" keeps journal and history in the process
}

type TelemetryConfig struct {
	Interval         time.Duration `mapstructure:"interval"`
	Seed             int64         `mapstructure:"seed"` // 0 seeds from the clock
	MaxActiveUsers   int           `mapstructure:"max_active_users"`
	HistoryRetention time.Duration `mapstructure:"history_retention"`
}

type SessionConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

type WSConfig struct {
	DefaultInterval time.Duration `mapstructure:"default_interval"`
}

type MQTTConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Broker   string `mapstructure:"broker"`
	ClientID string `mapstructure:"client_id"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Topic    string `mapstructure:"topic"`
	QoS      int    `mapstructure:"qos"`
}

// CatalogConfig replaces the built-in tables when a list is non-empty.
type CatalogConfig struct {
	Devices        []models.DeviceProfile `mapstructure:"devices"`
	PaymentMethods []models.PaymentMethod `mapstructure:"payment_methods"`
	Stations       []models.Station       `mapstructure:"stations"`
}

// Options tells Load where to look.
type Options struct {
	ConfigDir  string // directory holding config.yml; default "configs"
	ConfigName string // default "config"
	EnvFile    string // default ".env"
}

var (
	errInvalidPort     = errors.New("port must not be empty")
	errInvalidInterval = errors.New("intervals must be positive")
	errInvalidQoS      = errors.New("mqtt.qos must be 0, 1 or 2")
	errMissingBroker   = errors.New("mqtt.broker is required when mqtt is enabled")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", ":memory:")
	v.SetDefault("telemetry.interval", "3s")
	v.SetDefault("telemetry.seed", 0)
	v.SetDefault("telemetry.max_active_users", 4)
	v.SetDefault("telemetry.history_retention", "1h")
	v.SetDefault("session.tick_interval", "100ms")
	v.SetDefault("ws.default_interval", "1s")
	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt.client_id", "solar-kiosk")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.topic", "kiosk/{client_id}/telemetry")
	v.SetDefault("mqtt.qos", 1)
}

// Load reads .env, then config.yml, then KIOSK_* environment overrides.
// A missing config file or .env is not an error; defaults apply.
func Load(opts Options) (*Config, error) {
	if opts.ConfigDir == "" {
		opts.ConfigDir = "configs"
	}
	if opts.ConfigName == "" {
		opts.ConfigName = "config"
	}
	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}

	if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", opts.EnvFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(opts.ConfigDir)
	v.SetConfigName(opts.ConfigName)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyCatalogDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyCatalogDefaults() {
	if len(c.Catalog.Devices) == 0 {
		c.Catalog.Devices = catalog.DefaultDevices()
	}
	if len(c.Catalog.PaymentMethods) == 0 {
		c.Catalog.PaymentMethods = catalog.DefaultPaymentMethods()
	}
	if len(c.Catalog.Stations) == 0 {
		c.Catalog.Stations = catalog.DefaultStations()
	}
}

// Validate rejects settings the engines cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errInvalidPort
	}
	if c.Telemetry.Interval <= 0 || c.Session.TickInterval <= 0 || c.WS.DefaultInterval <= 0 {
		return errInvalidInterval
	}
	if c.Telemetry.MaxActiveUsers < 0 {
		return fmt.Errorf("telemetry.max_active_users must be >= 0, got %d", c.Telemetry.MaxActiveUsers)
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return errInvalidQoS
	}
	if c.MQTT.Enabled && strings.TrimSpace(c.MQTT.Broker) == "" {
		return errMissingBroker
	}
	if err := catalog.Validate(c.Catalog.Devices, c.Catalog.PaymentMethods); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}

// NewCatalog builds the immutable catalog from the configured tables.
func (c *Config) NewCatalog() *catalog.Catalog {
	return catalog.New(c.Catalog.Devices, c.Catalog.PaymentMethods, c.Catalog.Stations)
}
