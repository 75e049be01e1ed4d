package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"solar_kiosk/internal/clock"
	"solar_kiosk/internal/config"
	"solar_kiosk/internal/logger"
	"solar_kiosk/internal/mqtt"
	"solar_kiosk/internal/repository"
	"solar_kiosk/internal/repository/db"
	"solar_kiosk/internal/service"
)

// app holds the wired engine and what must be released on exit.
type app struct {
	db       *sql.DB
	mqtt     *mqtt.Client
	services *service.Service
	log      *logger.Logger
}

// newApp opens storage, connects the broker when enabled and wires the services.
func newApp(cfg *config.Config, log *logger.Logger, withMQTT bool) (*app, error) {
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to init sqlite: %w", err)
	}
	a := &app{db: conn, log: log}

	var sinks []service.TelemetrySink
	if withMQTT && cfg.MQTT.Enabled {
		client, err := mqtt.NewClient(mqtt.ClientConfig{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
		}, log)
		if err != nil {
			a.close()
			return nil, err
		}
		a.mqtt = client
		pub := mqtt.NewTelemetryPublisher(client.Native(), mqtt.PublisherConfig{
			Topic:    cfg.MQTT.Topic,
			ClientID: cfg.MQTT.ClientID,
			QoS:      byte(cfg.MQTT.QoS),
		})
		log.Infow("mqtt_telemetry_enabled", "topic", pub.Topic())
		sinks = append(sinks, pub)
	}

	model := service.DefaultTelemetryModel()
	model.MaxActiveUsers = cfg.Telemetry.MaxActiveUsers

	a.services = service.NewService(repository.NewRepository(conn), service.Deps{
		Clock:   clock.NewReal(),
		Random:  newRandom(cfg.Telemetry.Seed),
		Catalog: cfg.NewCatalog(),
		Telemetry: service.TelemetryConfig{
			Interval: cfg.Telemetry.Interval,
			Model:    &model,
		},
		ProgressInterval: cfg.Session.TickInterval,
		HistoryRetention: cfg.Telemetry.HistoryRetention,
		Sinks:            sinks,
		Logger:           log,
	})
	return a, nil
}

// newRandom seeds from the clock when seed is 0.
func newRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// close releases the broker connection and the database.
func (a *app) close() {
	if a.mqtt != nil {
		a.mqtt.Close()
	}
	if err := a.db.Close(); err != nil {
		a.log.Errorw("failed to close sqlite", "err", err)
	}
}
