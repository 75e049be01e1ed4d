package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"solar_kiosk/internal/models"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// DefaultPublishTimeout bounds how long one publish may wait for the broker.
const DefaultPublishTimeout = 2 * time.Second

var errPublishTimeout = errors.New("publish timed out")

// publisher is the part of paho.Client the telemetry publisher needs.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// PublisherConfig holds configuration for TelemetryPublisher.
type PublisherConfig struct {
	Topic    string // e.g. "kiosk/{client_id}/telemetry"
	ClientID string
	QoS      byte
	Retained bool
	Timeout  time.Duration
}

// TelemetryPublisher pushes every telemetry snapshot to the broker as JSON.
// It is a telemetry sink: errors go back to the generator, which logs them.
type TelemetryPublisher struct {
	client  publisher
	topic   string
	qos     byte
	retain  bool
	timeout time.Duration
}

func NewTelemetryPublisher(client publisher, config PublisherConfig) *TelemetryPublisher {
	if config.Timeout <= 0 {
		config.Timeout = DefaultPublishTimeout
	}
	if config.QoS > 2 {
		config.QoS = 1
	}
	return &TelemetryPublisher{
		client:  client,
		topic:   formatTopic(config.Topic, config.ClientID),
		qos:     config.QoS,
		retain:  config.Retained,
		timeout: config.Timeout,
	}
}

// Topic is the resolved topic snapshots go to.
func (p *TelemetryPublisher) Topic() string { return p.topic }

// Record publishes one snapshot.
func (p *TelemetryPublisher) Record(ctx context.Context, s models.TelemetrySnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal telemetry snapshot: %w", err)
	}

	token := p.client.Publish(p.topic, p.qos, p.retain, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("%w after %s on %s", errPublishTimeout, p.timeout, p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish telemetry to %s: %w", p.topic, err)
	}
	return nil
}

// formatTopic replaces the {client_id} placeholder.
func formatTopic(topicPattern, clientID string) string {
	return strings.ReplaceAll(topicPattern, "{client_id}", clientID)
}
