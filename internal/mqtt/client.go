package mqtt

import (
	"fmt"
	"time"

	"solar_kiosk/internal/logger"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// Client manages the broker connection. Publishing goes through TelemetryPublisher.
type Client struct {
	client paho.Client
	config ClientConfig
	log    *logger.Logger
}

// ClientConfig holds MQTT client configuration.
type ClientConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
}

// NewClient connects to the broker. log may be nil.
func NewClient(config ClientConfig, log *logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.Nop()
	}
	opts := paho.NewClientOptions()
	opts.AddBroker(config.Broker)
	opts.SetClientID(config.ClientID)
	opts.SetUsername(config.Username)
	opts.SetPassword(config.Password)
	opts.SetOnConnectHandler(func(paho.Client) {
		log.Infow("mqtt_connected", "broker", config.Broker)
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		log.Warnw("mqtt_connection_lost", "broker", config.Broker, "error", err)
	})
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	client := paho.NewClient(opts)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to MQTT broker %s: %w", config.Broker, token.Error())
	}

	return &Client{
		client: client,
		config: config,
		log:    log,
	}, nil
}

// Native returns the underlying paho client.
func (c *Client) Native() paho.Client {
	return c.client
}

func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}

// Close disconnects, allowing 250ms for in-flight work.
func (c *Client) Close() {
	c.client.Disconnect(250)
	c.log.Infow("mqtt_disconnected", "broker", c.config.Broker)
}
