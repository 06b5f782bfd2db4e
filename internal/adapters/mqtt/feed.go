package mqtt

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/ports"
)

// Config holds MQTT connection settings for the lux feed
type Config struct {
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string // e.g., "sensor/+/lux"
	TLS      *tls.Config
}

// Feed subscribes to a lux topic and publishes each reading into a SensorFeed hub
type Feed struct {
	client mqtt.Client
	topic  string
	sink   ports.SamplePublisher
}

// Connect dials the broker; call Subscribe to start receiving readings
func Connect(cfg Config, sink ports.SamplePublisher) (*Feed, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	if cfg.TLS != nil {
		opts.SetTLSConfig(cfg.TLS)
	}
	opts.SetOnConnectHandler(func(mqtt.Client) {
		log.Info().Str("broker", cfg.Broker).Msg("MQTT client connected")
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Msg("MQTT connection lost")
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &Feed{client: client, topic: cfg.Topic, sink: sink}, nil
}

// Subscribe starts forwarding readings from the lux topic
func (f *Feed) Subscribe() error {
	token := f.client.Subscribe(f.topic, 1, f.handleMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", f.topic, token.Error())
	}

	log.Info().Str("topic", f.topic).Msg("subscribed to lux topic")
	return nil
}

// Close unsubscribes and disconnects
func (f *Feed) Close() {
	if token := f.client.Unsubscribe(f.topic); token.Wait() && token.Error() != nil {
		log.Warn().Err(token.Error()).Str("topic", f.topic).Msg("failed to unsubscribe")
	}
	f.client.Disconnect(250)
	log.Info().Msg("MQTT client disconnected")
}

func (f *Feed) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	lux, err := ParsePayload(msg.Payload())
	if err != nil {
		log.Warn().Err(err).Str("topic", msg.Topic()).Msg("discarding malformed lux payload")
		return
	}

	f.sink.Publish(lux)
}

// luxPayload is the JSON shape published by sensor nodes
type luxPayload struct {
	DeviceID string   `json:"device_id"`
	Lux      *float64 `json:"lux"`
	Value    *float64 `json:"value"`
}

// ParsePayload accepts a bare decimal ("412.5") or a JSON object with a
// "lux" (or generic "value") field. Negative and non-finite values are rejected.
func ParsePayload(payload []byte) (float64, error) {
	text := strings.TrimSpace(string(payload))
	if text == "" {
		return 0, fmt.Errorf("empty payload")
	}

	var lux float64
	if strings.HasPrefix(text, "{") {
		var p luxPayload
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			return 0, fmt.Errorf("failed to decode lux payload: %w", err)
		}
		switch {
		case p.Lux != nil:
			lux = *p.Lux
		case p.Value != nil:
			lux = *p.Value
		default:
			return 0, fmt.Errorf("payload has no lux field")
		}
	} else {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse lux payload: %w", err)
		}
		lux = v
	}

	if lux < 0 || math.IsNaN(lux) || math.IsInf(lux, 0) {
		return 0, domain.ErrInvalidLux
	}
	return lux, nil
}
