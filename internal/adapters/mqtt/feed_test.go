package mqtt

import (
	"errors"
	"testing"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/feed"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    float64
		wantErr bool
	}{
		{name: "bare number", payload: "412.5", want: 412.5},
		{name: "bare number with whitespace", payload: " 80\n", want: 80},
		{name: "json lux", payload: `{"device_id":"esp32-1","lux":1200}`, want: 1200},
		{name: "json value", payload: `{"value":33.3}`, want: 33.3},
		{name: "json without lux", payload: `{"device_id":"esp32-1"}`, wantErr: true},
		{name: "garbage", payload: "bright", wantErr: true},
		{name: "empty", payload: "", wantErr: true},
		{name: "negative", payload: "-4", wantErr: true},
		{name: "NaN", payload: "NaN", wantErr: true},
		{name: "infinity", payload: "Inf", wantErr: true},
		{name: "signed infinity", payload: "+Inf", wantErr: true},
		{name: "negative infinity", payload: "-Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePayload([]byte(tt.payload))
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePayload_OutOfRangeIsInvalidLux(t *testing.T) {
	for _, payload := range []string{`{"lux":-1}`, "NaN", "Inf", "-Inf"} {
		if _, err := ParsePayload([]byte(payload)); !errors.Is(err, domain.ErrInvalidLux) {
			t.Errorf("%s: expected ErrInvalidLux, got %v", payload, err)
		}
	}
}

// fakeMessage implements the paho Message interface
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func TestHandleMessage_PublishesToHub(t *testing.T) {
	hub := feed.NewHub()
	f := &Feed{topic: "sensor/+/lux", sink: hub}

	f.handleMessage(nil, fakeMessage{topic: "sensor/esp32-1/lux", payload: []byte("950")})
	f.handleMessage(nil, fakeMessage{topic: "sensor/esp32-1/lux", payload: []byte("not-a-number")})
	f.handleMessage(nil, fakeMessage{topic: "sensor/esp32-1/lux", payload: []byte("NaN")})

	lux, ok := hub.Latest()
	if !ok || lux != 950 {
		t.Errorf("expected hub latest 950, got %v (ok=%v)", lux, ok)
	}
}
