package ports

import (
	"context"
)

// LightSensor defines how to poll light levels from a driver
// This is a PORT - adapters (GPIO, Mock) will implement it
type LightSensor interface {
	// ReadLux returns current light level in lux
	ReadLux(ctx context.Context) (float64, error)

	// Close releases any resources
	Close() error
}

// SubscriptionToken identifies one SensorFeed subscription
type SubscriptionToken uint64

// SensorFeed pushes illuminance samples to subscribers
// This is a PORT - the in-process hub implements it, fed by MQTT or a polled sensor
type SensorFeed interface {
	// Subscribe registers fn for every future sample
	Subscribe(fn func(lux float64)) SubscriptionToken

	// Unsubscribe removes a subscription; each token may be released once
	Unsubscribe(token SubscriptionToken) error

	// Latest returns the most recent sample, if any was ever published
	Latest() (float64, bool)
}

// SamplePublisher accepts samples from a producer (sensor poller, MQTT)
type SamplePublisher interface {
	Publish(lux float64)
}
