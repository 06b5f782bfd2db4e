package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	GRPCPort string
	HTTPPort string // empty disables the HTTP/JSON surface
	LogLevel zerolog.Level

	RepoType string // "memory" | "sqlite"
	DBPath   string // SQLite database file path (used when RepoType=sqlite)

	SensorType       string // "mock" | "mqtt"
	SampleInterval   time.Duration
	MockBaseLux      float64
	MockVariationLux float64

	MQTTBroker   string
	MQTTClientID string
	MQTTUsername string
	MQTTPassword string
	MQTTTopic    string
	MQTTCA       string // CA bundle; enables TLS to the broker
	MQTTCert     string // optional client certificate for the broker
	MQTTKey      string

	SearchLatency time.Duration
	ProgressTick  time.Duration

	TLSCert string // path to this service's certificate
	TLSKey  string // path to this service's private key
	TLSCA   string // path to the CA certificate
}

// Load reads configuration from the environment, after applying a .env file if one exists
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GRPCPort: getEnv("GRPC_PORT", "50051"),
		HTTPPort: os.Getenv("HTTP_PORT"),
		LogLevel: getEnvLevel("LOG_LEVEL", zerolog.InfoLevel),

		RepoType: getEnv("REPO_TYPE", "memory"),
		DBPath:   getEnv("DB_PATH", "./light_analysis.db"),

		SensorType:       getEnv("SENSOR_TYPE", "mock"),
		SampleInterval:   getEnvInterval("SAMPLE_INTERVAL", time.Second),
		MockBaseLux:      getEnvFloat("MOCK_BASE_LUX", 500),
		MockVariationLux: getEnvFloat("MOCK_VARIATION_LUX", 100),

		MQTTBroker:   getEnv("MQTT_BROKER", "tcp://localhost:1883"),
		MQTTClientID: getEnv("MQTT_CLIENT_ID", "light-analysis"),
		MQTTUsername: os.Getenv("MQTT_USERNAME"),
		MQTTPassword: os.Getenv("MQTT_PASSWORD"),
		MQTTTopic:    getEnv("MQTT_TOPIC_LUX", "sensor/+/lux"),
		MQTTCA:       os.Getenv("MQTT_CA"),
		MQTTCert:     os.Getenv("MQTT_CERT"),
		MQTTKey:      os.Getenv("MQTT_KEY"),

		SearchLatency: getEnvDuration("SEARCH_LATENCY", time.Second),
		ProgressTick:  getEnvInterval("PROGRESS_TICK", 100*time.Millisecond),

		TLSCert: os.Getenv("TLS_CERT"),
		TLSKey:  os.Getenv("TLS_KEY"),
		TLSCA:   os.Getenv("TLS_CA"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("invalid float, using default")
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
		return defaultValue
	}
	return d
}

// getEnvInterval is getEnvDuration for ticker periods, which must be positive
func getEnvInterval(key string, defaultValue time.Duration) time.Duration {
	d := getEnvDuration(key, defaultValue)
	if d <= 0 {
		log.Warn().Str("key", key).Dur("value", d).Msg("interval must be positive, using default")
		return defaultValue
	}
	return d
}

func getEnvLevel(key string, defaultValue zerolog.Level) zerolog.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	level, err := zerolog.ParseLevel(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("invalid log level, using default")
		return defaultValue
	}
	return level
}
