package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/catalog"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/feed"
	grpcAdapter "github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/grpc"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/memory"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/mock"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/mqtt"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/rest"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/sqlite"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/analysis"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/config"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/ports"
	"github.com/quentinrf/plant-monitor/services/light-analysis/pkg/api"
	"github.com/quentinrf/plant-monitor/services/light-analysis/pkg/tlsconfig"
)

func main() {
	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	log.Info().Msg("starting light analysis service")

	// Initialize repository
	var repo domain.RecordRepository
	switch cfg.RepoType {
	case "sqlite":
		r, err := sqlite.NewRecordRepository(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("db_path", cfg.DBPath).Msg("failed to open SQLite database")
		}
		defer r.Close()
		repo = r
		log.Info().Str("db_path", cfg.DBPath).Msg("initialized SQLite repository")
	default:
		repo = memory.NewRecordRepository()
		log.Info().Msg("initialized in-memory repository")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize sensor feed
	hub := feed.NewHub()
	switch cfg.SensorType {
	case "mqtt":
		mqttCfg := mqtt.Config{
			Broker:   cfg.MQTTBroker,
			ClientID: cfg.MQTTClientID,
			Username: cfg.MQTTUsername,
			Password: cfg.MQTTPassword,
			Topic:    cfg.MQTTTopic,
		}
		if cfg.MQTTCA != "" {
			tlsCfg, err := tlsconfig.LoadClientTLS(cfg.MQTTCA, cfg.MQTTCert, cfg.MQTTKey)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to load MQTT TLS config")
			}
			mqttCfg.TLS = tlsCfg
		}
		lux, err := mqtt.Connect(mqttCfg, hub)
		if err != nil {
			log.Fatal().Err(err).Str("broker", cfg.MQTTBroker).Msg("failed to connect to MQTT broker")
		}
		if err := lux.Subscribe(); err != nil {
			log.Fatal().Err(err).Msg("failed to subscribe to lux topic")
		}
		defer lux.Close()
		log.Info().Str("topic", cfg.MQTTTopic).Msg("initialized MQTT lux feed")
	default:
		sensor := mock.NewFakeSensor(cfg.MockBaseLux, cfg.MockVariationLux)
		defer sensor.Close()
		go ports.NewPump(sensor, hub, cfg.SampleInterval, nil).Start(ctx)
		log.Info().
			Float64("base_lux", cfg.MockBaseLux).
			Float64("variation_lux", cfg.MockVariationLux).
			Msg("initialized mock sensor")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Analysis engine
	matcher := domain.NewMatcher(domain.DefaultCatalog())
	controller := analysis.NewController(
		hub,
		catalog.NewSearcher(matcher, cfg.SearchLatency, nil),
		analysis.NewAssembler(repo, nil),
		analysis.WithTick(cfg.ProgressTick),
		analysis.WithMetrics(analysis.NewMetrics(registry)),
	)
	defer controller.Close()

	handler := grpcAdapter.NewAnalysisServiceHandler(controller, repo, matcher)

	// Configure TLS if certificates are provided
	var serverOpts []grpc.ServerOption
	if cfg.TLSCert != "" {
		tlsCfg, err := tlsconfig.LoadServerTLS(cfg.TLSCert, cfg.TLSKey, cfg.TLSCA)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Bool("client_auth", cfg.TLSCA != "").Msg("TLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set, starting without TLS (dev mode only)")
	}

	// Create gRPC server
	grpcServer := grpc.NewServer(serverOpts...)
	api.RegisterAnalysisServiceServer(grpcServer, handler)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPCPort))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}

	log.Info().Str("port", cfg.GRPCPort).Msg("gRPC server listening")

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatal().Err(err).Msg("failed to serve")
		}
	}()

	// Optional HTTP/JSON surface
	var httpServer *http.Server
	if cfg.HTTPPort != "" {
		if cfg.LogLevel > zerolog.DebugLevel {
			gin.SetMode(gin.ReleaseMode)
		}
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
			Handler:           rest.NewRouter(handler, registry),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info().Str("port", cfg.HTTPPort).Msg("HTTP server listening")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("failed to serve HTTP")
			}
		}()
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	cancel() // Stop sensor pump
	if httpServer != nil {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("HTTP shutdown incomplete")
		}
		stop()
	}
	grpcServer.GracefulStop()

	log.Info().Msg("server stopped")
}
