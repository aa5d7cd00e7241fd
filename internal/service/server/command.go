package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"google.golang.org/grpc"

	api "github.com/oshokin/light-alarm/internal/api/grpc/alarm"
	httpapi "github.com/oshokin/light-alarm/internal/api/http/alarm"
	"github.com/oshokin/light-alarm/internal/bulb"
	"github.com/oshokin/light-alarm/internal/clock"
	"github.com/oshokin/light-alarm/internal/config"
	"github.com/oshokin/light-alarm/internal/logger"
	"github.com/oshokin/light-alarm/internal/ntp"
	pb "github.com/oshokin/light-alarm/internal/pb/v1"
	"github.com/oshokin/light-alarm/internal/repository/alarms"
	"github.com/oshokin/light-alarm/internal/service/scheduler"
	"github.com/oshokin/light-alarm/internal/transition"
	"github.com/oshokin/light-alarm/internal/version"
)

// httpShutdownTimeout bounds the graceful shutdown of the HTTP API.
const httpShutdownTimeout = 5 * time.Second

// Options controls the light-alarm-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// HTTPAddress provides an optional listen address override for the HTTP API.
	HTTPAddress string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the scheduler and its APIs and blocks until context is canceled or a server stops.
//
//nolint:funlen // Linear startup sequence.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "light-alarm-server")

	logger.InfoKV(ctx, "Starting light-alarm-server", "build", version.Full())

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = logger.SetLevelName(settings.LogLevel); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	listenAddress, err := resolveListenAddress(settings.GRPCAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	registry, err := settings.Registry()
	if err != nil {
		return fmt.Errorf("build bulb registry: %w", err)
	}

	backend, err := openBackend(ctx, &settings.Storage)
	if err != nil {
		return fmt.Errorf("open alarm storage: %w", err)
	}

	if closer, ok := backend.(io.Closer); ok {
		defer closer.Close()
	}

	rtc, err := clock.NewSoftRTC(afero.NewOsFs(), filepath.Clean(settings.RTCFile), nil)
	if err != nil {
		return fmt.Errorf("open hardware clock: %w", err)
	}

	engine := transition.NewEngine(nil)

	bulbs, closeBulbs, err := openBulbs(ctx, &settings.MQTT, settings.Timeout, engine)
	if err != nil {
		return fmt.Errorf("connect bulbs: %w", err)
	}

	defer closeBulbs()

	var timeSource scheduler.TimeSource
	if !settings.NTP.Disabled {
		timeSource = ntp.NewSource(ntp.Options{
			Server:   settings.NTP.Server,
			Attempts: settings.NTP.Attempts,
			Backoff:  settings.NTP.Backoff,
			Timeout:  settings.NTP.Timeout,
		})
	}

	ctl := scheduler.NewController(scheduler.Options{
		Bulbs:          bulbs,
		Transitions:    engine,
		Store:          alarms.NewStore(backend, registry),
		Resolver:       registry,
		Clock:          rtc,
		Monotonic:      clock.NewMonotonic(),
		TimeSource:     timeSource,
		ResyncInterval: settings.ResyncInterval,
	})
	ctl.Begin(ctx)

	svc := newService(ctl, engine, timeSource)

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterAlarmServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Alarm server listening",
		"listen_address", listenAddress,
		"storage", settings.Storage.Driver,
		"storage_path", settings.Storage.Path,
	)

	httpAddress := settings.HTTPAddress
	if opts.HTTPAddress != "" {
		httpAddress = opts.HTTPAddress
	}

	var httpServer *http.Server
	if httpAddress != "" {
		httpServer, err = startHTTP(ctx, httpAddress, svc, settings.Timeout)
		if err != nil {
			return err
		}
	}

	go svc.run(ctx, settings.TickInterval)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down servers")

		if httpServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), httpShutdownTimeout)
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.WarnKV(ctx, "HTTP shutdown failed", "error", err)
			}

			cancel()
		}

		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "Servers stopped")

	return nil
}

// openBackend opens the configured alarm record backend.
func openBackend(ctx context.Context, storage *config.Storage) (alarms.Backend, error) {
	if storage.Driver == config.StorageSQLite {
		backend, err := alarms.OpenSQLiteBackend(ctx, storage.Path)
		if err != nil {
			return nil, err
		}

		return backend, nil
	}

	backend, err := alarms.OpenFileBackend(storage.Path)
	if err != nil {
		return nil, err
	}

	return backend, nil
}

// openBulbs connects to the MQTT broker, or logs commands when none is configured.
func openBulbs(
	ctx context.Context,
	settings *config.MQTT,
	timeout time.Duration,
	engine bulb.Engine,
) (bulb.Controller, func(), error) {
	if settings.Broker == "" {
		logger.Warn(ctx, "No MQTT broker configured, bulb commands are only logged")

		return bulb.NewNullController(engine), func() {}, nil
	}

	c, err := bulb.DialMQTT(ctx, bulb.MQTTOptions{
		Broker:      settings.Broker,
		ClientID:    settings.ClientID,
		Username:    settings.Username,
		Password:    settings.Password,
		TopicPrefix: settings.TopicPrefix,
		QoS:         settings.QoS,
		Timeout:     timeout,
	}, engine)
	if err != nil {
		return nil, nil, err
	}

	return c, c.Close, nil
}

// startHTTP serves the HTTP API in the background.
func startHTTP(ctx context.Context, address string, svc api.Service, timeout time.Duration) (*http.Server, error) {
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	server := &http.Server{
		Handler:           httpapi.NewRouter(ctx, svc),
		ReadHeaderTimeout: timeout,
	}

	go func() {
		if err := server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorKV(ctx, "HTTP API stopped", "error", err)
		}
	}()

	logger.InfoKV(ctx, "HTTP API listening", "listen_address", address)

	return server, nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
