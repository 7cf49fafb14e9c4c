package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zgpcy/wallclock/internal/clock"
	"github.com/zgpcy/wallclock/internal/collector"
	"github.com/zgpcy/wallclock/internal/config"
	"github.com/zgpcy/wallclock/internal/display"
	"github.com/zgpcy/wallclock/internal/logger"
	"github.com/zgpcy/wallclock/internal/server"
	"github.com/zgpcy/wallclock/internal/version"
	"github.com/zgpcy/wallclock/internal/wallclock"
)

const (
	// DefaultShutdownTimeout is the maximum time to wait for graceful shutdown
	DefaultShutdownTimeout = 30 * time.Second
)

var (
	configPath  = flag.String("config", "", "Path to configuration file (optional)")
	mode        = flag.String("mode", "", "Run mode: serve or terminal (overrides config)")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Load configuration first (need log level from config)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *mode != "" {
		cfg.Mode = *mode
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid -mode flag: %v", err)
		}
	}

	// The terminal readout owns stdout
	logOutput := os.Stdout
	if cfg.Mode == config.ModeTerminal {
		logOutput = os.Stderr
	}
	logger := logger.NewWithOptions(cfg.LogLevel, cfg.LogFormat, logOutput)
	logger.Info("wallclock starting",
		"version", version.Version,
		"config_path", *configPath,
		"mode", cfg.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var code int
	switch cfg.Mode {
	case config.ModeTerminal:
		code = runTerminal(ctx, logger)
	default:
		code = runServe(ctx, cfg, logger)
	}
	stop()
	os.Exit(code)
}

// runTerminal redraws the readout on stdout until interrupted
func runTerminal(ctx context.Context, log *logger.Logger) int {
	updater := wallclock.NewUpdater(clock.NewRealClock(), display.NewWriterTarget(os.Stdout), log)
	updater.Start(ctx)

	<-ctx.Done()
	updater.Wait()
	fmt.Fprintln(os.Stdout)
	log.Info("Received shutdown signal, stopped")
	return 0
}

// newRegistry builds the registry served on /metrics: render metrics plus Go runtime and process metrics
func newRegistry(updater *wallclock.Updater, log *logger.Logger) (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()

	if err := registry.Register(collector.NewClockCollector(updater)); err != nil {
		return nil, err
	}

	// Register Go runtime metrics (memory, goroutines, GC stats)
	if err := registry.Register(prometheus.NewGoCollector()); err != nil {
		log.Warn("Failed to register Go collector", "error", err)
	} else {
		log.Info("Go runtime metrics registered")
	}

	// Register process metrics (CPU, memory, file descriptors)
	if err := registry.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{})); err != nil {
		log.Warn("Failed to register process collector", "error", err)
	} else {
		log.Info("Process metrics registered")
	}

	return registry, nil
}

// runServe hosts the readout page over HTTP until interrupted
func runServe(ctx context.Context, cfg *config.Config, log *logger.Logger) int {
	clk := clock.NewRealClock()
	broadcaster := display.NewBroadcaster()
	updater := wallclock.NewUpdater(clk, broadcaster, log.WithFields("component", "updater"))

	log.Info("Registering Prometheus collectors")
	registry, err := newRegistry(updater, log)
	if err != nil {
		log.Error("Failed to register collector", "error", err)
		return 1
	}

	log.Info("Creating HTTP server", "address", cfg.Addr(), "tls", cfg.TLS.Enabled())
	srv := server.NewServer(cfg, updater, broadcaster, clk, registry, log)

	updaterCtx, cancelUpdater := context.WithCancel(ctx)
	defer cancelUpdater()

	// The host page is ready as soon as the process is; render now and every second after
	updater.Start(updaterCtx)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		cancelUpdater()
		updater.Wait()
		if err != nil {
			log.Error("Server error", "error", err)
			return 1
		}
		return 0

	case <-ctx.Done():
		log.Info("Received shutdown signal, starting graceful shutdown")

		cancelUpdater()
		updater.Wait()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Error during server shutdown", "error", err)
			return 1
		}

		log.Info("Server stopped gracefully")
		return 0
	}
}
