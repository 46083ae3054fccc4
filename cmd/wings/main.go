package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nexus-panel/wings/pkg/api"
	"github.com/nexus-panel/wings/pkg/config"
	"github.com/nexus-panel/wings/pkg/console"
	"github.com/nexus-panel/wings/pkg/events"
	"github.com/nexus-panel/wings/pkg/heartbeat"
	"github.com/nexus-panel/wings/pkg/installer"
	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/manager"
	"github.com/nexus-panel/wings/pkg/metrics"
	"github.com/nexus-panel/wings/pkg/registry"
	"github.com/nexus-panel/wings/pkg/runtime"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wings",
	Short: "Wings - Node daemon for the Nexus game server panel",
	Long: `Wings supervises game server containers on a single host for the
Nexus panel: provisioning, installs, power control, console streaming,
file management, and resource telemetry.

The Panel drives it over HTTP, WebSocket, and gRPC; Wings holds no state
of its own beyond sidecar files next to each server's data directory.`,
	Version: Version,
	RunE:    runDaemon,
}

func init() {
	// Set version template
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Wings version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the wings configuration file")

	// Add subcommands
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(diagnosticsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Wings version %s\nCommit: %s\nBuilt: %s\n", Version, Commit, BuildTime)
	},
}

func runDaemon(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}
	if err := initLogging(cfg); err != nil {
		return err
	}

	logger := log.WithComponent("main")
	logger.Info().
		Str("version", Version).
		Str("config", configPath).
		Msg("Starting wings")

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	docker, err := runtime.NewDocker(cfg.Docker.Socket)
	if err != nil {
		return fmt.Errorf("failed to create Docker client: %v", err)
	}

	ctx := context.Background()
	if err := docker.Ping(ctx); err != nil {
		return fmt.Errorf("docker is not responding on %s: %v", cfg.Docker.Socket, err)
	}
	if err := docker.EnsureNetwork(ctx); err != nil {
		return fmt.Errorf("failed to ensure container network: %v", err)
	}
	// Best effort: a failure here leaves stragglers off the network but the
	// daemon can still serve.
	if err := docker.AttachManagedContainers(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to attach managed containers to network")
	}

	reg := registry.New(cfg.Storage.DataDir)
	logger.Info().Int("servers", reg.Load()).Msg("Loaded server registry")

	store := console.NewStore()
	bus := events.NewBus()
	inst := installer.New(cfg, docker, bus)
	mgr := manager.New(docker, reg, store, bus, inst, cfg.Storage.DataDir)

	hb := heartbeat.New(cfg, Version, docker)
	hb.Start()

	collector := metrics.NewCollector(mgr)
	collector.Start()

	grpcSrv := api.NewGRPCServer(cfg, mgr, docker, bus, Version)
	httpSrv := api.NewHTTPServer(cfg, mgr, docker, store, Version)

	errCh := make(chan error, 2)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %v", err)
		}
	}()
	go func() {
		if err := httpSrv.Start(); err != nil {
			errCh <- fmt.Errorf("HTTP server error: %v", err)
		}
	}()

	logger.Info().
		Str("http", cfg.HTTPAddr()).
		Str("grpc", cfg.GRPCAddr()).
		Msg("Wings is running")

	// Wait for interrupt signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-errCh:
		logger.Error().Err(err).Msg("Server failed, shutting down")
	}

	hb.Stop()
	collector.Stop()
	grpcSrv.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("HTTP shutdown did not finish cleanly")
	}

	// Backgrounded power actions may still be talking to Docker; give them a
	// moment before the client goes away.
	time.Sleep(time.Second)

	if err := docker.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close Docker client")
	}

	logger.Info().Msg("Shutdown complete")
	return nil
}

// initLogging configures the global logger: human-readable console output by
// default, JSON to stdout and the configured file when one is set.
func initLogging(cfg *config.Config) error {
	logCfg := log.Config{Level: log.Level(cfg.Logging.Level)}
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %v", err)
		}
		logCfg.JSONOutput = true
		logCfg.Output = io.MultiWriter(os.Stdout, f)
	}
	log.Init(logCfg)
	return nil
}
