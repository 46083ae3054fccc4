package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nexus-panel/wings/pkg/config"
	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/runtime"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Write a wings configuration file",
	Long: `Write a fresh configuration file from the node credentials issued by
the Panel. Existing configuration at the target path is overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		panelURL, _ := cmd.Flags().GetString("panel-url")
		tokenID, _ := cmd.Flags().GetString("token-id")
		token, _ := cmd.Flags().GetString("token")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		port, _ := cmd.Flags().GetInt("port")

		cfg := config.Default()
		cfg.Panel.URL = panelURL
		cfg.Panel.TokenID = tokenID
		cfg.Panel.Token = token
		cfg.Storage.DataDir = dataDir
		cfg.API.Port = port

		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %v", err)
		}
		if err := cfg.Save(configPath); err != nil {
			return fmt.Errorf("failed to write config: %v", err)
		}

		fmt.Printf("✓ Configuration written to %s\n", configPath)
		fmt.Printf("  Panel URL: %s\n", cfg.Panel.URL)
		fmt.Printf("  Data Directory: %s\n", cfg.Storage.DataDir)
		fmt.Printf("  HTTP API: %s\n", cfg.HTTPAddr())
		return nil
	},
}

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Check node configuration and Docker connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		// Components log through the global logger; keep it quiet here so
		// the report below stays readable.
		log.Init(log.Config{Level: log.ErrorLevel})

		fmt.Printf("Wings %s (commit %s, built %s)\n\n", Version, Commit, BuildTime)

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}
		fmt.Printf("Configuration: %s\n", configPath)
		fmt.Printf("  Panel URL: %s\n", cfg.Panel.URL)
		fmt.Printf("  Token ID: %s\n", cfg.Panel.TokenID)
		fmt.Println("  Token: <redacted>")
		fmt.Printf("  HTTP API: %s\n", cfg.HTTPAddr())
		fmt.Printf("  gRPC API: %s\n", cfg.GRPCAddr())
		fmt.Printf("  Data Directory: %s\n", cfg.Storage.DataDir)
		fmt.Printf("  Docker Socket: %s\n", cfg.Docker.Socket)
		fmt.Println()

		if err := probeDataDir(cfg.Storage.DataDir); err != nil {
			fmt.Printf("✗ Data directory is not writable: %v\n", err)
		} else {
			fmt.Println("✓ Data directory is writable")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		docker, err := runtime.NewDocker(cfg.Docker.Socket)
		if err != nil {
			fmt.Printf("✗ Docker client: %v\n", err)
			return nil
		}
		defer docker.Close()

		if err := docker.Ping(ctx); err != nil {
			fmt.Printf("✗ Docker is not responding: %v\n", err)
			return nil
		}
		dockerVersion, err := docker.Version(ctx)
		if err != nil {
			dockerVersion = "unknown"
		}
		fmt.Printf("✓ Docker is responding (server version %s)\n", dockerVersion)

		if err := docker.EnsureNetwork(ctx); err != nil {
			fmt.Printf("✗ Container network %s: %v\n", runtime.NetworkName, err)
		} else {
			fmt.Printf("✓ Container network %s is present\n", runtime.NetworkName)
		}

		servers, err := docker.ListManaged(ctx)
		if err != nil {
			fmt.Printf("✗ Failed to list managed containers: %v\n", err)
		} else {
			fmt.Printf("✓ Managed containers: %d\n", len(servers))
		}
		return nil
	},
}

func init() {
	defaults := config.Default()

	configureCmd.Flags().String("panel-url", "", "Base URL of the Panel, e.g. https://panel.example.com")
	configureCmd.Flags().String("token-id", "", "Node token identifier issued by the Panel")
	configureCmd.Flags().String("token", "", "Node token secret issued by the Panel")
	configureCmd.Flags().String("data-dir", defaults.Storage.DataDir, "Directory holding server data volumes")
	configureCmd.Flags().Int("port", defaults.API.Port, "Port for the HTTP API (gRPC binds the next port up)")
	configureCmd.MarkFlagRequired("panel-url")
	configureCmd.MarkFlagRequired("token")
}

// probeDataDir verifies the data directory exists and accepts writes by
// round-tripping a marker file.
func probeDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".wings-diagnostics")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		return err
	}
	return os.Remove(probe)
}
