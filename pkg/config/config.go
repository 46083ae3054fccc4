package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nexus-panel/wings/pkg/types"
)

// DefaultPath is where the daemon looks for its configuration unless
// overridden with --config.
const DefaultPath = "/etc/nexus-wings/config.toml"

// Config is the daemon configuration, loaded from a TOML file at startup.
type Config struct {
	Panel   PanelConfig   `toml:"panel"`
	API     APIConfig     `toml:"api"`
	Docker  DockerConfig  `toml:"docker"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

// PanelConfig identifies the control plane and the credential it uses.
type PanelConfig struct {
	URL     string `toml:"url"`
	TokenID string `toml:"token_id"`
	Token   string `toml:"token"`
}

// Credential returns the bearer credential presented to the Panel on
// outbound calls: "<token_id>.<token>", or just the token when no id is
// configured.
func (p PanelConfig) Credential() string {
	if p.TokenID == "" {
		return p.Token
	}
	return p.TokenID + "." + p.Token
}

// APIConfig controls the HTTP listener. The gRPC listener always binds the
// next port up.
type APIConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	TLSCert string `toml:"tls_cert,omitempty"`
	TLSKey  string `toml:"tls_key,omitempty"`
}

// DockerConfig locates the container runtime.
type DockerConfig struct {
	Socket string `toml:"socket"`
}

// StorageConfig locates per-server data directories.
type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

// LoggingConfig controls log verbosity and optional file output.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// Default returns a Config with every optional field at its default value.
// Panel URL and token have no defaults; they must come from the file.
func Default() Config {
	return Config{
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Docker: DockerConfig{
			Socket: "/var/run/docker.sock",
		},
		Storage: StorageConfig{
			DataDir: "/var/lib/nexus-wings/data",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads and parses the TOML configuration at path. Absent optional
// fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.Configf("Failed to read config file: %v", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, types.Configf("Failed to parse config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that have no usable defaults.
func (c *Config) Validate() error {
	if c.Panel.URL == "" {
		return types.Configf("panel.url is required")
	}
	if c.Panel.Token == "" {
		return types.Configf("panel.token is required")
	}
	return nil
}

// Save writes the configuration as TOML, creating the parent directory if
// needed. The file carries the node token, so it is not group or world
// readable.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// HTTPAddr returns the HTTP listen address.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.API.Host, c.API.Port)
}

// GRPCAddr returns the gRPC listen address (HTTP port + 1).
func (c *Config) GRPCAddr() string {
	return fmt.Sprintf("%s:%d", c.API.Host, c.API.Port+1)
}
