// Package config handles loading and validation of service configuration.
// Supports both development (env vars or CONFIG_FILE) and production
// (Secret Manager) modes.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"golang.org/x/mod/semver"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultMaxBodyBytes = 1 << 20
)

// Snapshots maps merchant IDs to their raw gateway configuration documents.
// Documents are kept as raw bytes so they can be served back verbatim.
type Snapshots map[string]json.RawMessage

// Config holds all service configuration.
// Environment determines whether snapshots load from local settings
// (development) or Secret Manager (production).
type Config struct {
	// Server settings
	Port        string `json:"port" env:"PORT"`
	Environment string `json:"environment" env:"ENVIRONMENT"`
	LogLevel    string `json:"log_level" env:"LOG_LEVEL"`

	// GCP settings (required in production)
	GCPProject     string `json:"gcp_project" env:"GCP_PROJECT"`
	SettingsSecret string `json:"settings_secret" env:"SETTINGS_SECRET"`

	// Oldest SDK allowed to call the REST API. Empty disables the gate.
	MinSDKVersion string `json:"min_sdk_version" env:"MIN_SDK_VERSION"`
	MaxBodyBytes  int64  `json:"max_body_bytes" env:"MAX_BODY_BYTES"`

	// Merchant snapshots served by the inspector.
	Snapshots Snapshots `json:"snapshots" env:"SNAPSHOTS"`
}

func defaults() *Config {
	return &Config{
		Port:         "8080",
		Environment:  EnvDevelopment,
		LogLevel:     "info",
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

// fetchSecret is swapped out in tests.
var fetchSecret = accessSecret

// Load reads configuration from file, environment, or Secret Manager.
// Priority: CONFIG_FILE (if set) → ENV vars. Unset values fall back to
// defaults; in production the snapshot set always comes from Secret Manager.
func Load(ctx context.Context) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if configPath := os.Getenv("CONFIG_FILE"); configPath != "" {
		cfg, err = loadFromFile(configPath)
	} else {
		cfg, err = loadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if err := mergo.Merge(cfg, defaults()); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Environment == EnvProduction {
		if err := cfg.loadFromSecretManager(ctx); err != nil {
			return nil, fmt.Errorf("loading snapshots: %w", err)
		}
	}

	return cfg, nil
}

// loadFromFile reads all configuration from a JSON file.
// Used for local development to avoid multiple ENV vars.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// loadFromEnv maps environment variables onto Config via struct tags.
// SNAPSHOTS holds a JSON object of merchant ID → document.
func loadFromEnv() (*Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(Snapshots{}): parseSnapshots,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

func parseSnapshots(v string) (any, error) {
	var s Snapshots
	if err := json.Unmarshal([]byte(v), &s); err != nil {
		return nil, fmt.Errorf("parsing SNAPSHOTS JSON: %w", err)
	}
	return s, nil
}

// loadFromSecretManager replaces the snapshot set with the secret payload.
// Secret name format: projects/{project}/secrets/{settings_secret}/versions/latest
func (c *Config) loadFromSecretManager(ctx context.Context) error {
	secretName := fmt.Sprintf("projects/%s/secrets/%s/versions/latest",
		c.GCPProject, c.SettingsSecret)

	data, err := fetchSecret(ctx, secretName)
	if err != nil {
		return err
	}

	var snapshots Snapshots
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return fmt.Errorf("parsing secret JSON: %w", err)
	}
	c.Snapshots = snapshots
	return nil
}

func accessSecret(ctx context.Context, name string) ([]byte, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating secret manager client: %w", err)
	}
	defer client.Close()

	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, fmt.Errorf("accessing secret %s: %w", name, err)
	}
	return result.Payload.Data, nil
}

// validate checks that all configuration fields hold usable values.
func (c *Config) validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}

	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("environment must be %s or %s, got %q",
			EnvDevelopment, EnvProduction, c.Environment)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	if c.MinSDKVersion != "" && !semver.IsValid("v"+strings.TrimPrefix(c.MinSDKVersion, "v")) {
		return fmt.Errorf("min_sdk_version %q is not a semantic version", c.MinSDKVersion)
	}

	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}

	if c.Environment == EnvProduction {
		if c.GCPProject == "" {
			return fmt.Errorf("GCP_PROJECT required in production environment")
		}
		if c.SettingsSecret == "" {
			return fmt.Errorf("SETTINGS_SECRET required in production environment")
		}
	}

	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
