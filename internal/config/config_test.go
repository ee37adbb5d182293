package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so tests don't leak into each other.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "ENVIRONMENT", "LOG_LEVEL", "GCP_PROJECT",
		"SETTINGS_SECRET", "MIN_SDK_VERSION", "MAX_BODY_BYTES", "SNAPSHOTS",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func stubSecret(t *testing.T, fn func(ctx context.Context, name string) ([]byte, error)) {
	t.Helper()
	orig := fetchSecret
	fetchSecret = fn
	t.Cleanup(func() { fetchSecret = orig })
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MIN_SDK_VERSION", "4.0.0")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("SNAPSHOTS", `{"merchant-a":{"environment":"sandbox","merchantId":"merchant-a","clientApiUrl":"https://api"}}`)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.Environment != EnvDevelopment {
		t.Errorf("Environment = %s, want %s", cfg.Environment, EnvDevelopment)
	}
	if cfg.MinSDKVersion != "4.0.0" {
		t.Errorf("MinSDKVersion = %s, want 4.0.0", cfg.MinSDKVersion)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Errorf("MaxBodyBytes = %d, want 2048", cfg.MaxBodyBytes)
	}
	if len(cfg.Snapshots) != 1 {
		t.Fatalf("Snapshots len = %d, want 1", len(cfg.Snapshots))
	}
	if !strings.Contains(string(cfg.Snapshots["merchant-a"]), `"merchantId":"merchant-a"`) {
		t.Errorf("snapshot not kept verbatim: %s", cfg.Snapshots["merchant-a"])
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.Environment != EnvDevelopment {
		t.Errorf("Environment = %s, want development", cfg.Environment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes {
		t.Errorf("MaxBodyBytes = %d, want %d", cfg.MaxBodyBytes, defaultMaxBodyBytes)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

func TestLoadInvalidSnapshotsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SNAPSHOTS", `not json`)

	if _, err := Load(context.Background()); err == nil {
		t.Error("expected error for malformed SNAPSHOTS")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "non-numeric port",
			env:     map[string]string{"PORT": "http"},
			wantErr: "invalid port",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"PORT": "70000"},
			wantErr: "invalid port",
		},
		{
			name:    "unknown environment",
			env:     map[string]string{"ENVIRONMENT": "staging"},
			wantErr: "environment must be",
		},
		{
			name:    "unknown log level",
			env:     map[string]string{"LOG_LEVEL": "trace"},
			wantErr: "invalid log_level",
		},
		{
			name:    "bad min sdk version",
			env:     map[string]string{"MIN_SDK_VERSION": "four"},
			wantErr: "not a semantic version",
		},
		{
			name:    "production without project",
			env:     map[string]string{"ENVIRONMENT": "production", "SETTINGS_SECRET": "s"},
			wantErr: "GCP_PROJECT required",
		},
		{
			name:    "production without secret",
			env:     map[string]string{"ENVIRONMENT": "production", "GCP_PROJECT": "p"},
			wantErr: "SETTINGS_SECRET required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(context.Background())
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadProductionFromSecretManager(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("GCP_PROJECT", "acme-prod")
	t.Setenv("SETTINGS_SECRET", "gateway-snapshots")
	// Ignored in production: the secret wins.
	t.Setenv("SNAPSHOTS", `{"local":{}}`)

	var gotName string
	stubSecret(t, func(_ context.Context, name string) ([]byte, error) {
		gotName = name
		return []byte(`{"merchant-prod":{"environment":"production","merchantId":"merchant-prod","clientApiUrl":"https://api"}}`), nil
	})

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := "projects/acme-prod/secrets/gateway-snapshots/versions/latest"
	if gotName != want {
		t.Errorf("secret name = %s, want %s", gotName, want)
	}
	if _, ok := cfg.Snapshots["merchant-prod"]; !ok {
		t.Error("expected merchant-prod snapshot from secret")
	}
	if _, ok := cfg.Snapshots["local"]; ok {
		t.Error("local snapshot should be replaced by secret payload")
	}
}

func TestLoadProductionSecretErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		err     error
		wantErr string
	}{
		{name: "access failure", err: errors.New("permission denied"), wantErr: "permission denied"},
		{name: "bad payload", payload: []byte(`[1,2]`), wantErr: "parsing secret JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("ENVIRONMENT", "production")
			t.Setenv("GCP_PROJECT", "p")
			t.Setenv("SETTINGS_SECRET", "s")
			stubSecret(t, func(context.Context, string) ([]byte, error) {
				return tt.payload, tt.err
			})

			_, err := Load(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	configJSON := `{
		"port": "3000",
		"log_level": "warn",
		"min_sdk_version": "v4.39.0",
		"snapshots": {
			"merchant-file": {"environment": "sandbox", "merchantId": "merchant-file", "clientApiUrl": "https://api"}
		}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(configJSON), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	// Env vars are not consulted when CONFIG_FILE is set.
	t.Setenv("PORT", "9999")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Port = %s, want 3000", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.LogLevel)
	}
	// Unset in file: filled from defaults.
	if cfg.Environment != EnvDevelopment {
		t.Errorf("Environment = %s, want development", cfg.Environment)
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes {
		t.Errorf("MaxBodyBytes = %d, want %d", cfg.MaxBodyBytes, defaultMaxBodyBytes)
	}
	if _, ok := cfg.Snapshots["merchant-file"]; !ok {
		t.Error("expected merchant-file snapshot")
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.json"))

		_, err := Load(context.Background())
		if err == nil || !strings.Contains(err.Error(), "reading config file") {
			t.Errorf("error = %v, want reading config file", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte(`{invalid`), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("CONFIG_FILE", path)

		_, err := Load(context.Background())
		if err == nil || !strings.Contains(err.Error(), "parsing config file") {
			t.Errorf("error = %v, want parsing config file", err)
		}
	})
}
