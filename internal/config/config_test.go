package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

// noDotenv points Load at a file that does not exist so tests ignore any local .env.
func noDotenv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "PROJECT_ID", "GOOGLE_CLOUD_PROJECT", "CORS_ALLOWED_ORIGINS",
		"METRICS_ENABLED", "GRPC_ENABLED", "GRPC_PORT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(noDotenv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.HTTPAddr() != ":8080" {
		t.Errorf("expected addr :8080, got %s", cfg.HTTPAddr())
	}
	if !cfg.GRPC.Enabled || cfg.GRPC.Port != 9090 || cfg.GRPCAddr() != ":9090" {
		t.Errorf("unexpected gRPC config: %+v", cfg.GRPC)
	}
	if !cfg.MetricsEnabled {
		t.Error("expected metrics enabled by default")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
	if lvl, err := cfg.Level(); err != nil || lvl != zapcore.InfoLevel {
		t.Errorf("expected info level, got %v (%v)", lvl, err)
	}

	timeouts := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"read", cfg.Timeout.Read, 5 * time.Second},
		{"read header", cfg.Timeout.ReadHeader, 2 * time.Second},
		{"write", cfg.Timeout.Write, 10 * time.Second},
		{"idle", cfg.Timeout.Idle, 60 * time.Second},
		{"shutdown", cfg.Timeout.Shutdown, 10 * time.Second},
	}
	for _, tt := range timeouts {
		if tt.got != tt.want {
			t.Errorf("%s timeout: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("GRPC_ENABLED", "false")
	t.Setenv("HTTP_WRITE_TIMEOUT", "30s")

	cfg, err := Load(noDotenv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Port)
	}
	if lvl, _ := cfg.Level(); lvl != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %v", lvl)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.MetricsEnabled || cfg.GRPC.Enabled {
		t.Errorf("expected metrics and gRPC disabled, got %+v", cfg)
	}
	if cfg.Timeout.Write != 30*time.Second {
		t.Errorf("expected write timeout 30s, got %v", cfg.Timeout.Write)
	}
}

func TestLoadReadsDotenvFile(t *testing.T) {
	// godotenv never overrides variables already present in the process environment.
	t.Setenv("GRPC_PORT", "")
	os.Unsetenv("GRPC_PORT")
	t.Cleanup(func() { os.Unsetenv("GRPC_PORT") })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("# local overrides\nGRPC_PORT=9191\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GRPC.Port != 9191 {
		t.Fatalf("expected GRPC_PORT from .env, got %d", cfg.GRPC.Port)
	}
}

func TestLoadProcessEnvWinsOverDotenv(t *testing.T) {
	t.Setenv("PORT", "4000")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=5000\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 4000 {
		t.Fatalf("expected process env to win, got %d", cfg.Port)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"non-numeric port", map[string]string{"PORT": "abc"}, "parse config"},
		{"port out of range", map[string]string{"PORT": "70000"}, "PORT 70000 out of range"},
		{"grpc port collides", map[string]string{"PORT": "9000", "GRPC_PORT": "9000"}, "must differ"},
		{"unknown log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad duration", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}, "parse config"},
		{"zero shutdown", map[string]string{"SHUTDOWN_TIMEOUT": "0s"}, "SHUTDOWN_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(noDotenv(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateRejectsEmptyOrigin(t *testing.T) {
	cfg := &Config{
		Port:               8080,
		LogLevel:           "info",
		CORSAllowedOrigins: []string{"https://a.example.com", " "},
		Timeout:            TimeoutConfig{Shutdown: time.Second},
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "empty origin") {
		t.Fatalf("expected empty origin error, got %v", err)
	}
}

func TestTraceProjectID(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit project", Config{ProjectID: "p1", GoogleCloudProject: "p2"}, "p1"},
		{"cloud run fallback", Config{GoogleCloudProject: "p2"}, "p2"},
		{"none", Config{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.TraceProjectID(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
