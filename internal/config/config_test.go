package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	var c Config
	c.Server.Port = 8080
	c.Database.DSN = "postgres://u:p@localhost:5432/db"
	c.Database.MaxConns = 25
	c.Database.MinConns = 5
	c.RateLimit.Enabled = true
	c.RateLimit.LoginPerMinute = 10
	return &c
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "max conns zero",
			mutate:  func(c *Config) { c.Database.MaxConns = 0 },
			wantErr: "max_conns",
		},
		{
			name: "min conns above max",
			mutate: func(c *Config) {
				c.Database.MinConns = 30
				c.Database.MaxConns = 10
			},
			wantErr: "min_conns",
		},
		{
			name: "rate limit zero while enabled",
			mutate: func(c *Config) {
				c.RateLimit.LoginPerMinute = 0
			},
			wantErr: "login_per_minute",
		},
		{
			name: "rate limit zero while disabled is fine",
			mutate: func(c *Config) {
				c.RateLimit.Enabled = false
				c.RateLimit.LoginPerMinute = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log format: got %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Database.MaxConns != 25 {
		t.Errorf("max conns default: got %d, want 25", cfg.Database.MaxConns)
	}
	if !cfg.Database.Migrate {
		t.Error("migrate default: got false, want true")
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/does/not/exist.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file, got nil")
	}
}
