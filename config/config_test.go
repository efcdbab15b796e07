package config

import (
	"strings"
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := fromEnv(envFrom(map[string]string{"JWT_SECRET_KEY": "secret"}))
	if err != nil {
		t.Fatalf("fromEnv error: %v", err)
	}
	if cfg.DatabaseURL != DefaultDatabaseURL {
		t.Fatalf("DatabaseURL = %q, want %q", cfg.DatabaseURL, DefaultDatabaseURL)
	}
	if cfg.ServerPort != 8080 {
		t.Fatalf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if cfg.DBConnectTimeout != 5*time.Second {
		t.Fatalf("DBConnectTimeout = %v, want 5s", cfg.DBConnectTimeout)
	}
	if cfg.ApplySchema {
		t.Fatalf("ApplySchema should default to false")
	}
	if cfg.R2Enabled() {
		t.Fatalf("R2 should be disabled without configuration")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := fromEnv(envFrom(map[string]string{
		"JWT_SECRET_KEY":       "secret",
		"DATABASE_URL":         "postgres://localhost/swiss_test",
		"SERVER_PORT":          "9090",
		"DB_CONNECT_TIMEOUT":   "250ms",
		"APPLY_SCHEMA":         "true",
		"R2_ACCOUNT_ID":        "acc",
		"R2_ACCESS_KEY_ID":     "key",
		"R2_SECRET_ACCESS_KEY": "sec",
		"R2_BUCKET_NAME":       "bucket",
		"R2_PUBLIC_BASE_URL":   "https://cdn.example.com",
	}))
	if err != nil {
		t.Fatalf("fromEnv error: %v", err)
	}
	if cfg.DatabaseURL != "postgres://localhost/swiss_test" {
		t.Fatalf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.ServerPort != 9090 {
		t.Fatalf("ServerPort = %d, want 9090", cfg.ServerPort)
	}
	if cfg.DBConnectTimeout != 250*time.Millisecond {
		t.Fatalf("DBConnectTimeout = %v, want 250ms", cfg.DBConnectTimeout)
	}
	if !cfg.ApplySchema {
		t.Fatalf("ApplySchema = false, want true")
	}
	if !cfg.R2Enabled() {
		t.Fatalf("R2 should be enabled")
	}
}

func TestFromEnvErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing secret", map[string]string{}, "JWT_SECRET_KEY"},
		{"bad port", map[string]string{"JWT_SECRET_KEY": "s", "SERVER_PORT": "abc"}, "SERVER_PORT"},
		{"port out of range", map[string]string{"JWT_SECRET_KEY": "s", "SERVER_PORT": "70000"}, "between 1 and 65535"},
		{"bad timeout", map[string]string{"JWT_SECRET_KEY": "s", "DB_CONNECT_TIMEOUT": "soon"}, "DB_CONNECT_TIMEOUT"},
		{"negative timeout", map[string]string{"JWT_SECRET_KEY": "s", "DB_CONNECT_TIMEOUT": "-1s"}, "positive"},
		{"bad bool", map[string]string{"JWT_SECRET_KEY": "s", "APPLY_SCHEMA": "maybe"}, "APPLY_SCHEMA"},
		{"partial r2", map[string]string{"JWT_SECRET_KEY": "s", "R2_ACCOUNT_ID": "acc"}, "R2 configuration is incomplete"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fromEnv(envFrom(tc.env))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want it to mention %q", err, tc.want)
			}
		})
	}
}
