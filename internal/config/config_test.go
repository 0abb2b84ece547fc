// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// TestDefaultConfig verifies the built-in defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Database.Path != "/data/devmatch" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if len(cfg.Matching.Weights) != FeatureWeightCount {
		t.Errorf("len(Matching.Weights) = %d", len(cfg.Matching.Weights))
	}
	if !cfg.Match.EnforceUniquePair {
		t.Error("Match.EnforceUniquePair should default to true")
	}
	if cfg.Recommend.MaxResults != 0 || cfg.Recommend.LanguagePrefilter || cfg.Recommend.ExcludeMatched {
		t.Errorf("Recommend defaults = %+v", cfg.Recommend)
	}
	if !cfg.Events.Enabled || cfg.Events.BufferSize != 256 {
		t.Errorf("Events defaults = %+v", cfg.Events)
	}
}

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = testSecret
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing secret", func(c *Config) { c.Security.JWTSecret = "" }, "JWT_SECRET"},
		{"short secret", func(c *Config) { c.Security.JWTSecret = "short" }, "JWT_SECRET"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"bad environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"no db path", func(c *Config) { c.Database.Path = "" }, "DATABASE_PATH"},
		{"in memory without path", func(c *Config) { c.Database.Path = ""; c.Database.InMemory = true }, ""},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"zero rate limit disabled", func(c *Config) { c.Security.RateLimitReqs = 0; c.Security.RateLimitDisabled = true }, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"too few weights", func(c *Config) { c.Matching.Weights = []float64{1, 1} }, "MATCH_WEIGHTS"},
		{"negative weight", func(c *Config) { c.Matching.Weights = []float64{1, 1, 1, 1, 1, -1} }, "MATCH_WEIGHTS[5]"},
		{"zero weights", func(c *Config) { c.Matching.Weights = make([]float64, FeatureWeightCount) }, "all be zero"},
		{"negative max results", func(c *Config) { c.Recommend.MaxResults = -1 }, "RECOMMEND_MAX_RESULTS"},
		{"zero buffer", func(c *Config) { c.Events.BufferSize = 0 }, "EVENTS_BUFFER_SIZE"},
		{"zero buffer disabled", func(c *Config) { c.Events.BufferSize = 0; c.Events.Enabled = false }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"HTTP_PORT":                 "server.port",
		"JWT_SECRET":                "security.jwt_secret",
		"MATCH_WEIGHTS":             "matching.weights",
		"match_enforce_unique_pair": "match.enforce_unique_pair",
		"PATH":                      "",
		"HOME":                      "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestLoadWithKoanf_EnvOverrides exercises the full layering with env vars only.
func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_IN_MEMORY", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MATCH_WEIGHTS", "1,0,0,0,0,1")
	t.Setenv("RECOMMEND_MAX_RESULTS", "25")
	t.Setenv("EVENTS_BREAKER_TIMEOUT", "5s")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if !cfg.Database.InMemory {
		t.Error("Database.InMemory should be true")
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	want := []float64{1, 0, 0, 0, 0, 1}
	for i, w := range want {
		if cfg.Matching.Weights[i] != w {
			t.Fatalf("Weights = %v, want %v", cfg.Matching.Weights, want)
		}
	}
	if cfg.Recommend.MaxResults != 25 {
		t.Errorf("Recommend.MaxResults = %d", cfg.Recommend.MaxResults)
	}
	if cfg.Events.BreakerTimeout != 5*time.Second {
		t.Errorf("Events.BreakerTimeout = %v", cfg.Events.BreakerTimeout)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devmatch.yaml")
	yaml := `
server:
  port: 7000
security:
  jwt_secret: "` + testSecret + `"
logging:
  level: debug
recommend:
  language_prefilter: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000 from file", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, env should win over file", cfg.Logging.Level)
	}
	if !cfg.Recommend.LanguagePrefilter {
		t.Error("Recommend.LanguagePrefilter should come from file")
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, default should survive", cfg.Server.Host)
	}
}

func TestLoadWithKoanf_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("MATCH_WEIGHTS", "1,abc")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected an error for a non-numeric weight")
	}
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
