package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.MetricsEnabled {
		t.Error("metrics enabled by default")
	}
	if cfg.LogMethod != LogMethodStdout {
		t.Errorf("log_method = %q, want stdout", cfg.LogMethod)
	}
	if cfg.Verbosity != 3 {
		t.Errorf("verbose = %d, want 3", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TIMETALLY_ADDR", ":3000")
	t.Setenv("TIMETALLY_VERBOSE", "5")

	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("addr = %q, want :3000", cfg.Addr)
	}
	if cfg.Verbosity != 5 {
		t.Errorf("verbose = %d, want 5", cfg.Verbosity)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(nil, "does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		cfg, err := Load(nil, "")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		return cfg
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty addr", func(c *Config) { c.Addr = " " }, "addr"},
		{"metrics without addr", func(c *Config) { c.MetricsEnabled = true; c.MetricsAddr = "" }, "metrics_addr"},
		{"metrics addr collision", func(c *Config) { c.MetricsEnabled = true; c.MetricsAddr = c.Addr }, "metrics_addr"},
		{"bad log method", func(c *Config) { c.LogMethod = "loki" }, "log_method"},
		{"file method without path", func(c *Config) { c.LogMethod = LogMethodFile }, "log_file"},
		{"verbosity too high", func(c *Config) { c.Verbosity = 9 }, "verbose"},
		{"zero rate limit", func(c *Config) { c.RateLimitPerMinute = 0 }, "rate_limit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
