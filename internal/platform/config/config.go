package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	LogMethodStdout = "stdout"
	LogMethodFile   = "file"
)

// Config is assembled from defaults, an optional YAML file, TIMETALLY_* env
// vars and bound command-line flags, in that precedence order.
type Config struct {
	Addr               string `mapstructure:"addr"`
	MetricsEnabled     bool   `mapstructure:"metrics"`
	MetricsAddr        string `mapstructure:"metrics_addr"`
	LogMethod          string `mapstructure:"log_method"`
	LogFile            string `mapstructure:"log_file"`
	Verbosity          int    `mapstructure:"verbose"`
	RateLimitPerMinute int    `mapstructure:"rate_limit_per_minute"`
	AuthSecret         string `mapstructure:"auth_secret"`
	Environment        string `mapstructure:"environment"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("metrics", false)
	v.SetDefault("metrics_addr", ":9090")
	v.SetDefault("log_method", LogMethodStdout)
	v.SetDefault("log_file", "")
	v.SetDefault("verbose", 3)
	v.SetDefault("rate_limit_per_minute", 120)
	v.SetDefault("auth_secret", "")
	v.SetDefault("environment", "development")
}

// Load reads configuration into a Config. path may be empty, in which case no
// config file is read. The passed viper instance carries any flag bindings;
// pass nil to use a fresh one.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	v.SetEnvPrefix("TIMETALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.MetricsEnabled && strings.TrimSpace(c.MetricsAddr) == "" {
		return fmt.Errorf("metrics_addr must be set when metrics are enabled")
	}
	if c.MetricsEnabled && c.MetricsAddr == c.Addr {
		return fmt.Errorf("metrics_addr must differ from addr")
	}
	if c.LogMethod != LogMethodStdout && c.LogMethod != LogMethodFile {
		return fmt.Errorf("log_method must be %q or %q", LogMethodStdout, LogMethodFile)
	}
	if c.LogMethod == LogMethodFile && strings.TrimSpace(c.LogFile) == "" {
		return fmt.Errorf("log_file must be set when log_method is %q", LogMethodFile)
	}
	if c.Verbosity < 1 || c.Verbosity > 5 {
		return fmt.Errorf("verbose must be between 1 and 5")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be positive")
	}
	return nil
}
