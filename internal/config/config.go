// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort     string
	GRPCPort       string // empty disables the gRPC health listener
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration
	// TopCustomersDefaultLimit applies when /api/customers/top gets no limit.
	TopCustomersDefaultLimit int
	SeedFile                 string
}

func (c AppConfig) String() string {
	return fmt.Sprintf(
		"ServerPort: %s | GRPCPort: %s | LogLevel: %s | LogFormat: %s | RequestTimeout: %s | SeedFile: %q",
		c.ServerPort, c.GRPCPort, c.LogLevel, c.LogFormat, c.RequestTimeout, c.SeedFile,
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_port", "8080")
	v.SetDefault("grpc_port", "50051")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("request_timeout", "60s")
	v.SetDefault("top_customers_default_limit", 10)
	v.SetDefault("seed_file", "")
}

// LoadConfig loads configuration from defaults, an optional config file, a
// .env file if present and environment variables, in increasing priority.
// Environment variable names are the upper-cased keys, e.g. SERVER_PORT.
func LoadConfig(configPath string) (*AppConfig, error) {
	// does nothing when .env is missing
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
		}
	}

	cfg := &AppConfig{
		ServerPort:               strings.TrimSpace(v.GetString("server_port")),
		GRPCPort:                 strings.TrimSpace(v.GetString("grpc_port")),
		LogLevel:                 v.GetString("log_level"),
		LogFormat:                strings.ToLower(v.GetString("log_format")),
		RequestTimeout:           v.GetDuration("request_timeout"),
		TopCustomersDefaultLimit: v.GetInt("top_customers_default_limit"),
		SeedFile:                 v.GetString("seed_file"),
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	if c.ServerPort == "" {
		return errors.New("SERVER_PORT must not be empty")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return errors.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	if c.TopCustomersDefaultLimit <= 0 {
		return errors.New("TOP_CUSTOMERS_DEFAULT_LIMIT must be positive")
	}
	return nil
}
