package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Log
		Global
	}

	HTTP struct {
		Port    int32  `validate:"min=1,max=65535"`
		Host    string `validate:"omitempty,ip|hostname"`
		GinMode string `validate:"oneof=debug release test"`
	}
	Database struct {
		URL             string `validate:"required"`
		ConnectAttempts uint64 `validate:"min=1"`
		ConnectBackoff  time.Duration
		LogLevel        string `validate:"oneof=silent error warn info"`
	}
	Log struct {
		Level  string `validate:"oneof=trace debug info warn error fatal panic disabled"`
		Format string `validate:"oneof=json console"`
	}
	Global struct {
		ShutdownTimeoutInSeconds int `validate:"min=0"`
	}
)

// NewConfig reads configuration from the environment. A .env file in the working
// directory, when present, supplies values the environment does not set.
func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("database_connect_attempts", 5)
	v.SetDefault("database_connect_backoff", "500ms")
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	readDotEnv(v, DotEnvFile)

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Database: Database{
			URL:             v.GetString("DATABASE_URL"),
			ConnectAttempts: v.GetUint64("DATABASE_CONNECT_ATTEMPTS"),
			ConnectBackoff:  v.GetDuration("DATABASE_CONNECT_BACKOFF"),
			LogLevel:        v.GetString("DATABASE_LOG_LEVEL"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}

// readDotEnv merges a dotenv file into v. Environment variables still win because
// AutomaticEnv is consulted before config file values.
func readDotEnv(v *viper.Viper, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", path, err)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid configuration: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (h HTTP) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// ShutdownTimeout returns the graceful shutdown window.
func (g Global) ShutdownTimeout() time.Duration {
	return time.Duration(g.ShutdownTimeoutInSeconds) * time.Second
}
