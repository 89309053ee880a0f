package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Log
	}

	Database struct {
		Driver          string        `validate:"required,oneof=sqlite mysql postgres"`
		DSN             string        `validate:"required"`
		MaxOpenConns    int           `validate:"gte=1"` // Ignored for sqlite, which always uses one connection
		ConnMaxLifetime time.Duration `validate:"gte=0"`
		LogSQL          bool          // Trace every statement through the logger
	}

	Log struct {
		Level  string `validate:"required,oneof=trace debug info warn error fatal panic disabled"`
		Format string `validate:"required,oneof=console json"`
	}
)

// Flag names bound over the environment by NewConfigWithFlags.
const (
	FlagDriver   = "driver"
	FlagDSN      = "dsn"
	FlagLogLevel = "log-level"
	FlagLogSQL   = "log-sql"
)

var flagKeys = map[string]string{
	FlagDriver:   "database_driver",
	FlagDSN:      "database_dsn",
	FlagLogLevel: "log_level",
	FlagLogSQL:   "database_log_sql",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_driver", DefaultDriver)
	v.SetDefault("database_dsn", DefaultDSN)
	v.SetDefault("database_max_open_conns", 1)
	v.SetDefault("database_conn_max_lifetime", "30m")
	v.SetDefault("database_log_sql", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", LogFormatConsole)
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Database: Database{
			Driver:          v.GetString("DATABASE_DRIVER"),
			DSN:             v.GetString("DATABASE_DSN"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			ConnMaxLifetime: v.GetDuration("DATABASE_CONN_MAX_LIFETIME"),
			LogSQL:          v.GetBool("DATABASE_LOG_SQL"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}

// NewConfig reads the configuration from the environment.
func NewConfig() *Config {
	return fromViper(newViper())
}

// NewConfigWithFlags reads the environment and lets any flag from flags that
// was set explicitly take precedence. Unknown or absent flags are skipped.
func NewConfigWithFlags(flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from path into the process environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}
