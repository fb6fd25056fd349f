package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the variables Load reads. It is stripped before the
// remaining name is matched against the koanf tags.
const EnvPrefix = "SHELFSHARE_"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	GinMode       string `koanf:"gin_mode" validate:"oneof=debug release test"`
	LogLevel      string `koanf:"log_level"`
	HTTPAddr      string `koanf:"http_addr" validate:"required"`
	TZ            string `koanf:"tz"`
	DBDriver      string `koanf:"db_driver" validate:"oneof=postgres sqlite memory"`
	DBHost        string `koanf:"db_host" validate:"required_if=DBDriver postgres"`
	DBPort        string `koanf:"db_port" validate:"required_if=DBDriver postgres"`
	DBUser        string `koanf:"db_user" validate:"required_if=DBDriver postgres"`
	DBPass        string `koanf:"db_pass"`
	DBName        string `koanf:"db_name" validate:"required_unless=DBDriver memory"`
	DBSSLMode     string `koanf:"db_sslmode"`
	DBMaxAttempts int    `koanf:"db_max_attempts" validate:"gte=1"`
}

func findRepoRoot() string {
	dir, _ := os.Getwd()

	for {
		candidate := filepath.Join(dir, ".env.dev")
		if _, err := os.Stat(candidate); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads the SHELFSHARE_* variables of the process environment, plus
// .env.dev when running in debug mode, and validates the result.
func Load() (*Config, error) {
	if getenv(EnvPrefix+"GIN_MODE", "debug") == "debug" {
		if root := findRepoRoot(); root != "" {
			if err := godotenv.Load(filepath.Join(root, ".env.dev")); err != nil {
				return nil, fmt.Errorf("load .env.dev: %w", err)
			}
		}
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.GinMode, "debug")
	setDefault(&c.HTTPAddr, ":8080")
	setDefault(&c.TZ, "UTC")
	setDefault(&c.DBDriver, DriverPostgres)

	if c.LogLevel == "" {
		if c.GinMode == "release" {
			c.LogLevel = "info"
		} else {
			c.LogLevel = "debug"
		}
	}

	if c.DBSSLMode == "" {
		if c.GinMode == "release" {
			c.DBSSLMode = "require"
		} else {
			c.DBSSLMode = "disable"
		}
	}

	if c.DBMaxAttempts == 0 {
		c.DBMaxAttempts = 10
	}
}

func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return sqliteDSN(c.DBName)
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off for
// every new connection.
func sqliteDSN(name string) string {
	if strings.Contains(name, "_foreign_keys=") {
		return name
	}

	sep := "?"
	if strings.Contains(name, "?") {
		sep = "&"
	}
	return name + sep + "_foreign_keys=on"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setDefault(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}
