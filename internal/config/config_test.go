package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"GIN_MODE", "LOG_LEVEL", "HTTP_ADDR", "TZ", "DB_DRIVER", "DB_HOST",
		"DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "DB_SSLMODE", "DB_MAX_ATTEMPTS",
	} {
		t.Setenv(EnvPrefix+k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrefix+"GIN_MODE", "release")
	t.Setenv(EnvPrefix+"DB_HOST", "db")
	t.Setenv(EnvPrefix+"DB_PORT", "5432")
	t.Setenv(EnvPrefix+"DB_USER", "shelf")
	t.Setenv(EnvPrefix+"DB_PASS", "secret")
	t.Setenv(EnvPrefix+"DB_NAME", "authors")
	t.Setenv(EnvPrefix+"DB_MAX_ATTEMPTS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, 3, cfg.DBMaxAttempts)
	assert.Equal(t,
		"host=db user=shelf password=secret dbname=authors port=5432 sslmode=require TimeZone=UTC",
		cfg.DSN(),
	)
}

func TestLoad_SQLite(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrefix+"DB_DRIVER", "sqlite")
	t.Setenv(EnvPrefix+"DB_NAME", "authors.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 10, cfg.DBMaxAttempts)
	assert.Equal(t, "authors.db?_foreign_keys=on", cfg.DSN())
}

func TestLoad_MemoryNeedsNoDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrefix+"DB_DRIVER", "memory")

	_, err := Load()
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"postgres without host": {"DB_DRIVER": "postgres", "DB_NAME": "x"},
		"unknown driver":        {"DB_DRIVER": "mongo"},
		"unknown gin mode":      {"DB_DRIVER": "memory", "GIN_MODE": "loud"},
	}

	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range vars {
				t.Setenv(EnvPrefix+k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_IgnoresUnprefixedVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mongo")
	t.Setenv("GIN_MODE", "loud")
	t.Setenv(EnvPrefix+"DB_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.DBDriver)
	assert.Equal(t, "debug", cfg.GinMode)
}

func TestLoad_DotEnvInDebugMode(t *testing.T) {
	clearEnv(t)
	// .env.dev never overrides variables that are already set, even empty ones
	require.NoError(t, os.Unsetenv(EnvPrefix+"DB_DRIVER"))
	require.NoError(t, os.Unsetenv(EnvPrefix+"DB_NAME"))

	dir := t.TempDir()
	env := "SHELFSHARE_DB_DRIVER=sqlite\nSHELFSHARE_DB_NAME=dev.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.dev"), []byte(env), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "dev.db?_foreign_keys=on", cfg.DSN())
}

func TestConfig_SQLiteDSNKeepsExistingQuery(t *testing.T) {
	tests := map[string]string{
		"app.db":                   "app.db?_foreign_keys=on",
		"file:app.db?cache=shared": "file:app.db?cache=shared&_foreign_keys=on",
		"app.db?_foreign_keys=off": "app.db?_foreign_keys=off",
	}

	for name, want := range tests {
		cfg := &Config{DBDriver: DriverSQLite, DBName: name}
		assert.Equal(t, want, cfg.DSN(), name)
	}
}
