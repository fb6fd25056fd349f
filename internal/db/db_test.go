package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectWithRetry_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:      config.DriverSQLite,
		DBName:        filepath.Join(t.TempDir(), "authors.db"),
		DBMaxAttempts: 1,
	}

	gdb, err := ConnectWithRetry(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(gdb))
	assert.True(t, gdb.Migrator().HasTable(&model.AuthorRecord{}))
	assert.True(t, gdb.Migrator().HasTable(&model.Book{}))
	assert.True(t, gdb.Migrator().HasColumn(&model.AuthorRecord{}, "password"))
}

func TestConnectWithRetry_SQLiteEnforcesConstraints(t *testing.T) {
	cfg := &config.Config{
		DBDriver:      config.DriverSQLite,
		DBName:        filepath.Join(t.TempDir(), "authors.db"),
		DBMaxAttempts: 1,
	}

	gdb, err := ConnectWithRetry(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(gdb))

	orphan := model.Book{Name: "Orphan", AuthorID: uuid.New()}
	assert.ErrorIs(t, gdb.Create(&orphan).Error, gorm.ErrForeignKeyViolated)

	require.NoError(t, gdb.Create(&model.AuthorRecord{Name: "Ada", Email: "ada@x.io"}).Error)
	err = gdb.Create(&model.AuthorRecord{Name: "Ada again", Email: "ada@x.io"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestConnectWithRetry_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverMemory, DBMaxAttempts: 1}

	_, err := ConnectWithRetry(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}
