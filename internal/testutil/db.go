package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory sqlite database with the schema applied.
// Foreign keys and error translation match what db.ConnectWithRetry sets up.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.AuthorRecord{}, &model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// NewEmptyDB opens an in-memory sqlite database without any tables, so
// every query against it fails.
func NewEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func SeedAuthor(t *testing.T, db *gorm.DB, name, email, password string) model.AuthorRecord {
	t.Helper()

	author := model.AuthorRecord{
		Name:        name,
		BirthDate:   time.Date(1952, time.March, 11, 0, 0, 0, 0, time.UTC),
		Email:       email,
		Nationality: "UK",
		Role:        "author",
		Password:    password,
	}

	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}

	return author
}

func SeedBook(t *testing.T, db *gorm.DB, authorID uuid.UUID, name, category string, series bool) model.Book {
	t.Helper()

	book := model.Book{
		Name:           name,
		Category:       category,
		IsPartOfSeries: series,
		AuthorID:       authorID,
	}

	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", name, err)
	}

	return book
}
