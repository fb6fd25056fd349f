package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/repository"
	"gorm.io/gorm"
)

type fakeAuthorRepo struct {
	ReadAllFn  func(ctx context.Context) ([]model.Author, error)
	ReadByIDFn func(ctx context.Context, id uuid.UUID) (*model.Author, error)
	CreateFn   func(ctx context.Context, dto model.AuthorCreateDto) (*model.Author, error)
	UpdateFn   func(ctx context.Context, id uuid.UUID, dto model.AuthorCreateDto) (*model.Author, error)
	DeleteFn   func(ctx context.Context, id uuid.UUID) (*model.Author, error)
}

func (f *fakeAuthorRepo) ReadAll(ctx context.Context) ([]model.Author, error) {
	if f.ReadAllFn != nil {
		return f.ReadAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) ReadByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if f.ReadByIDFn != nil {
		return f.ReadByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthorRepo) Create(ctx context.Context, dto model.AuthorCreateDto) (*model.Author, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, dto)
	}
	a := dto.Author()
	return &a, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, id uuid.UUID, dto model.AuthorCreateDto) (*model.Author, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, dto)
	}
	a := dto.Author()
	a.ID = id
	return &a, nil
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func setupAuthorRouterWithRepo(authorRepo repository.AuthorRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewAuthorHandler(authorRepo, zerolog.Nop())
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	return setupAuthorRouterWithRepo(repository.NewGormAuthorRepository(db))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adaPayload() map[string]any {
	return map[string]any{
		"name":        "Ada",
		"birthDate":   "1815-12-10",
		"email":       "ada@x.io",
		"nacionality": "UK",
		"role":        "author",
	}
}
