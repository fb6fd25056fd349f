package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
)

// Repo is the CRUD contract shared by every storage backend. T is the
// representation handed back to callers, C the writable input.
type Repo[T any, C any] interface {
	ReadAll(ctx context.Context) ([]T, error)
	ReadByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, data C) (*T, error)
	Update(ctx context.Context, id uuid.UUID, data C) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) (*T, error)
}

type AuthorRepository = Repo[model.Author, model.AuthorCreateDto]

const authorResource = "Author"
