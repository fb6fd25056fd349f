package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/errs"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"gorm.io/gorm"
)

// MemoryAuthorRepository keeps authors in process memory. Books can only
// be attached through AddBook since the repository never writes them.
//
// It enforces the two constraints of the authors table the way a gorm
// connection with TranslateError does: a taken email yields
// gorm.ErrDuplicatedKey and removing an author who owns books yields
// gorm.ErrForeignKeyViolated.
type MemoryAuthorRepository struct {
	mu      sync.RWMutex
	authors map[uuid.UUID]model.Author
	order   []uuid.UUID
	logger  zerolog.Logger
}

var _ AuthorRepository = (*MemoryAuthorRepository)(nil)

func NewMemoryAuthorRepository(opts ...Option) *MemoryAuthorRepository {
	o := newOptions(opts)
	o.logger.Debug().Str("backend", "memory").Msg("author repository ready")

	return &MemoryAuthorRepository{
		authors: make(map[uuid.UUID]model.Author),
		logger:  o.logger,
	}
}

func (r *MemoryAuthorRepository) ReadAll(ctx context.Context) ([]model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	authors := make([]model.Author, 0, len(r.order))
	for _, id := range r.order {
		authors = append(authors, clone(r.authors[id]))
	}
	return authors, nil
}

func (r *MemoryAuthorRepository) ReadByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, r.notFound(id)
	}
	a = clone(a)
	return &a, nil
}

func (r *MemoryAuthorRepository) Create(ctx context.Context, data model.AuthorCreateDto) (*model.Author, error) {
	a := data.Author()
	a.ID = uuid.New()
	a.Books = []model.Book{}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(a.Email, uuid.Nil) {
		return nil, gorm.ErrDuplicatedKey
	}

	r.authors[a.ID] = a
	r.order = append(r.order, a.ID)

	a = clone(a)
	return &a, nil
}

func (r *MemoryAuthorRepository) Update(ctx context.Context, id uuid.UUID, data model.AuthorCreateDto) (*model.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.authors[id]
	if !ok {
		return nil, r.notFound(id)
	}
	if r.emailTaken(data.Email, id) {
		return nil, gorm.ErrDuplicatedKey
	}

	updated := data.Author()
	updated.ID = id
	updated.Books = existing.Books
	r.authors[id] = updated

	updated = clone(updated)
	return &updated, nil
}

func (r *MemoryAuthorRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, r.notFound(id)
	}
	if len(a.Books) > 0 {
		return nil, gorm.ErrForeignKeyViolated
	}

	delete(r.authors, id)
	r.order = slices.DeleteFunc(r.order, func(v uuid.UUID) bool { return v == id })

	return &a, nil
}

// AddBook attaches a book to an existing author, mirroring rows that some
// other service wrote into the books table.
func (r *MemoryAuthorRepository) AddBook(authorID uuid.UUID, book model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.authors[authorID]
	if !ok {
		return errs.NotFound(authorResource, authorID)
	}

	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	book.AuthorID = authorID
	a.Books = append(slices.Clone(a.Books), book)
	r.authors[authorID] = a
	return nil
}

func (r *MemoryAuthorRepository) emailTaken(email string, except uuid.UUID) bool {
	for id, a := range r.authors {
		if id != except && a.Email == email {
			return true
		}
	}
	return false
}

func (r *MemoryAuthorRepository) notFound(id uuid.UUID) error {
	r.logger.Debug().Stringer("author_id", id).Msg("author not found")
	return errs.NotFound(authorResource, id)
}

func clone(a model.Author) model.Author {
	a.Books = slices.Clone(a.Books)
	if a.Books == nil {
		a.Books = []model.Book{}
	}
	return a
}
