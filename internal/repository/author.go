package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/errs"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"gorm.io/gorm"
)

// Columns returned for every author and book read. password is never listed.
var (
	authorColumns = []string{"id", "name", "birth_date", "email", "nationality", "role"}
	bookColumns   = []string{"id", "name", "category", "is_part_of_series", "author_id"}
)

type GormAuthorRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

var _ AuthorRepository = (*GormAuthorRepository)(nil)

func NewGormAuthorRepository(db *gorm.DB, opts ...Option) *GormAuthorRepository {
	o := newOptions(opts)
	o.logger.Debug().Str("backend", "sql").Msg("author repository ready")

	return &GormAuthorRepository{db: db, logger: o.logger}
}

func (r *GormAuthorRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Select(authorColumns).
		Preload("Books", func(tx *gorm.DB) *gorm.DB {
			return tx.Select(bookColumns)
		})
}

func (r *GormAuthorRepository) ReadAll(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.query(ctx).Find(&authors).Error; err != nil {
		return nil, err
	}

	for i := range authors {
		if authors[i].Books == nil {
			authors[i].Books = []model.Book{}
		}
	}
	return authors, nil
}

func (r *GormAuthorRepository) ReadByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	var author model.Author
	if err := r.query(ctx).First(&author, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound(id)
		}
		return nil, err
	}

	if author.Books == nil {
		author.Books = []model.Book{}
	}
	return &author, nil
}

func (r *GormAuthorRepository) Create(ctx context.Context, data model.AuthorCreateDto) (*model.Author, error) {
	author := data.Author()
	if err := r.db.WithContext(ctx).Create(&author).Error; err != nil {
		return nil, err
	}

	author.Books = []model.Book{}
	return &author, nil
}

func (r *GormAuthorRepository) Update(ctx context.Context, id uuid.UUID, data model.AuthorCreateDto) (*model.Author, error) {
	if err := r.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        data.Name,
			"birth_date":  data.BirthDate,
			"email":       data.Email,
			"nationality": data.Nationality,
			"role":        data.Role,
		}).Error
	if err != nil {
		return nil, err
	}

	return r.ReadByID(ctx, id)
}

// Delete hands back the row as it was just before removal.
func (r *GormAuthorRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	author, err := r.ReadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&model.Author{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return author, nil
}

func (r *GormAuthorRepository) ensureExists(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {

		return err
	}
	if count == 0 {
		return r.notFound(id)
	}
	return nil
}

func (r *GormAuthorRepository) notFound(id uuid.UUID) error {
	r.logger.Debug().Stringer("author_id", id).Msg("author not found")
	return errs.NotFound(authorResource, id)
}
