package handler

import (
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
)

// AuthorRequest is the body of both create and update; update overwrites
// every field.
type AuthorRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	BirthDate   model.Date `json:"birthDate" swaggertype:"string" example:"1815-12-10"`
	Email       string     `json:"email" binding:"required,email"`
	Nationality string     `json:"nacionality" binding:"required,max=100"`
	Role        string     `json:"role" binding:"required,max=50"`
}

type Author struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	BirthDate   model.Date    `json:"birthDate" swaggertype:"string" example:"1815-12-10"`
	Email       string        `json:"email"`
	Nationality string        `json:"nacionality"`
	Role        string        `json:"role"`
	Books       []BookSummary `json:"books"`
}

type BookSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	IsPartOfSeries bool      `json:"isPartOfSeries"`
	AuthorID       uuid.UUID `json:"authorId"`
}

type AuthorResponse struct {
	Data Author `json:"data"`
}

type ListAuthorsResponse struct {
	Data []Author `json:"data"`
}

func (r AuthorRequest) toDto() model.AuthorCreateDto {
	return model.AuthorCreateDto{
		Name:        r.Name,
		BirthDate:   r.BirthDate.Time,
		Email:       r.Email,
		Nationality: r.Nationality,
		Role:        r.Role,
	}
}

func toAuthor(a model.Author) Author {
	books := make([]BookSummary, 0, len(a.Books))
	for _, b := range a.Books {
		books = append(books, BookSummary{
			ID:             b.ID,
			Name:           b.Name,
			Category:       b.Category,
			IsPartOfSeries: b.IsPartOfSeries,
			AuthorID:       b.AuthorID,
		})
	}

	return Author{
		ID:          a.ID,
		Name:        a.Name,
		BirthDate:   model.Date{Time: a.BirthDate},
		Email:       a.Email,
		Nationality: a.Nationality,
		Role:        a.Role,
		Books:       books,
	}
}
