package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Author is the public projection of a row in the authors table.
// It deliberately has no password field.
type Author struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	BirthDate   time.Time
	Email       string
	Nationality string
	Role        string
	Books       []Book `gorm:"foreignKey:AuthorID"`
}

func (Author) TableName() string {
	return "authors"
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// AuthorRecord is the full authors row. Only migrations and seed code use it.
type AuthorRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null;index"`
	BirthDate   time.Time
	Email       string `gorm:"not null;uniqueIndex"`
	Nationality string
	Role        string
	Password    string `gorm:"not null;default:''"`
	Books       []Book `gorm:"foreignKey:AuthorID"`
}

func (AuthorRecord) TableName() string {
	return "authors"
}

func (a *AuthorRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

type AuthorCreateDto struct {
	Name        string
	BirthDate   time.Time
	Email       string
	Nationality string
	Role        string
}

func (d AuthorCreateDto) Author() Author {
	return Author{
		Name:        d.Name,
		BirthDate:   d.BirthDate,
		Email:       d.Email,
		Nationality: d.Nationality,
		Role:        d.Role,
	}
}
