package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	Category       string
	IsPartOfSeries bool
	AuthorID       uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
