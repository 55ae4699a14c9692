package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Title         string    `gorm:"index;size:512" json:"title"`
	Author        string    `gorm:"index;size:256" json:"author"`
	ISBN          string    `gorm:"size:32" json:"isbn"`
	PublishedYear int       `json:"publishedYear"`
	IsFavorite    bool      `gorm:"not null;default:false" json:"isFavorite"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Book) TableName() string {
	return "books"
}

// BeforeCreate assigns the identifier. Ids supplied by callers are ignored so the
// store stays the only source of identifiers.
func (b *Book) BeforeCreate(tx *gorm.DB) error {
	b.ID = uuid.NewString()
	return nil
}

// Column names used for partial updates.
const (
	ColumnTitle         = "title"
	ColumnAuthor        = "author"
	ColumnISBN          = "isbn"
	ColumnPublishedYear = "published_year"
	ColumnIsFavorite    = "is_favorite"
)

// BookFields is a validated book payload. A nil field was not supplied by the client.
type BookFields struct {
	Title         *string
	Author        *string
	ISBN          *string
	PublishedYear *int
}

// NewBook builds a record from a create payload. Missing fields stay zero.
func (f BookFields) NewBook() *Book {
	book := &Book{}
	if f.Title != nil {
		book.Title = *f.Title
	}
	if f.Author != nil {
		book.Author = *f.Author
	}
	if f.ISBN != nil {
		book.ISBN = *f.ISBN
	}
	if f.PublishedYear != nil {
		book.PublishedYear = *f.PublishedYear
	}
	return book
}

// Updates returns the supplied fields keyed by column name.
func (f BookFields) Updates() map[string]any {
	updates := make(map[string]any, 4)
	if f.Title != nil {
		updates[ColumnTitle] = *f.Title
	}
	if f.Author != nil {
		updates[ColumnAuthor] = *f.Author
	}
	if f.ISBN != nil {
		updates[ColumnISBN] = *f.ISBN
	}
	if f.PublishedYear != nil {
		updates[ColumnPublishedYear] = *f.PublishedYear
	}
	return updates
}

// FavoriteUpdate is the update applied by the favorite operation.
func FavoriteUpdate() map[string]any {
	return map[string]any{ColumnIsFavorite: true}
}
