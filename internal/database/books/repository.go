// Package books provides the record store operations for the book catalog.
//
// # Interface Implementation
//
//	var _ http.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db.DB)
//	all, err := repo.ListAll(ctx)
package books

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Repository handles all book database operations. Records are returned in store
// order: creation time, then id.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository. A nil db yields a repository whose
// operations all fail with database.ErrUnavailable.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, database.ErrUnavailable
	}
	return r.db.WithContext(ctx), nil
}

func storeOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

// ListAll returns every book.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Book, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	books := []entities.Book{}
	if err := storeOrder(db).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Create persists book and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	if err := db.Create(book).Error; err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// FindAndUpdate overwrites the given columns and returns the updated record.
func (r *Repository) FindAndUpdate(ctx context.Context, id string, updates map[string]any) (*entities.Book, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	id, ok := canonicalID(id)
	if !ok {
		return nil, database.ErrNotFound
	}

	var book entities.Book
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&book).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&entities.Book{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&book).Error
	})
	if err != nil {
		return nil, translate("update book", err)
	}
	return &book, nil
}

// FindAndDelete removes a book and returns the deleted record.
func (r *Repository) FindAndDelete(ctx context.Context, id string) (*entities.Book, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	id, ok := canonicalID(id)
	if !ok {
		return nil, database.ErrNotFound
	}

	var book entities.Book
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&book).Error; err != nil {
			return err
		}
		return tx.Delete(&book).Error
	})
	if err != nil {
		return nil, translate("delete book", err)
	}
	return &book, nil
}

// Count returns the total number of books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&entities.Book{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

// FindOneSkipping returns the book at offset n in store order.
func (r *Repository) FindOneSkipping(ctx context.Context, n int) (*entities.Book, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, database.ErrNotFound
	}

	var books []entities.Book
	if err := storeOrder(db).Offset(n).Limit(1).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("find book at offset %d: %w", n, err)
	}
	if len(books) == 0 {
		return nil, database.ErrNotFound
	}
	return &books[0], nil
}

// canonicalID returns id in the lowercase hyphenated form the store assigns.
// Uppercase, braced and urn:uuid: spellings resolve to the same record on
// every dialect.
func canonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func translate(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
