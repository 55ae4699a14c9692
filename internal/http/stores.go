package http

import (
	"context"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// This file holds the store interfaces consumed by HTTP controllers. Concrete
// implementations live under internal/database; compile-time checks are in
// internal/interfaces.

// BookStore is the record store contract used by BooksController. Operations
// return database.ErrNotFound when no record matches.
type BookStore interface {
	ListAll(ctx context.Context) ([]entities.Book, error)
	Create(ctx context.Context, book *entities.Book) (*entities.Book, error)
	FindAndUpdate(ctx context.Context, id string, updates map[string]any) (*entities.Book, error)
	FindAndDelete(ctx context.Context, id string) (*entities.Book, error)
	Count(ctx context.Context) (int64, error)
	FindOneSkipping(ctx context.Context, n int) (*entities.Book, error)
}

// Pinger reports whether the database connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}
