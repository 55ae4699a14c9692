// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: the six record store operations behind /api/books (internal/http/stores.go)
//   - Pinger: database reachability for /health (internal/http/stores.go)
//
// # Adding a New Store Backend
//
// To back the catalog with something other than gorm:
//
//  1. Create a package next to internal/database/books/
//
//  2. Define a repository that reports missing records with database.ErrNotFound:
//
//     type Repository struct { db *sql.DB }
//
//     func (r *Repository) FindAndDelete(ctx context.Context, id string) (*entities.Book, error)
//
//  3. Add compile-time check:
//
//     var _ http.BookStore = (*Repository)(nil)
//
//  4. Pass it as RouterConfig.Store in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
