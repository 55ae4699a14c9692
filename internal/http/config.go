package http

import "github.com/mrlokans/bookcatalog/internal/validation"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Store serves the book endpoints.
	Store BookStore

	// Database is pinged by /health. Nil reports the database as unavailable.
	Database Pinger

	// Validator checks create and update payloads. Defaults to the wall clock validator.
	Validator *validation.Validator

	// Random picks recommendation offsets. Defaults to math/rand/v2.
	Random func(n int) int

	// Application info
	Version string
}
