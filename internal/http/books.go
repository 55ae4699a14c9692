package http

import (
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// BooksController serves the /api/books resource.
type BooksController struct {
	store BookStore
	intn  func(n int) int
}

type BooksOption func(*BooksController)

// WithRandom replaces the source used to pick a recommendation offset.
// intn must return a value in [0, n).
func WithRandom(intn func(n int) int) BooksOption {
	return func(bc *BooksController) {
		if intn != nil {
			bc.intn = intn
		}
	}
}

func NewBooksController(store BookStore, opts ...BooksOption) *BooksController {
	bc := &BooksController{
		store: store,
		intn:  rand.IntN,
	}
	for _, opt := range opts {
		opt(bc)
	}
	return bc
}

// ListBooks returns every book.
// GET /api/books
func (bc *BooksController) ListBooks(c *gin.Context) {
	books, err := bc.store.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "list", msgNoBooksFound)
		return
	}
	if books == nil {
		books = []entities.Book{}
	}
	c.JSON(http.StatusOK, books)
}

// CreateBook persists a validated payload.
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	fields := validatedFields(c)

	book, err := bc.store.Create(c.Request.Context(), fields.NewBook())
	if err != nil {
		respondError(c, err, "create", msgBookNotFound)
		return
	}
	respondCreated(c, book)
}

// UpdateBook overwrites the supplied fields of a book.
// PUT /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	fields := validatedFields(c)

	book, err := bc.store.FindAndUpdate(c.Request.Context(), c.Param("id"), fields.Updates())
	if err != nil {
		respondError(c, err, "update", msgBookNotFound)
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book permanently.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	if _, err := bc.store.FindAndDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete", msgBookNotFound)
		return
	}
	respondSuccess(c, msgBookDeleted)
}

// RecommendBook returns a uniformly random book.
// GET /api/books/recommendations
func (bc *BooksController) RecommendBook(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := bc.store.Count(ctx)
	if err != nil {
		respondError(c, err, "count", msgNoBooksFound)
		return
	}
	if count <= 0 {
		respondError(c, database.ErrNotFound, "recommend", msgNoBooksFound)
		return
	}

	book, err := bc.store.FindOneSkipping(ctx, bc.intn(int(count)))
	if err != nil {
		respondError(c, err, "recommend", msgNoBooksFound)
		return
	}
	c.JSON(http.StatusOK, book)
}

// FavoriteBook marks a book as favorite. Repeated calls keep it favorite.
// PUT /api/books/:id/favorite
func (bc *BooksController) FavoriteBook(c *gin.Context) {
	book, err := bc.store.FindAndUpdate(c.Request.Context(), c.Param("id"), entities.FavoriteUpdate())
	if err != nil {
		respondError(c, err, "favorite", msgBookNotFound)
		return
	}
	c.JSON(http.StatusOK, book)
}
