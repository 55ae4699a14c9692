package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/logging"
	"github.com/mrlokans/bookcatalog/internal/metrics"
	"github.com/mrlokans/bookcatalog/internal/validation"
)

// --- Response Types ---

// MessageResponse is the body for not-found and store errors, and for
// confirmations such as a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the body for rejected payloads.
type ValidationErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const (
	msgBookNotFound  = "Book not found"
	msgNoBooksFound  = "No books found"
	msgBookDeleted   = "Book deleted"
	msgInternalError = "internal server error"
	validationStatus = "error"
)

// --- Error Classification ---

type errorKind int

const (
	kindStore errorKind = iota
	kindValidation
	kindNotFound
)

// classify maps an error from the validator or the store to its kind. Anything
// not recognised is a store error.
func classify(err error) errorKind {
	if _, ok := validation.AsFieldError(err); ok {
		return kindValidation
	}
	if errors.Is(err, database.ErrNotFound) {
		return kindNotFound
	}
	return kindStore
}

// statusFor is the single mapping from error kind to HTTP status.
func statusFor(kind errorKind) int {
	switch kind {
	case kindValidation:
		return http.StatusBadRequest
	case kindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// --- Error Response Helpers ---

// respondError writes the response for err. notFoundMessage is used when err
// means the record does not exist. Store errors are logged and counted, and
// their details are not exposed to the client.
func respondError(c *gin.Context, err error, operation, notFoundMessage string) {
	kind := classify(err)
	status := statusFor(kind)

	switch kind {
	case kindValidation:
		c.AbortWithStatusJSON(status, ValidationErrorResponse{Status: validationStatus, Message: err.Error()})
	case kindNotFound:
		c.AbortWithStatusJSON(status, MessageResponse{Message: notFoundMessage})
	default:
		metrics.RecordStoreError(operation)
		logging.Error().Err(err).
			Str("operation", operation).
			Str("request_id", GetRequestID(c)).
			Msg("Store operation failed")
		c.AbortWithStatusJSON(status, MessageResponse{Message: msgInternalError})
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
