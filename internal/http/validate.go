package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/entities"
	"github.com/mrlokans/bookcatalog/internal/validation"
)

const contextKeyBookFields = "book_fields"

// maxBodyBytes caps the size of book payloads.
const maxBodyBytes = 1 << 20

// ValidateBookBody checks the request body against the create or update schema
// and stores the result for the handler. Invalid payloads are rejected with 400,
// bodies over maxBodyBytes with 413.
func ValidateBookBody(v *validation.Validator, mode validation.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ValidationErrorResponse{
					Status:  validationStatus,
					Message: fmt.Sprintf("request body must not exceed %d bytes", tooLarge.Limit),
				})
				return
			}
			respondError(c, &validation.FieldError{Field: "value", Kind: validation.KindNotObject}, "validate", msgBookNotFound)
			return
		}

		fields, err := v.Validate(body, mode)
		if err != nil {
			respondError(c, err, "validate", msgBookNotFound)
			return
		}

		c.Set(contextKeyBookFields, fields)
		c.Next()
	}
}

// validatedFields returns the payload stored by ValidateBookBody.
func validatedFields(c *gin.Context) entities.BookFields {
	return c.MustGet(contextKeyBookFields).(entities.BookFields)
}
