package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
}

func TestValidateCreate_ValidPayload(t *testing.T) {
	v := New(WithClock(fixedClock()))

	fields, err := v.ValidateCreate([]byte(`{"title":"Dune","author":"Herbert","isbn":"9780441013593","publishedYear":1965}`))
	require.NoError(t, err)

	require.NotNil(t, fields.Title)
	require.NotNil(t, fields.Author)
	require.NotNil(t, fields.ISBN)
	require.NotNil(t, fields.PublishedYear)
	assert.Equal(t, "Dune", *fields.Title)
	assert.Equal(t, "Herbert", *fields.Author)
	assert.Equal(t, "9780441013593", *fields.ISBN)
	assert.Equal(t, 1965, *fields.PublishedYear)
}

func TestValidateCreate_Failures(t *testing.T) {
	v := New(WithClock(fixedClock()))

	tests := []struct {
		name    string
		body    string
		field   string
		kind    ErrorKind
		message string
	}{
		{
			name:    "missing title",
			body:    `{"author":"Herbert","isbn":"1","publishedYear":1965}`,
			field:   FieldTitle,
			kind:    KindRequired,
			message: `"title" is a required field`,
		},
		{
			name:    "missing author",
			body:    `{"title":"Dune","isbn":"1","publishedYear":1965}`,
			field:   FieldAuthor,
			kind:    KindRequired,
			message: `"author" is a required field`,
		},
		{
			name:    "missing isbn",
			body:    `{"title":"Dune","author":"Herbert","publishedYear":1965}`,
			field:   FieldISBN,
			kind:    KindRequired,
			message: `"isbn" is a required field`,
		},
		{
			name:    "missing publishedYear",
			body:    `{"title":"Dune","author":"Herbert","isbn":"1"}`,
			field:   FieldPublishedYear,
			kind:    KindRequired,
			message: `"publishedYear" is a required field`,
		},
		{
			name:    "empty title",
			body:    `{"title":"","author":"Herbert","isbn":"1","publishedYear":1965}`,
			field:   FieldTitle,
			kind:    KindEmpty,
			message: `"title" cannot be empty`,
		},
		{
			name:    "empty isbn",
			body:    `{"title":"Dune","author":"Herbert","isbn":"","publishedYear":1965}`,
			field:   FieldISBN,
			kind:    KindEmpty,
			message: `"isbn" cannot be empty`,
		},
		{
			name:    "numeric author",
			body:    `{"title":"Dune","author":42,"isbn":"1","publishedYear":1965}`,
			field:   FieldAuthor,
			kind:    KindNotString,
			message: `"author" must be a string`,
		},
		{
			name:    "null title",
			body:    `{"title":null,"author":"Herbert","isbn":"1","publishedYear":1965}`,
			field:   FieldTitle,
			kind:    KindNotString,
			message: `"title" must be a string`,
		},
		{
			name:    "year below range",
			body:    `{"title":"Dune","author":"Herbert","isbn":"1","publishedYear":999}`,
			field:   FieldPublishedYear,
			kind:    KindYearTooEarly,
			message: `"publishedYear" must be a valid 4-digit year`,
		},
		{
			name:    "year in the future",
			body:    `{"title":"Dune","author":"Herbert","isbn":"1","publishedYear":2025}`,
			field:   FieldPublishedYear,
			kind:    KindYearInFuture,
			message: `"publishedYear" cannot be in the future`,
		},
		{
			name:    "year not a number",
			body:    `{"title":"Dune","author":"Herbert","isbn":"1","publishedYear":"nineteen"}`,
			field:   FieldPublishedYear,
			kind:    KindNotNumber,
			message: `"publishedYear" must be a number`,
		},
		{
			name:    "year is a boolean",
			body:    `{"title":"Dune","author":"Herbert","isbn":"1","publishedYear":true}`,
			field:   FieldPublishedYear,
			kind:    KindNotNumber,
			message: `"publishedYear" must be a number`,
		},
		{
			name:    "fractional year",
			body:    `{"title":"Dune","author":"Herbert","isbn":"1","publishedYear":1965.5}`,
			field:   FieldPublishedYear,
			kind:    KindNotInteger,
			message: `"publishedYear" must be an integer`,
		},
		{
			name:    "unknown key",
			body:    `{"title":"Dune","author":"Herbert","isbn":"1","publishedYear":1965,"isFavorite":true}`,
			field:   "isFavorite",
			kind:    KindUnknownField,
			message: `"isFavorite" is not allowed`,
		},
		{
			name:    "array body",
			body:    `[{"title":"Dune"}]`,
			field:   "value",
			kind:    KindNotObject,
			message: `"value" must be of type object`,
		},
		{
			name:    "malformed json",
			body:    `{"title":`,
			field:   "value",
			kind:    KindNotObject,
			message: `"value" must be of type object`,
		},
		{
			name:    "empty body reports first required field",
			body:    ``,
			field:   FieldTitle,
			kind:    KindRequired,
			message: `"title" is a required field`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateCreate([]byte(tt.body))
			require.Error(t, err)

			fe, ok := AsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.kind, fe.Kind)
			assert.Equal(t, tt.message, fe.Error())
		})
	}
}

func TestValidateCreate_ReportsOnlyFirstError(t *testing.T) {
	v := New(WithClock(fixedClock()))

	_, err := v.ValidateCreate([]byte(`{"isbn":"","publishedYear":1}`))
	require.Error(t, err)

	fe, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, FieldTitle, fe.Field)
	assert.Equal(t, KindRequired, fe.Kind)
}

func TestValidateCreate_YearBoundaries(t *testing.T) {
	v := New(WithClock(fixedClock()))

	for _, year := range []string{"1000", "2024", `"1965"`} {
		t.Run(year, func(t *testing.T) {
			fields, err := v.ValidateCreate([]byte(`{"title":"T","author":"A","isbn":"I","publishedYear":` + year + `}`))
			require.NoError(t, err)
			require.NotNil(t, fields.PublishedYear)
		})
	}
}

func TestValidateCreate_FollowsClock(t *testing.T) {
	body := []byte(`{"title":"T","author":"A","isbn":"I","publishedYear":2030}`)

	_, err := New(WithClock(fixedClock())).ValidateCreate(body)
	assert.Error(t, err)

	later := New(WithClock(func() time.Time { return time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC) }))
	_, err = later.ValidateCreate(body)
	assert.NoError(t, err)
}

func TestValidateUpdate(t *testing.T) {
	v := New(WithClock(fixedClock()))

	t.Run("empty object is valid", func(t *testing.T) {
		fields, err := v.ValidateUpdate([]byte(`{}`))
		require.NoError(t, err)
		assert.Nil(t, fields.Title)
		assert.Nil(t, fields.Author)
		assert.Nil(t, fields.ISBN)
		assert.Nil(t, fields.PublishedYear)
	})

	t.Run("partial payload keeps only supplied fields", func(t *testing.T) {
		fields, err := v.ValidateUpdate([]byte(`{"author":"Frank Herbert"}`))
		require.NoError(t, err)
		require.NotNil(t, fields.Author)
		assert.Equal(t, "Frank Herbert", *fields.Author)
		assert.Nil(t, fields.Title)
		assert.Nil(t, fields.PublishedYear)
	})

	t.Run("present fields still follow the rules", func(t *testing.T) {
		_, err := v.ValidateUpdate([]byte(`{"title":""}`))
		require.Error(t, err)
		assert.Equal(t, `"title" cannot be empty`, err.Error())

		_, err = v.ValidateUpdate([]byte(`{"publishedYear":3000}`))
		require.Error(t, err)
		assert.Equal(t, `"publishedYear" cannot be in the future`, err.Error())
	})

	t.Run("id cannot be overwritten", func(t *testing.T) {
		_, err := v.ValidateUpdate([]byte(`{"id":"other"}`))
		require.Error(t, err)
		assert.Equal(t, `"id" is not allowed`, err.Error())
	})
}

func TestPackageLevelHelpers(t *testing.T) {
	_, err := ValidateCreate([]byte(`{"title":"T","author":"A","isbn":"I","publishedYear":1999}`))
	assert.NoError(t, err)

	_, err = ValidateUpdate([]byte(`{"isbn":7}`))
	assert.Error(t, err)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "required", KindRequired.String())
	assert.Equal(t, "year_in_future", KindYearInFuture.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}
