package validation

import (
	"testing"

	dom "github.com/cuihairu/labcatalog/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationErr(t *testing.T, err error) *dom.ValidationError {
	t.Helper()
	var verr *dom.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestRequestSchemas(t *testing.T) {
	cases := []struct {
		name   string
		schema *Schema
		body   string
		field  string
		msg    string
	}{
		{"company ok", Company, `{"name":"Valve","country":"USA","foundedYear":1996}`, "", ""},
		{"company nulls ok", Company, `{"name":"Valve","country":null,"foundedYear":null}`, "", ""},
		{"company missing name", Company, `{"country":"USA"}`, "name", "Name cannot be blank"},
		{"company blank name", Company, `{"name":"  "}`, "name", "Name cannot be blank"},
		{"company founded", Company, `{"name":"X","foundedYear":1900}`, "foundedYear", "Founded year must be at least 1950"},
		{"company first field wins", Company, `{"name":"","foundedYear":1900}`, "name", "Name cannot be blank"},
		{"company wrong type", Company, `{"name":42}`, "name", "name has an invalid type"},
		{"genre ok", Genre, `{"name":"rpg","description":"role playing"}`, "", ""},
		{"genre missing", Genre, `{}`, "name", "Name cannot be blank"},
		{"game ok", VideoGame, `{"title":"Portal","releaseYear":2007,"price":9.99,"developerId":1,"publisherId":1,"genreId":1}`, "", ""},
		{"game old", VideoGame, `{"title":"Pong","releaseYear":1969,"price":0,"developerId":1,"publisherId":1,"genreId":1}`, "releaseYear", "Release year must be at least 1970"},
		{"game far future", VideoGame, `{"title":"X","releaseYear":2101,"price":0,"developerId":1,"publisherId":1,"genreId":1}`, "releaseYear", "Release year cannot exceed 2100"},
		{"game negative price", VideoGame, `{"title":"X","releaseYear":2000,"price":-0.01,"developerId":1,"publisherId":1,"genreId":1}`, "price", "Price must be non-negative"},
		{"game missing developer", VideoGame, `{"title":"X","releaseYear":2000,"price":1,"publisherId":1,"genreId":1}`, "developerId", "Developer ID is required"},
		{"game missing everything", VideoGame, `{}`, "title", "Title cannot be blank"},
		{"patch empty ok", VideoGamePatch, `{}`, "", ""},
		{"patch price only", VideoGamePatch, `{"price":39.99}`, "", ""},
		{"patch negative price", VideoGamePatch, `{"price":-1}`, "price", "Price must be non-negative"},
		{"patch old year", VideoGamePatch, `{"releaseYear":1960}`, "releaseYear", "Release year must be at least 1970"},
		{"not an object", Genre, `[1,2]`, "", "Request body must be a JSON object"},
		{"malformed", Genre, `{"name":`, "", "Malformed JSON request"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.schema.Validate([]byte(tc.body))
			if tc.msg == "" {
				require.NoError(t, err)
				return
			}
			verr := validationErr(t, err)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.msg, verr.Message)
		})
	}
}

func TestEmptyBodyIsEmptyObject(t *testing.T) {
	require.NoError(t, VideoGamePatch.Validate(nil))
	verr := validationErr(t, Company.Validate([]byte("  ")))
	assert.Equal(t, "name", verr.Field)
}

func TestScratchSchemas(t *testing.T) {
	require.NoError(t, ScratchValue("number").Validate([]byte(`{"value":3}`)))
	verr := validationErr(t, ScratchValue("number").Validate([]byte(`{"value":"3"}`)))
	assert.Equal(t, "Value must be a number", verr.Message)
	verr = validationErr(t, ScratchValue("boolean").Validate([]byte(`{}`)))
	assert.Equal(t, "value", verr.Field)

	require.NoError(t, ScratchIndexed("number").Validate([]byte(`{"index":0,"value":"12"}`)))
	require.NoError(t, ScratchIndexed("boolean").Validate([]byte(`{"index":1,"value":true}`)))
	verr = validationErr(t, ScratchIndexed("string").Validate([]byte(`{"index":-1,"value":"a"}`)))
	assert.Equal(t, "index", verr.Field)
	assert.Equal(t, "Index out of range", verr.Message)

	verr = validationErr(t, ScratchItem.Validate([]byte(`{"item":1}`)))
	assert.Equal(t, "Item must be a string", verr.Message)
}

func TestLoadCaches(t *testing.T) {
	a, err := Load("genre")
	require.NoError(t, err)
	b, err := Load("genre")
	require.NoError(t, err)
	assert.Same(t, a, b)
	_, err = Load("missing")
	assert.Error(t, err)
}
