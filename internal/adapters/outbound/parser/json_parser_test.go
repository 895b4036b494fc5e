package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlint/eventlint/internal/adapters/outbound/parser"
	"github.com/eventlint/eventlint/internal/domain"
)

func TestParse_ValidObject(t *testing.T) {
	raw := []byte(`{"event_name": "user.login", "user_id": 123, "active": true, "meta": {"a": 1}, "tags": ["x"]}`)

	rec, err := parser.New().Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, 5, rec.Len())
	assert.Equal(t, []string{"event_name", "user_id", "active", "meta", "tags"}, rec.Keys)

	v, ok := rec.Get("user_id")
	require.True(t, ok)
	assert.Equal(t, float64(123), v, "values are returned undecorated, no coercion")
}

func TestParse_PreservesDocumentKeyOrder(t *testing.T) {
	raw := []byte(`{"zulu": 1, "alpha": 2, "mike": 3}`)

	rec, err := parser.New().Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, rec.Keys)
}

func TestParse_InvalidSyntax(t *testing.T) {
	for _, raw := range []string{`{"a":`, `{a: 1}`, `not json`, ``} {
		_, err := parser.New().Parse([]byte(raw))
		require.Error(t, err, "input %q", raw)

		var perr *domain.ParseError
		require.True(t, errors.As(err, &perr), "input %q", raw)
		assert.Equal(t, domain.InvalidSyntax, perr.Kind)
		assert.Contains(t, perr.Message, "invalid JSON")
	}
}

func TestParse_InvalidShape(t *testing.T) {
	for _, raw := range []string{`[1, 2, 3]`, `"just a string"`, `42`, `true`, `null`} {
		_, err := parser.New().Parse([]byte(raw))
		require.Error(t, err, "input %q", raw)

		var perr *domain.ParseError
		require.True(t, errors.As(err, &perr), "input %q", raw)
		assert.Equal(t, domain.InvalidShape, perr.Kind)
		// Fixed message, never echoing the value itself.
		assert.Equal(t, "input must be a single JSON object", perr.Message)
	}
}

func TestParse_DuplicateKeysKeptOnce(t *testing.T) {
	raw := []byte(`{"a": 1, "b": 2, "a": 3}`)

	rec, err := parser.New().Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rec.Keys)
}

func TestParse_LeadingWhitespaceTolerated(t *testing.T) {
	rec, err := parser.New().Parse([]byte("\n\t {\"a\": 1} \n"))
	require.NoError(t, err)
	assert.True(t, rec.Has("a"))
}
