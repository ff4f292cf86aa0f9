package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/internal/domain"
)

func TestDecodeStringList(t *testing.T) {
	t.Run("JSON array passes through", func(t *testing.T) {
		got := domain.DecodeStringList(`["Go","PostgreSQL","Docker"]`)
		assert.Equal(t, domain.StringList{"Go", "PostgreSQL", "Docker"}, got)
	})

	t.Run("comma-separated fallback trims whitespace", func(t *testing.T) {
		got := domain.DecodeStringList("Go, PostgreSQL ,Docker")
		assert.Equal(t, domain.StringList{"Go", "PostgreSQL", "Docker"}, got)
	})

	t.Run("empty input yields empty non-nil list", func(t *testing.T) {
		got := domain.DecodeStringList("   ")
		assert.NotNil(t, got)
		assert.Len(t, got, 0)
	})

	t.Run("single value without commas", func(t *testing.T) {
		got := domain.DecodeStringList("Go")
		assert.Equal(t, domain.StringList{"Go"}, got)
	})

	t.Run("empty segments are dropped", func(t *testing.T) {
		got := domain.DecodeStringList("Go,,Docker,")
		assert.Equal(t, domain.StringList{"Go", "Docker"}, got)
	})
}

func TestStringListEncode(t *testing.T) {
	assert.Equal(t, `["Go","Docker"]`, domain.StringList{"Go", "Docker"}.Encode())
	assert.Equal(t, `[]`, domain.StringList(nil).Encode())

	// Round trip survives values containing commas.
	list := domain.StringList{"a,b", "c"}
	assert.Equal(t, list, domain.DecodeStringList(list.Encode()))
}

func TestStringListUnmarshalJSON(t *testing.T) {
	t.Run("array form", func(t *testing.T) {
		var l domain.StringList
		assert.NoError(t, json.Unmarshal([]byte(`["Go","Docker"]`), &l))
		assert.Equal(t, domain.StringList{"Go", "Docker"}, l)
	})

	t.Run("string form with commas", func(t *testing.T) {
		var l domain.StringList
		assert.NoError(t, json.Unmarshal([]byte(`"Go, Docker"`), &l))
		assert.Equal(t, domain.StringList{"Go", "Docker"}, l)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var l domain.StringList
		assert.Error(t, json.Unmarshal([]byte(`42`), &l))
	})
}
