package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/models"
)

func TestNormalizeCollapsesWhitespaceAndStripsControls(t *testing.T) {
	raw := models.RawItem{
		ID:    "p1",
		Title: "Midterm\tseason",
		Body:  "so   much\n\nreading\x00 left",
	}

	item, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "Midterm season so much reading left", item.Text)
	assert.Len(t, item.TextHash, 64)
}

func TestNormalizeIsStableAcrossWhitespaceVariants(t *testing.T) {
	a, err := Normalize(models.RawItem{ID: "a", Body: "hello   world"})
	require.NoError(t, err)
	b, err := Normalize(models.RawItem{ID: "b", Body: " hello\nworld "})
	require.NoError(t, err)

	assert.Equal(t, a.Text, b.Text)
	assert.Equal(t, a.TextHash, b.TextHash)
}

func TestNormalizeRejectsEmptyText(t *testing.T) {
	_, err := Normalize(models.RawItem{ID: "x", Body: "  \t\n "})
	assert.Error(t, err)
}

func TestDedupePreservesFirstOccurrence(t *testing.T) {
	mk := func(id, text string) models.NormalizedItem {
		item, err := Normalize(models.RawItem{ID: id, Body: text})
		require.NoError(t, err)
		return item
	}

	items := []models.NormalizedItem{
		mk("a", "first post"),
		mk("b", "second post"),
		mk("c", "first post"),
	}
	out := dedupe(items)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
}
