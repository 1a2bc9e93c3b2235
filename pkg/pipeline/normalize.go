package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// Normalize produces the canonical text for an item: title and body joined,
// control characters stripped, all whitespace runs collapsed to single
// spaces. The hex SHA-256 of that text is the dedup key.
func Normalize(raw models.RawItem) (models.NormalizedItem, error) {
	text := normalizeText(raw.Title + " " + raw.Body)
	if text == "" {
		return models.NormalizedItem{}, fmt.Errorf("item %s has no usable text", raw.ID)
	}

	sum := sha256.Sum256([]byte(text))
	return models.NormalizedItem{
		RawItem:  raw,
		Text:     text,
		TextHash: hex.EncodeToString(sum[:]),
	}, nil
}

func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case unicode.IsControl(r):
			// Dropped without acting as a separator.
		default:
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dedupe removes items whose text hash was already seen, preserving first
// occurrence order.
func dedupe(items []models.NormalizedItem) []models.NormalizedItem {
	seen := make(map[string]struct{}, len(items))
	out := items[:0:0]
	for _, item := range items {
		if _, ok := seen[item.TextHash]; ok {
			continue
		}
		seen[item.TextHash] = struct{}{}
		out = append(out, item)
	}
	return out
}
