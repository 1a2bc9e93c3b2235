// Package source fetches posts and comments from a Reddit-style listing API
// as a finite, lazily produced feed of raw items. Retry with exponential
// backoff happens here, per upstream request; nothing downstream retries.
package source

import (
	"context"
	"sync"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// Source produces raw items for the scrape stage.
type Source interface {
	Fetch(ctx context.Context, params models.SourceParams) *Feed
}

// Feed is a finite, non-restartable sequence of raw items. After Next
// returns false, Err reports whether the feed ended early; a non-nil error
// with items already delivered is a partial result.
type Feed struct {
	items chan models.RawItem

	mu  sync.Mutex
	err error
}

// NewFeed creates a feed with the given producer-side buffer.
func NewFeed(buffer int) *Feed {
	return &Feed{items: make(chan models.RawItem, buffer)}
}

// Next returns the next item, blocking until one is available or the feed
// ends.
func (f *Feed) Next() (models.RawItem, bool) {
	item, ok := <-f.items
	return item, ok
}

// Err returns the terminal error, if any. Valid once Next has returned
// false.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Fail records the terminal error. Producer side only.
func (f *Feed) Fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

// Emit delivers an item unless ctx is done. Returns false when the consumer
// is gone. Producer side only.
func (f *Feed) Emit(ctx context.Context, item models.RawItem) bool {
	select {
	case f.items <- item:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close ends the feed. Producer side only; no Emit or Fail may follow.
func (f *Feed) Close() {
	close(f.items)
}
