package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/models"
)

func listingJSON(after string, ids ...string) string {
	children := ""
	for i, id := range ids {
		if i > 0 {
			children += ","
		}
		children += fmt.Sprintf(`{"kind":"t3","data":{"id":"%s","subreddit":"ucla","author":"u%s","created_utc":1700000000,"title":"post %s","selftext":"body %s","score":10,"upvote_ratio":0.9}}`, id, id, id, id)
	}
	return fmt.Sprintf(`{"data":{"after":"%s","children":[%s]}}`, after, children)
}

func drain(f *Feed) []models.RawItem {
	var items []models.RawItem
	for {
		item, ok := f.Next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

func testParams(limit int) models.SourceParams {
	return models.SourceParams{
		Subreddit: "ucla",
		PostLimit: limit,
		Sort:      models.SortHot,
	}
}

func TestFetchPaginatesUntilPostLimit(t *testing.T) {
	var pages atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/r/ucla/hot.json", r.URL.Path)
		switch r.URL.Query().Get("after") {
		case "":
			pages.Add(1)
			_, _ = w.Write([]byte(listingJSON("cursor1", "a", "b")))
		case "cursor1":
			pages.Add(1)
			_, _ = w.Write([]byte(listingJSON("", "c", "d")))
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("after"))
		}
	}))
	defer srv.Close()

	c := NewRedditClient(Config{BaseURL: srv.URL})
	items := drain(c.Fetch(context.Background(), testParams(3)))

	assert.Len(t, items, 3)
	assert.EqualValues(t, 2, pages.Load())
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, models.ItemKindPost, items[0].Kind)
	assert.Equal(t, "post a", items[0].Title)
}

func TestFetchStopsOnEmptyCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listingJSON("", "a")))
	}))
	defer srv.Close()

	c := NewRedditClient(Config{BaseURL: srv.URL})
	feed := c.Fetch(context.Background(), testParams(100))
	items := drain(feed)

	assert.Len(t, items, 1)
	assert.NoError(t, feed.Err())
}

func TestFetchIncludesComments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/r/ucla/hot.json":
			_, _ = w.Write([]byte(listingJSON("", "p1")))
		case "/r/ucla/comments/p1.json":
			_, _ = w.Write([]byte(`[` +
				listingJSON("", "p1") + `,` +
				`{"data":{"after":"","children":[` +
				`{"kind":"t1","data":{"id":"c1","author":"u1","created_utc":1700000100,"body":"first comment","score":3}},` +
				`{"kind":"t1","data":{"id":"c2","author":"u2","created_utc":1700000200,"body":"second comment","score":1}}` +
				`]}}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewRedditClient(Config{BaseURL: srv.URL})
	params := testParams(1)
	params.CommentLimitPerPost = 2
	items := drain(c.Fetch(context.Background(), params))

	require.Len(t, items, 3)
	assert.Equal(t, models.ItemKindPost, items[0].Kind)
	assert.Equal(t, models.ItemKindComment, items[1].Kind)
	assert.Equal(t, "p1", items[1].ParentID)
	assert.Equal(t, "first comment", items[1].Body)
	assert.Equal(t, "ucla", items[1].Subreddit)
}

func TestFetchRetriesTransientErrors(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(listingJSON("", "a")))
	}))
	defer srv.Close()

	c := NewRedditClient(Config{BaseURL: srv.URL})
	feed := c.Fetch(context.Background(), testParams(1))
	items := drain(feed)

	assert.Len(t, items, 1)
	assert.NoError(t, feed.Err())
	assert.EqualValues(t, 2, attempts.Load())
}

func TestFetchTerminalFailureEndsFeedWithError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewRedditClient(Config{BaseURL: srv.URL})
	feed := c.Fetch(context.Background(), testParams(5))
	items := drain(feed)

	assert.Empty(t, items)
	assert.Error(t, feed.Err())
	assert.EqualValues(t, 3, attempts.Load(), "3 attempts total per request")
}

func TestFetchDoesNotRetryNotFound(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewRedditClient(Config{BaseURL: srv.URL})
	feed := c.Fetch(context.Background(), testParams(5))
	drain(feed)

	assert.Error(t, feed.Err())
	assert.EqualValues(t, 1, attempts.Load())
}

func TestFetchSearchQueryURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/ucla/search.json", r.URL.Path)
		assert.Equal(t, "finals stress", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("restrict_sr"))
		assert.Equal(t, "week", r.URL.Query().Get("t"))
		_, _ = w.Write([]byte(listingJSON("", "a")))
	}))
	defer srv.Close()

	c := NewRedditClient(Config{BaseURL: srv.URL})
	params := testParams(1)
	params.Query = "finals stress"
	params.TimeWindow = models.WindowWeek
	items := drain(c.Fetch(context.Background(), params))

	assert.Len(t, items, 1)
}

func TestFetchCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listingJSON("next", "a", "b", "c")))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := NewRedditClient(Config{BaseURL: srv.URL})
	feed := c.Fetch(ctx, testParams(100000))

	_, ok := feed.Next()
	require.True(t, ok)
	cancel()

	// The feed must terminate promptly after cancellation.
	done := make(chan struct{})
	go func() {
		drain(feed)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("feed did not terminate after cancellation")
	}
}
