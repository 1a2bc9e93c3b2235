package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ohsono/sentiwatch/pkg/models"
)

const (
	// pageTimeout bounds a single upstream listing request.
	defaultPageTimeout = 15 * time.Second

	// listingPageSize is the upstream page size for post listings.
	listingPageSize = 100

	// retryInitialInterval seeds the exponential backoff: 250ms, 1s, 4s.
	retryInitialInterval = 250 * time.Millisecond
	retryMultiplier      = 4.0

	// maxAttempts is the total attempts per upstream request.
	maxAttempts = 3
)

// Config configures the Reddit client.
type Config struct {
	BaseURL     string
	UserAgent   string
	PageTimeout time.Duration

	// Credentials are forwarded opaquely when present.
	ClientID     string
	ClientSecret string
}

// RedditClient fetches listings from a Reddit-compatible JSON API.
type RedditClient struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRedditClient creates a content source client.
func NewRedditClient(cfg Config) *RedditClient {
	if cfg.PageTimeout <= 0 {
		cfg.PageTimeout = defaultPageTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "sentiwatch/1.0"
	}
	return &RedditClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.PageTimeout},
		logger:     slog.With("component", "source"),
	}
}

// Listing JSON shapes (subset of the Reddit API).
type listingEnvelope struct {
	Data struct {
		After    string         `json:"after"`
		Children []listingChild `json:"children"`
	} `json:"data"`
}

type listingChild struct {
	Kind string `json:"kind"` // "t3" post, "t1" comment
	Data struct {
		ID          string  `json:"id"`
		Subreddit   string  `json:"subreddit"`
		Author      string  `json:"author"`
		CreatedUTC  float64 `json:"created_utc"`
		Title       string  `json:"title"`
		SelfText    string  `json:"selftext"`
		Body        string  `json:"body"`
		Score       int     `json:"score"`
		UpvoteRatio float64 `json:"upvote_ratio"`
		ParentID    string  `json:"parent_id"`
	} `json:"data"`
}

// Fetch starts producing items for params. The returned feed yields up to
// PostLimit posts, each followed by up to CommentLimitPerPost of its
// comments, and ends early (with Err set) on terminal upstream failure.
func (c *RedditClient) Fetch(ctx context.Context, params models.SourceParams) *Feed {
	feed := NewFeed(listingPageSize)
	go c.run(ctx, params, feed)
	return feed
}

func (c *RedditClient) run(ctx context.Context, params models.SourceParams, feed *Feed) {
	defer feed.Close()

	log := c.logger.With("subreddit", params.Subreddit, "sort", string(params.Sort))

	var (
		after   string
		fetched int
	)

	for fetched < params.PostLimit {
		if ctx.Err() != nil {
			feed.Fail(ctx.Err())
			return
		}

		page, err := c.fetchListing(ctx, params, after)
		if err != nil {
			log.Warn("Listing fetch failed, ending feed with partial result",
				"fetched", fetched, "error", err)
			feed.Fail(err)
			return
		}
		if len(page.Data.Children) == 0 {
			return
		}

		for _, child := range page.Data.Children {
			if fetched >= params.PostLimit {
				return
			}
			post := rawItemFromChild(child, params.Subreddit)
			if !feed.Emit(ctx, post) {
				feed.Fail(ctx.Err())
				return
			}
			fetched++

			if params.CommentLimitPerPost > 0 {
				if err := c.emitComments(ctx, params, post.ID, feed); err != nil {
					// Comment failures degrade the post to "no comments"
					// rather than killing the whole feed.
					log.Warn("Comment fetch failed, continuing with posts",
						"post_id", post.ID, "error", err)
				}
			}
		}

		after = page.Data.After
		if after == "" {
			return
		}
	}
}

// fetchListing retrieves one listing page with retry.
func (c *RedditClient) fetchListing(ctx context.Context, params models.SourceParams, after string) (*listingEnvelope, error) {
	u, err := c.listingURL(params, after)
	if err != nil {
		return nil, err
	}
	return c.getListing(ctx, u)
}

// listingURL builds the page URL for the requested sort or search query.
func (c *RedditClient) listingURL(params models.SourceParams, after string) (string, error) {
	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid source base URL: %w", err)
	}

	q := url.Values{}
	q.Set("limit", fmt.Sprint(listingPageSize))
	q.Set("raw_json", "1")
	if after != "" {
		q.Set("after", after)
	}

	if params.Query != "" {
		base.Path = fmt.Sprintf("/r/%s/search.json", params.Subreddit)
		q.Set("q", params.Query)
		q.Set("restrict_sr", "1")
		q.Set("sort", string(params.Sort))
	} else {
		base.Path = fmt.Sprintf("/r/%s/%s.json", params.Subreddit, params.Sort)
	}
	if params.TimeWindow != "" {
		q.Set("t", string(params.TimeWindow))
	}

	base.RawQuery = q.Encode()
	return base.String(), nil
}

// emitComments fetches and emits up to the configured number of comments for
// one post.
func (c *RedditClient) emitComments(ctx context.Context, params models.SourceParams, postID string, feed *Feed) error {
	u := fmt.Sprintf("%s/r/%s/comments/%s.json?limit=%d&raw_json=1",
		c.cfg.BaseURL, params.Subreddit, postID, params.CommentLimitPerPost)

	var pages []listingEnvelope
	err := c.withRetry(ctx, func(reqCtx context.Context) error {
		return c.getJSON(reqCtx, u, &pages)
	})
	if err != nil {
		return err
	}

	// The comments endpoint returns [post listing, comment listing].
	if len(pages) < 2 {
		return nil
	}

	emitted := 0
	for _, child := range pages[1].Data.Children {
		if child.Kind != "t1" || emitted >= params.CommentLimitPerPost {
			break
		}
		comment := rawItemFromChild(child, params.Subreddit)
		comment.ParentID = postID
		if !feed.Emit(ctx, comment) {
			return ctx.Err()
		}
		emitted++
	}
	return nil
}

// getListing fetches and decodes one listing envelope with retry.
func (c *RedditClient) getListing(ctx context.Context, u string) (*listingEnvelope, error) {
	var envelope listingEnvelope
	err := c.withRetry(ctx, func(reqCtx context.Context) error {
		return c.getJSON(reqCtx, u, &envelope)
	})
	if err != nil {
		return nil, err
	}
	return &envelope, nil
}

// withRetry runs fn under the source retry policy: exponential backoff
// starting at 250ms with 3 attempts total, respecting ctx cancellation.
func (c *RedditClient) withRetry(ctx context.Context, fn func(context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.Multiplier = retryMultiplier
	b.RandomizationFactor = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, maxAttempts-1), ctx)

	return backoff.Retry(func() error {
		reqCtx, cancel := context.WithTimeout(ctx, c.cfg.PageTimeout)
		defer cancel()
		return fn(reqCtx)
	}, policy)
}

// getJSON performs a single GET and decodes the body into out.
func (c *RedditClient) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden {
		// Retrying a missing or private subreddit cannot help.
		return backoff.Permanent(fmt.Errorf("source returned HTTP %d for %s", resp.StatusCode, u))
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("source returned HTTP %d for %s", resp.StatusCode, u)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return backoff.Permanent(fmt.Errorf("decode listing: %w", err))
	}
	return nil
}

// rawItemFromChild maps a listing child onto the domain item type.
func rawItemFromChild(child listingChild, subreddit string) models.RawItem {
	kind := models.ItemKindPost
	if child.Kind == "t1" {
		kind = models.ItemKindComment
	}
	sub := child.Data.Subreddit
	if sub == "" {
		sub = subreddit
	}
	return models.RawItem{
		ID:          child.Data.ID,
		Kind:        kind,
		Author:      child.Data.Author,
		Subreddit:   sub,
		CreatedAt:   time.Unix(int64(child.Data.CreatedUTC), 0).UTC(),
		Title:       child.Data.Title,
		Body:        firstNonEmpty(child.Data.SelfText, child.Data.Body),
		Score:       child.Data.Score,
		UpvoteRatio: child.Data.UpvoteRatio,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
