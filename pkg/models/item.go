// Package models contains the shared domain types passed between the
// content source, pipeline stages, failsafe dispatcher, and result store.
package models

import "time"

// ItemKind distinguishes posts from comments.
type ItemKind string

// Item kinds.
const (
	ItemKindPost    ItemKind = "post"
	ItemKindComment ItemKind = "comment"
)

// RawItem is a single post or comment as produced by the content source.
type RawItem struct {
	ID          string    `json:"id"`
	Kind        ItemKind  `json:"kind"`
	ParentID    string    `json:"parent_id,omitempty"`
	Author      string    `json:"author,omitempty"`
	Subreddit   string    `json:"subreddit"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title,omitempty"`
	Body        string    `json:"body"`
	Score       int       `json:"score,omitempty"`
	UpvoteRatio float64   `json:"upvote_ratio,omitempty"`
}

// NormalizedItem is a RawItem with its cleaned text and content hash.
// Text is title + body with control characters stripped and whitespace
// collapsed; TextHash is the hex-encoded SHA-256 digest of Text and is the
// basis for deduplication.
type NormalizedItem struct {
	RawItem
	Text     string `json:"text"`
	TextHash string `json:"text_hash"`
}
