// Package store persists classification verdicts and alerts to PostgreSQL
// through Ent. All writes are idempotent on normalized text content.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ohsono/sentiwatch/ent"
	entalert "github.com/ohsono/sentiwatch/ent/alert"
	"github.com/ohsono/sentiwatch/ent/classification"
	"github.com/ohsono/sentiwatch/pkg/models"
)

// writeTimeout bounds store writes independently of the caller's context so a
// cancelled pipeline cannot leave a half-written batch.
const writeTimeout = 10 * time.Second

// ClassificationService persists scored content.
type ClassificationService struct {
	client *ent.Client
}

// NewClassificationService creates a new ClassificationService.
func NewClassificationService(client *ent.Client) *ClassificationService {
	if client == nil {
		panic("NewClassificationService: client must not be nil")
	}
	return &ClassificationService{client: client}
}

// StoreClassification persists one scored item. The text hash is the dedup
// key: when a row with the same hash already exists the existing row is
// returned and inserted is false.
func (s *ClassificationService) StoreClassification(ctx context.Context, item models.NormalizedItem, verdict models.SentimentVerdict) (*ent.Classification, bool, error) {
	if item.Text == "" {
		return nil, false, NewValidationError("text", "required")
	}
	if item.TextHash == "" {
		return nil, false, NewValidationError("text_hash", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.Classification.Create().
		SetID(uuid.New().String()).
		SetSourceID(item.ID).
		SetKind(classification.Kind(item.Kind)).
		SetSubreddit(item.Subreddit).
		SetAuthor(item.Author).
		SetParentID(item.ParentID).
		SetText(item.Text).
		SetTextHash(item.TextHash).
		SetLabel(classification.Label(verdict.Label)).
		SetConfidence(verdict.Confidence).
		SetCompound(verdict.Compound).
		SetModel(verdict.Model).
		SetVerdictSource(classification.VerdictSource(verdict.Source)).
		SetLatencyMs(verdict.LatencyMS).
		SetScore(item.Score).
		SetContentCreatedAt(item.CreatedAt).
		Save(writeCtx)
	if err == nil {
		return row, true, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, fmt.Errorf("failed to store classification: %w", err)
	}

	// Unique text_hash collision: the content was already persisted.
	existing, err := s.client.Classification.Query().
		Where(classification.TextHashEQ(item.TextHash)).
		Only(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load existing classification: %w", err)
	}
	return existing, false, nil
}

// GetClassification retrieves one row by ID.
func (s *ClassificationService) GetClassification(ctx context.Context, id string) (*ent.Classification, error) {
	row, err := s.client.Classification.Query().
		Where(classification.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get classification: %w", err)
	}
	return row, nil
}

// ClassificationFilters narrows ListClassifications results.
type ClassificationFilters struct {
	Subreddit string
	Label     string
	Since     *time.Time
	Limit     int
	Offset    int
}

// ClassificationList is a paginated page of rows.
type ClassificationList struct {
	Items      []*ent.Classification `json:"items"`
	TotalCount int                   `json:"total_count"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}

// ListClassifications returns persisted rows, newest first.
func (s *ClassificationService) ListClassifications(ctx context.Context, filters ClassificationFilters) (*ClassificationList, error) {
	query := s.client.Classification.Query()

	if filters.Subreddit != "" {
		query = query.Where(classification.SubredditEQ(filters.Subreddit))
	}
	if filters.Label != "" {
		query = query.Where(classification.LabelEQ(classification.Label(filters.Label)))
	}
	if filters.Since != nil {
		query = query.Where(classification.CreatedAtGTE(*filters.Since))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count classifications: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(classification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}

	return &ClassificationList{
		Items:      rows,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// LabelCount is one label bucket in a summary.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AlertCount is one kind+severity bucket in a summary.
type AlertCount struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

// Summary aggregates persisted verdicts over a trailing window. SourceCounts
// buckets rows by verdict source (model vs fallback); FallbackUsed repeats the
// fallback bucket for callers that only care about degradation.
type Summary struct {
	Window        string         `json:"window"`
	Total         int            `json:"total"`
	Labels        []LabelCount   `json:"labels"`
	SourceCounts  map[string]int `json:"source_counts"`
	MeanCompound  float64        `json:"mean_compound"`
	MeanLatencyMS float64        `json:"mean_latency_ms"`
	FallbackUsed  int            `json:"fallback_used"`
	Alerts        []AlertCount   `json:"alerts"`
}

// Summarize aggregates rows persisted within the trailing window.
func (s *ClassificationService) Summarize(ctx context.Context, window time.Duration) (*Summary, error) {
	if window <= 0 {
		return nil, NewValidationError("window", "must be positive")
	}
	cutoff := time.Now().Add(-window)

	var buckets []struct {
		Label string `json:"label"`
		Count int    `json:"count"`
	}
	err := s.client.Classification.Query().
		Where(classification.CreatedAtGTE(cutoff)).
		GroupBy(classification.FieldLabel).
		Aggregate(ent.Count()).
		Scan(ctx, &buckets)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate labels: %w", err)
	}

	summary := &Summary{
		Window: window.String(),
		Labels: make([]LabelCount, 0, len(buckets)),
	}
	for _, b := range buckets {
		summary.Total += b.Count
		summary.Labels = append(summary.Labels, LabelCount{Label: b.Label, Count: b.Count})
	}

	if summary.Total > 0 {
		var agg []struct {
			MeanCompound float64 `json:"mean_compound"`
			MeanLatency  float64 `json:"mean_latency_ms"`
		}
		err = s.client.Classification.Query().
			Where(classification.CreatedAtGTE(cutoff)).
			Aggregate(
				ent.As(ent.Mean(classification.FieldCompound), "mean_compound"),
				ent.As(ent.Mean(classification.FieldLatencyMs), "mean_latency_ms"),
			).
			Scan(ctx, &agg)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate means: %w", err)
		}
		if len(agg) > 0 {
			summary.MeanCompound = agg[0].MeanCompound
			summary.MeanLatencyMS = agg[0].MeanLatency
		}
	}

	var sourceBuckets []struct {
		Source string `json:"verdict_source"`
		Count  int    `json:"count"`
	}
	err = s.client.Classification.Query().
		Where(classification.CreatedAtGTE(cutoff)).
		GroupBy(classification.FieldVerdictSource).
		Aggregate(ent.Count()).
		Scan(ctx, &sourceBuckets)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate verdict sources: %w", err)
	}
	summary.SourceCounts = make(map[string]int, len(sourceBuckets))
	for _, b := range sourceBuckets {
		summary.SourceCounts[b.Source] = b.Count
	}
	summary.FallbackUsed = summary.SourceCounts[string(classification.VerdictSourceFallback)]

	var alertBuckets []struct {
		Kind     string `json:"kind"`
		Severity string `json:"severity"`
		Count    int    `json:"count"`
	}
	err = s.client.Alert.Query().
		Where(entalert.CreatedAtGTE(cutoff)).
		GroupBy(entalert.FieldKind, entalert.FieldSeverity).
		Aggregate(ent.Count()).
		Scan(ctx, &alertBuckets)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate alerts: %w", err)
	}
	summary.Alerts = make([]AlertCount, 0, len(alertBuckets))
	for _, b := range alertBuckets {
		summary.Alerts = append(summary.Alerts, AlertCount{Kind: b.Kind, Severity: b.Severity, Count: b.Count})
	}

	return summary, nil
}
