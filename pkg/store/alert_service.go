package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ohsono/sentiwatch/ent"
	entalert "github.com/ohsono/sentiwatch/ent/alert"
	"github.com/ohsono/sentiwatch/pkg/models"
)

// AlertService persists and manages keyword-rule alerts.
type AlertService struct {
	client *ent.Client
}

// NewAlertService creates a new AlertService.
func NewAlertService(client *ent.Client) *AlertService {
	if client == nil {
		panic("NewAlertService: client must not be nil")
	}
	return &AlertService{client: client}
}

// StoreAlert persists one alert raised against a stored classification.
func (s *AlertService) StoreAlert(ctx context.Context, a models.Alert) (*ent.Alert, error) {
	if a.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if a.ContentID == "" {
		return nil, NewValidationError("content_id", "required")
	}
	if len(a.KeywordsMatched) == 0 {
		return nil, NewValidationError("keywords_matched", "at least one keyword required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.Alert.Create().
		SetID(a.ID).
		SetContentID(a.ContentID).
		SetKind(entalert.Kind(a.Kind)).
		SetSeverity(entalert.Severity(a.Severity)).
		SetKeywordsMatched(a.KeywordsMatched).
		SetStatus(entalert.StatusActive).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to store alert: %w", err)
	}
	return row, nil
}

// GetAlert retrieves one alert by ID.
func (s *AlertService) GetAlert(ctx context.Context, id string) (*ent.Alert, error) {
	row, err := s.client.Alert.Query().
		Where(entalert.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return row, nil
}

// UpdateAlertStatus transitions an alert to a new review status, optionally
// recording a reviewer note.
func (s *AlertService) UpdateAlertStatus(ctx context.Context, id string, status models.AlertStatus, note string) (*ent.Alert, error) {
	if !models.ValidAlertStatus(status) {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status '%s'", status))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	update := s.client.Alert.UpdateOneID(id).
		SetStatus(entalert.Status(status))
	if note != "" {
		update = update.SetNote(note)
	}

	row, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update alert status: %w", err)
	}
	return row, nil
}

// AlertFilters narrows ListAlerts results.
type AlertFilters struct {
	Status   string
	Kind     string
	Severity string
	Since    *time.Time
	Limit    int
	Offset   int
}

// AlertList is a paginated page of alerts.
type AlertList struct {
	Items      []*ent.Alert `json:"items"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// ListAlerts returns alerts, newest first.
func (s *AlertService) ListAlerts(ctx context.Context, filters AlertFilters) (*AlertList, error) {
	query := s.client.Alert.Query()

	if filters.Status != "" {
		query = query.Where(entalert.StatusEQ(entalert.Status(filters.Status)))
	}
	if filters.Kind != "" {
		query = query.Where(entalert.KindEQ(entalert.Kind(filters.Kind)))
	}
	if filters.Severity != "" {
		query = query.Where(entalert.SeverityEQ(entalert.Severity(filters.Severity)))
	}
	if filters.Since != nil {
		query = query.Where(entalert.CreatedAtGTE(*filters.Since))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count alerts: %w", err)
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
		Order(ent.Desc(entalert.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return &AlertList{
		Items:      rows,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
