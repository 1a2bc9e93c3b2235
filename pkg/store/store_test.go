package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// Validation runs before any database access, so these tests construct the
// services without a client.

func TestStoreClassificationValidation(t *testing.T) {
	s := &ClassificationService{}

	_, _, err := s.StoreClassification(context.Background(), models.NormalizedItem{}, models.SentimentVerdict{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "text")

	item := models.NormalizedItem{Text: "some text"}
	_, _, err = s.StoreClassification(context.Background(), item, models.SentimentVerdict{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text_hash")
}

func TestStoreAlertValidation(t *testing.T) {
	s := &AlertService{}

	_, err := s.StoreAlert(context.Background(), models.Alert{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = s.StoreAlert(context.Background(), models.Alert{ID: "a1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content_id")

	_, err = s.StoreAlert(context.Background(), models.Alert{ID: "a1", ContentID: "c1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keywords_matched")
}

func TestUpdateAlertStatusRejectsUnknownStatus(t *testing.T) {
	s := &AlertService{}

	_, err := s.UpdateAlertStatus(context.Background(), "a1", models.AlertStatus("archived"), "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSummaryCarriesSourceCounts(t *testing.T) {
	s := Summary{
		Window:       "1h0m0s",
		Total:        5,
		SourceCounts: map[string]int{"model": 3, "fallback": 2},
		FallbackUsed: 2,
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"source_counts":{"fallback":2,"model":3}`)
	assert.Equal(t, s.Total, s.SourceCounts["model"]+s.SourceCounts["fallback"])
}

func TestSummarizeRejectsNonPositiveWindow(t *testing.T) {
	s := &ClassificationService{}

	_, err := s.Summarize(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
