// Package model wraps the external HTTP sentiment-model service behind a
// single Infer call with a typed error taxonomy. Retry and fallback are the
// failsafe dispatcher's concern; this client performs exactly one request.
package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// DefaultTimeout bounds a single inference call when the caller's context
// carries no earlier deadline.
const DefaultTimeout = 30 * time.Second

// supportedModels enumerates the model names the service accepts. The empty
// name selects the service default.
var supportedModels = map[string]bool{
	"":           true,
	"distilbert": true,
	"roberta":    true,
	"vader":      true,
}

// Client calls the model service's predict endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// New creates a model client. baseURL may be empty, in which case every call
// fails with a network-kind error and the dispatcher serves the fallback.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}
}

// Enabled reports whether a service endpoint is configured.
func (c *Client) Enabled() bool { return c.baseURL != "" }

type predictRequest struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

type predictResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	ModelUsed  string  `json:"model_used"`
}

// Infer classifies text via the remote service. On success the verdict is
// tagged Source=model with compound derived from label and confidence; on
// failure the returned error is always an *InferError.
func (c *Client) Infer(ctx context.Context, text, modelName string) (models.SentimentVerdict, error) {
	var zero models.SentimentVerdict

	if !supportedModels[modelName] {
		return zero, &InferError{Kind: ErrKindValidation, Err: fmt.Errorf("unsupported model %q", modelName)}
	}
	if !c.Enabled() {
		return zero, &InferError{Kind: ErrKindNetwork, Err: errors.New("model service not configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(predictRequest{Text: text, Model: modelName})
	if err != nil {
		return zero, &InferError{Kind: ErrKindValidation, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return zero, &InferError{Kind: ErrKindNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, &InferError{Kind: ErrKindTimeout, Err: err}
		}
		return zero, &InferError{Kind: ErrKindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &InferError{
			Kind:   ErrKindService,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("model service returned HTTP %d", resp.StatusCode),
		}
	}

	var pr predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return zero, &InferError{Kind: ErrKindDecode, Err: err}
	}

	label := models.SentimentLabel(pr.Label)
	switch label {
	case models.LabelPositive, models.LabelNegative, models.LabelNeutral:
	default:
		return zero, &InferError{Kind: ErrKindDecode, Err: fmt.Errorf("unknown label %q in response", pr.Label)}
	}

	return models.SentimentVerdict{
		Label:      label,
		Confidence: pr.Confidence,
		Compound:   deriveCompound(label, pr.Confidence),
		Model:      pr.ModelUsed,
		Source:     models.SourceModel,
		LatencyMS:  time.Since(start).Milliseconds(),
	}, nil
}

// deriveCompound maps a model verdict onto the [-1, 1] compound scale:
// +confidence for positive, -confidence for negative, 0 for neutral.
func deriveCompound(label models.SentimentLabel, confidence float64) float64 {
	switch label {
	case models.LabelPositive:
		return confidence
	case models.LabelNegative:
		return -confidence
	default:
		return 0
	}
}
