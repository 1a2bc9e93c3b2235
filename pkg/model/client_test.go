package model

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/models"
)

func TestInferSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label":"positive","confidence":0.94,"model_used":"distilbert"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	v, err := c.Infer(context.Background(), "UCLA is amazing for AI research!", "")
	require.NoError(t, err)

	assert.Equal(t, models.LabelPositive, v.Label)
	assert.Equal(t, 0.94, v.Confidence)
	assert.InDelta(t, 0.94, v.Compound, 1e-9)
	assert.Equal(t, "distilbert", v.Model)
	assert.Equal(t, models.SourceModel, v.Source)
}

func TestInferNegativeCompoundDerivation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"label":"negative","confidence":0.8,"model_used":"roberta"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	v, err := c.Infer(context.Background(), "this is bad", "roberta")
	require.NoError(t, err)
	assert.InDelta(t, -0.8, v.Compound, 1e-9)
}

func TestInferServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Infer(context.Background(), "text", "")

	var ie *InferError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrKindService, ie.Kind)
	assert.Equal(t, http.StatusBadGateway, ie.Status)
	assert.False(t, ie.Permanent())
}

func TestInfer4xxIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Infer(context.Background(), "text", "")

	var ie *InferError
	require.ErrorAs(t, err, &ie)
	assert.True(t, ie.Permanent())
}

func TestInferDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Infer(context.Background(), "text", "")

	var ie *InferError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrKindDecode, ie.Kind)
}

func TestInferUnknownLabelIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"label":"mixed","confidence":0.5,"model_used":"distilbert"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Infer(context.Background(), "text", "")

	var ie *InferError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrKindDecode, ie.Kind)
}

func TestInferNetworkError(t *testing.T) {
	// Closed server to force a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, time.Second)
	_, err := c.Infer(context.Background(), "text", "")

	var ie *InferError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrKindNetwork, ie.Kind)
}

func TestInferUnsupportedModel(t *testing.T) {
	c := New("http://localhost:1", time.Second)
	_, err := c.Infer(context.Background(), "text", "gpt-17")

	var ie *InferError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrKindValidation, ie.Kind)
	assert.True(t, ie.Permanent())
}

func TestInferDisabledClient(t *testing.T) {
	c := New("", time.Second)
	assert.False(t, c.Enabled())

	_, err := c.Infer(context.Background(), "text", "")
	var ie *InferError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrKindNetwork, ie.Kind)
}

func TestInferTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New(srv.URL, 50*time.Millisecond)
	_, err := c.Infer(context.Background(), "text", "")

	var ie *InferError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, []ErrorKind{ErrKindTimeout, ErrKindNetwork}, ie.Kind)
}
