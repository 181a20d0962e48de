package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fire_planner_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysisTestService(t *testing.T, handler http.HandlerFunc) *AnalysisService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAnalysisService(config.AnalysisConfig{
		BaseURL: srv.URL,
		APIKey:  "secret-key",
		Timeout: 5 * time.Second,
	})
}

func TestAnalyzeAllSuccess(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotPayload map[string]string

	svc := newAnalysisTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(testReports)
	})

	result, err := svc.AnalyzeAll(context.Background(), map[string]string{"name": "Ada", "age": "24"})
	require.NoError(t, err)
	assert.Equal(t, testReports, *result)

	assert.Equal(t, "/api/analyze-all", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]string{"name": "Ada", "age": "24"}, gotPayload)
}

func TestAnalyzeAllHTTPError(t *testing.T) {
	svc := newAnalysisTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream model unavailable", http.StatusServiceUnavailable)
	})

	_, err := svc.AnalyzeAll(context.Background(), map[string]string{"name": "Ada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
	assert.Contains(t, err.Error(), "upstream model unavailable")
}

func TestAnalyzeAllMalformedBody(t *testing.T) {
	svc := newAnalysisTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := svc.AnalyzeAll(context.Background(), map[string]string{"name": "Ada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed response")
}

func TestAnalyzeAllIncompleteReportSet(t *testing.T) {
	svc := newAnalysisTestService(t, func(w http.ResponseWriter, r *http.Request) {
		// fire missing: a 200 with a hole in it is still a failure.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"career":"c","roi":"r","side_hustle":"s","interests_roadmap":"i"}`))
	})

	_, err := svc.AnalyzeAll(context.Background(), map[string]string{"name": "Ada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete report set")
}

func TestAnalyzeAllTruncatedBody(t *testing.T) {
	svc := newAnalysisTestService(t, func(w http.ResponseWriter, r *http.Request) {
		// Declare more than gets written; the client sees the cut connection
		// while reading the body, which is a transport failure, not a
		// malformed document.
		w.Header().Set("Content-Length", "500")
		w.Write([]byte(`{"career":"c"`))
	})

	_, err := svc.AnalyzeAll(context.Background(), map[string]string{"name": "Ada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading analysis response")
	assert.NotContains(t, err.Error(), "malformed response")
}

func TestAnalyzeAllTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	svc := NewAnalysisService(config.AnalysisConfig{
		BaseURL: srv.URL,
		APIKey:  "secret-key",
		Timeout: time.Second,
	})

	_, err := svc.AnalyzeAll(context.Background(), map[string]string{"name": "Ada"})
	assert.Error(t, err)
}

func TestAnalyzeAllRespectsContextCancellation(t *testing.T) {
	svc := newAnalysisTestService(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AnalyzeAll(ctx, map[string]string{"name": "Ada"})
	assert.ErrorIs(t, err, context.Canceled)
}
