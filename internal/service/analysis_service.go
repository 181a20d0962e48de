package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fire_planner_backend/internal/config"
	"fire_planner_backend/pkg/monitoring"
	"fmt"
	"io"
	"net/http"
)

// AnalysisService is the client for the external AI analysis backend.
type AnalysisService struct {
	config config.AnalysisConfig
	client *http.Client
}

func NewAnalysisService(cfg config.AnalysisConfig) *AnalysisService {
	return &AnalysisService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// AnalysisResult is the fixed report set returned by the analysis backend.
type AnalysisResult struct {
	Career           string `json:"career"`
	ROI              string `json:"roi"`
	Fire             string `json:"fire"`
	SideHustle       string `json:"side_hustle"`
	InterestsRoadmap string `json:"interests_roadmap"`
}

// AnalyzeAll sends the resolved submission payload and returns the five
// reports. Any non-2xx status, transport error, or malformed/incomplete body
// is a hard failure; the caller decides retry semantics.
func (s *AnalysisService) AnalyzeAll(ctx context.Context, payload map[string]string) (*AnalysisResult, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/api/analyze-all", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		monitoring.AnalysisRequests.WithLabelValues("transport_error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		monitoring.AnalysisRequests.WithLabelValues("transport_error").Inc()
		return nil, fmt.Errorf("reading analysis response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		monitoring.AnalysisRequests.WithLabelValues("http_error").Inc()
		return nil, fmt.Errorf("analysis API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result AnalysisResult
	if err := json.Unmarshal(body, &result); err != nil {
		monitoring.AnalysisRequests.WithLabelValues("bad_response").Inc()
		return nil, fmt.Errorf("analysis API returned malformed response: %w", err)
	}

	if result.Career == "" || result.ROI == "" || result.Fire == "" || result.SideHustle == "" || result.InterestsRoadmap == "" {
		monitoring.AnalysisRequests.WithLabelValues("bad_response").Inc()
		return nil, fmt.Errorf("analysis API returned an incomplete report set")
	}

	monitoring.AnalysisRequests.WithLabelValues("success").Inc()
	return &result, nil
}
