package sampler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the performance ingestion endpoint. The base URL is fixed
// at construction; there is no mutable process-wide endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type PerformancePayload struct {
	PlayerID       int64    `json:"player_id"`
	SessionID      *int64   `json:"session_id,omitempty"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	Speed          *float64 `json:"speed,omitempty"`
	Acceleration   *float64 `json:"acceleration,omitempty"`
	Deceleration   *float64 `json:"deceleration,omitempty"`
	CadenceSPM     *float64 `json:"cadence_spm,omitempty"`
	HeartRate      *float64 `json:"heart_rate,omitempty"`
}

// RecordPerformance posts one sample and returns the generated identifier.
// A transport failure and a server-side error body surface as distinct
// error messages so the UI can tell connectivity from rejection.
func (c *Client) RecordPerformance(ctx context.Context, payload PerformancePayload) (int64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/performance",
		bytes.NewReader(body),
	)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("performance push request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("performance push read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error != "" {
			return 0, fmt.Errorf("performance push rejected: %s", errBody.Error)
		}
		return 0, fmt.Errorf("performance push rejected: %s", strings.TrimSpace(string(raw)))
	}

	var result struct {
		Success       bool  `json:"success"`
		PerformanceID int64 `json:"performanceId"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return 0, fmt.Errorf("performance push decode response: %w", err)
	}
	return result.PerformanceID, nil
}
