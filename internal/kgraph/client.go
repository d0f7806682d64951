// Package kgraph publishes review summaries to an optional knowledge-graph
// service so topics and patterns can be linked across weeks.
package kgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/johns/mindsift/internal/config"
)

// ReviewNode is the payload published for one review session.
type ReviewNode struct {
	SessionID      string   `json:"session_id"`
	Date           string   `json:"date"`
	CoherenceScore float64  `json:"coherence_score"`
	TopicSwitches  int      `json:"topic_switches"`
	FocusScore     int      `json:"focus_score,omitempty"`
	Topics         []string `json:"topics"`
	OverallPattern string   `json:"overall_pattern,omitempty"`
}

type publishResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Publish sends a review node to the graph service.
// Returns ("", nil) if the graph is disabled or the API key is not set.
func Publish(ctx context.Context, cfg config.GraphConfig, node ReviewNode) (string, error) {
	if !cfg.Enabled {
		return "", nil
	}

	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return "", nil
	}

	body, err := json.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("marshal review node: %w", err)
	}

	url := strings.TrimRight(cfg.BaseURL, "/") + "/api/v1/reviews"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("graph API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody)
}

func parseResponse(body []byte) (string, error) {
	var resp publishResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.Error != nil {
		return "", fmt.Errorf("graph API error: %s", resp.Error.Message)
	}

	if resp.ID == "" {
		return "", fmt.Errorf("empty node ID in response")
	}

	return resp.ID, nil
}
