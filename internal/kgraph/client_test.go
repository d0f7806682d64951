package kgraph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/johns/mindsift/internal/config"
)

func testNode() ReviewNode {
	return ReviewNode{
		SessionID:      "review-abc",
		Date:           "2026-03-01",
		CoherenceScore: 0.73,
		TopicSwitches:  3,
		FocusScore:     45,
		Topics:         []string{"work", "personal", "financial"},
		OverallPattern: "Strong alignment between planning and execution patterns",
	}
}

func TestPublish_Disabled(t *testing.T) {
	cfg := config.GraphConfig{Enabled: false}
	id, err := Publish(context.Background(), cfg, testNode())
	if id != "" || err != nil {
		t.Errorf("disabled: got id=%q, err=%v", id, err)
	}
}

func TestPublish_NoAPIKey(t *testing.T) {
	cfg := config.GraphConfig{
		Enabled:   true,
		APIKeyEnv: "MINDSIFT_TEST_NONEXISTENT_KEY_12345",
	}
	id, err := Publish(context.Background(), cfg, testNode())
	if id != "" || err != nil {
		t.Errorf("no key: got id=%q, err=%v", id, err)
	}
}

func TestPublish_MockServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/v1/reviews" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key-123" {
			t.Errorf("auth: got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content-type: got %q", r.Header.Get("Content-Type"))
		}

		var node ReviewNode
		if err := json.NewDecoder(r.Body).Decode(&node); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if node.SessionID != "review-abc" {
			t.Errorf("session_id: got %q", node.SessionID)
		}
		if len(node.Topics) != 3 {
			t.Errorf("topics: got %v", node.Topics)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(publishResponse{ID: "node-42"})
	}))
	defer server.Close()

	t.Setenv("MINDSIFT_TEST_KEY", "test-key-123")

	cfg := config.GraphConfig{
		Enabled:   true,
		APIKeyEnv: "MINDSIFT_TEST_KEY",
		BaseURL:   server.URL,
	}

	id, err := Publish(context.Background(), cfg, testNode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "node-42" {
		t.Errorf("id: got %q, want node-42", id)
	}
}

func TestPublish_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	t.Setenv("MINDSIFT_TEST_KEY_TIMEOUT", "test-key")

	cfg := config.GraphConfig{
		Enabled:   true,
		APIKeyEnv: "MINDSIFT_TEST_KEY_TIMEOUT",
		BaseURL:   server.URL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Publish(ctx, cfg, testNode())
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestPublish_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"graph store offline"}}`))
	}))
	defer server.Close()

	t.Setenv("MINDSIFT_TEST_KEY_503", "test-key")

	cfg := config.GraphConfig{
		Enabled:   true,
		APIKeyEnv: "MINDSIFT_TEST_KEY_503",
		BaseURL:   server.URL,
	}

	_, err := Publish(context.Background(), cfg, testNode())
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error should mention status code: %v", err)
	}
}

func TestParseResponse_Error(t *testing.T) {
	_, err := parseResponse([]byte(`{"error":{"message":"bad node"}}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "bad node") {
		t.Errorf("wrong error: %v", err)
	}
}

func TestParseResponse_EmptyID(t *testing.T) {
	_, err := parseResponse([]byte(`{}`))
	if err == nil {
		t.Fatal("expected error for empty ID")
	}
}
