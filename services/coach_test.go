package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"main/config"
)

func coachConfig(baseURL string) config.CoachConfig {
	return config.CoachConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 2 * time.Second,
	}
}

func TestCoachingMessageSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %s", req.Model)
		}
		if len(req.Messages) != 2 || !strings.Contains(req.Messages[1].Content, "Finish the report") {
			t.Errorf("prompt missing task name: %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  You've got this. \n"}},
			},
		})
	}))
	defer server.Close()

	client := NewCoachClient(coachConfig(server.URL))
	got, err := client.CoachingMessage(context.Background(), "Finish the report", "Q3 Review", []string{"Overdue"})
	if err != nil {
		t.Fatalf("CoachingMessage failed: %v", err)
	}
	if got != "You've got this." {
		t.Errorf("message = %q, want trimmed content", got)
	}
}

func TestCoachingMessageProviderStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewCoachClient(coachConfig(server.URL))
	if _, err := client.CoachingMessage(context.Background(), "Task", "", nil); err == nil {
		t.Error("expected error on non-200 status")
	}
}

func TestCoachingMessageProviderBodyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "model overloaded"},
		})
	}))
	defer server.Close()

	client := NewCoachClient(coachConfig(server.URL))
	_, err := client.CoachingMessage(context.Background(), "Task", "", nil)
	if err == nil || !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("expected provider error surfaced, got %v", err)
	}
}

func TestCoachingMessageEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := NewCoachClient(coachConfig(server.URL))
	if _, err := client.CoachingMessage(context.Background(), "Task", "", nil); err == nil {
		t.Error("expected error on empty choices")
	}
}

func TestCoachingMessageWithoutKey(t *testing.T) {
	client := NewCoachClient(config.CoachConfig{BaseURL: "http://localhost:0", Timeout: time.Second})
	if client.Enabled() {
		t.Error("client without key must report disabled")
	}
	if _, err := client.CoachingMessage(context.Background(), "Task", "", nil); err == nil {
		t.Error("expected error without credentials")
	}
}

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt("Ship it", "Launch", []string{"Overdue", "High priority"})
	for _, want := range []string{"Ship it", "Launch", "Overdue; High priority"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q: %s", want, got)
		}
	}

	bare := buildPrompt("Solo", "", nil)
	if strings.Contains(bare, "project") {
		t.Errorf("prompt must omit the project clause when unset: %s", bare)
	}
}
