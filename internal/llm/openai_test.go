package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIClient_ExtractMenu(t *testing.T) {
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("missing bearer token")
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"items\":[]}"}}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("sk-test", "", srv.URL)

	out, err := client.ExtractMenu(context.Background(), "https://files.example/menu.png?sig=1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"items":[]}` {
		t.Fatalf("unexpected content %q", out)
	}

	if got["model"] != DefaultOpenAIModel {
		t.Errorf("expected default model, got %v", got["model"])
	}
	if got["temperature"] != 0.2 {
		t.Errorf("expected temperature 0.2, got %v", got["temperature"])
	}

	messages := got["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected system and user message, got %d", len(messages))
	}

	user := messages[1].(map[string]any)
	parts := user["content"].([]any)
	image := parts[1].(map[string]any)
	if image["type"] != "image_url" {
		t.Fatalf("expected image_url part, got %v", image["type"])
	}
	if image["image_url"].(map[string]any)["url"] != "https://files.example/menu.png?sig=1" {
		t.Fatalf("image url not forwarded: %v", image["image_url"])
	}
}

func TestOpenAIClient_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("sk-test", "gpt-4o", srv.URL)

	_, err := client.ExtractMenu(context.Background(), "https://files.example/menu.png")

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.Status != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", svcErr.Status)
	}
	if svcErr.Body != `{"error":"rate limited"}` {
		t.Errorf("unexpected body %q", svcErr.Body)
	}
}

func TestOpenAIClient_MissingKey(t *testing.T) {
	client := NewOpenAIClient("", "", "http://127.0.0.1:0")

	if _, err := client.ExtractMenu(context.Background(), "x"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	out, err := NewOpenAIClient("k", "", srv.URL).ExtractMenu(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty content, got %q", out)
	}
}
