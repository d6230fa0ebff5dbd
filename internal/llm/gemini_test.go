package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiClient_ExtractMenu(t *testing.T) {
	var sent map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/files/menu.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png; charset=binary")
		w.Write([]byte("PNGDATA"))
	})
	mux.HandleFunc("/models/gemini-test:generateContent", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "g-key" {
			t.Errorf("api key not passed in header")
		}
		if strings.Contains(r.URL.String(), "g-key") {
			t.Errorf("api key leaked into url %s", r.URL)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &sent)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"items\":[{\"name\":\"Bulgogi\"}]}"}]}}]}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewGeminiClient("g-key", "gemini-test", srv.URL)

	out, err := client.ExtractMenu(context.Background(), srv.URL+"/files/menu.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Bulgogi") {
		t.Fatalf("unexpected output %q", out)
	}

	contents := sent["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	inline := parts[1].(map[string]any)["inline_data"].(map[string]any)

	if inline["mime_type"] != "image/png" {
		t.Errorf("expected image/png, got %v", inline["mime_type"])
	}
	if inline["data"] != base64.StdEncoding.EncodeToString([]byte("PNGDATA")) {
		t.Errorf("image bytes not inlined")
	}
}

func TestGeminiClient_ServiceError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/files/menu.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("PNGDATA"))
	})
	mux.HandleFunc("/models/gemini-test:generateContent", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := NewGeminiClient("g-key", "gemini-test", srv.URL).ExtractMenu(context.Background(), srv.URL+"/files/menu.png")

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 ServiceError, got %v", err)
	}
}

func TestGeminiClient_TransportErrorOmitsKey(t *testing.T) {
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("PNGDATA"))
	}))
	defer files.Close()

	// nothing listens on the model endpoint
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	_, err := NewGeminiClient("SECRET-GEMINI-KEY", "gemini-test", deadURL).
		ExtractMenu(context.Background(), files.URL+"/menu.png")
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if strings.Contains(err.Error(), "SECRET-GEMINI-KEY") {
		t.Fatalf("api key leaked into error: %v", err)
	}
}

func TestGeminiClient_RejectsOversizedFile(t *testing.T) {
	called := false

	mux := http.NewServeMux()
	mux.HandleFunc("/files/menu.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(make([]byte, MaxMenuFileBytes+10))
	})
	mux.HandleFunc("/models/gemini-test:generateContent", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := NewGeminiClient("g-key", "gemini-test", srv.URL).ExtractMenu(context.Background(), srv.URL+"/files/menu.png")
	if err == nil || !strings.Contains(err.Error(), "larger than") {
		t.Fatalf("expected size error, got %v", err)
	}
	if called {
		t.Fatal("model should not be called for an oversized file")
	}
}
