package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeS3 answers path-style PUT and HEAD the way R2 does for conditional
// writes.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		if _, exists := f.objects[r.URL.Path]; exists && r.Header.Get("If-None-Match") == "*" {
			w.WriteHeader(http.StatusPreconditionFailed)
			return
		}
		data, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = data
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		if _, exists := f.objects[r.URL.Path]; !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestR2(t *testing.T) (*R2Client, *fakeS3, string) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))

	fake := &fakeS3{objects: make(map[string][]byte)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := NewR2Client(context.Background(), R2Config{
		Endpoint:  srv.URL,
		AccessKey: "ak",
		SecretKey: "sk",
	})
	if err != nil {
		t.Fatalf("NewR2Client: %v", err)
	}
	return client, fake, srv.URL
}

func TestR2Client_PutIfAbsent(t *testing.T) {
	client, fake, _ := newTestR2(t)
	ctx := context.Background()

	err := client.PutIfAbsent(ctx, MenuBucket, "korea-garden/menu.png", "image/png", strings.NewReader("png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(fake.objects["/menus/korea-garden/menu.png"]) != "png" {
		t.Fatalf("object not stored: %v", fake.objects)
	}

	err = client.PutIfAbsent(ctx, MenuBucket, "korea-garden/menu.png", "image/png", strings.NewReader("other"))
	if !errors.Is(err, ErrDuplicatePath) {
		t.Fatalf("expected ErrDuplicatePath, got %v", err)
	}
}

func TestR2Client_SignedURL(t *testing.T) {
	client, fake, base := newTestR2(t)
	ctx := context.Background()

	fake.objects["/menus/korea-garden/menu.png"] = []byte("png")

	url, err := client.SignedURL(ctx, MenuBucket, "korea-garden/menu.png", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, base+"/menus/korea-garden/menu.png?") {
		t.Fatalf("unexpected url %s", url)
	}
	if !strings.Contains(url, "X-Amz-Expires=3600") {
		t.Fatalf("expiry missing from %s", url)
	}

	_, err = client.SignedURL(ctx, MenuBucket, "korea-garden/missing.png", time.Hour)
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}
