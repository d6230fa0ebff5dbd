package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dishly/internal/extract"
)

// LocalInvoker runs extraction in-process.
type LocalInvoker struct {
	Extractor interface {
		Extract(ctx context.Context, req extract.Request) (*extract.Result, error)
	}
}

func (l LocalInvoker) Invoke(ctx context.Context, req extract.Request) (*extract.Result, error) {
	return l.Extractor.Extract(ctx, req)
}

// InvokeError is a non-2xx answer of the extraction endpoint.
type InvokeError struct {
	Status  int
	Message string
	Details string
}

func (e *InvokeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("menu-scraper %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("menu-scraper %d: %s", e.Status, e.Message)
}

// HTTPInvoker posts to a remote extraction endpoint.
type HTTPInvoker struct {
	endpoint string
	deviceID string
	token    string
	client   *http.Client
}

func NewHTTPInvoker(endpoint string) *HTTPInvoker {
	return &HTTPInvoker{
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// WithIdentity attaches the caller's device id and, when set, bearer token.
func (h *HTTPInvoker) WithIdentity(deviceID, token string) *HTTPInvoker {
	copied := *h
	copied.deviceID = deviceID
	copied.token = token
	return &copied
}

func (h *HTTPInvoker) Invoke(ctx context.Context, req extract.Request) (*extract.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if h.deviceID != "" {
		httpReq.Header.Set("X-Device-ID", h.deviceID)
	}
	if h.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("invoke menu-scraper: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		_ = json.Unmarshal(raw, &e)
		if e.Error == "" {
			e.Error = string(raw)
		}
		return nil, &InvokeError{Status: resp.StatusCode, Message: e.Error, Details: e.Details}
	}

	var result extract.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode menu-scraper result: %w", err)
	}

	return &result, nil
}
