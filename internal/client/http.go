// Package client is a typed HTTP client for the deployment API's worker
// status endpoint.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnexpectedStatus is returned when the endpoint answers with a status
// other than 200 OK.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status code")

// DefaultTimeout bounds a single request.
const DefaultTimeout = 60 * time.Second

// HTTP issues requests against a remote base URL.
type HTTP struct {
	RemoteURL string
	Client    *http.Client
}

// NewHTTP returns an HTTP bound to remoteURL with the default timeout.
func NewHTTP(remoteURL string) *HTTP {
	return &HTTP{
		RemoteURL: remoteURL,
		Client:    &http.Client{Timeout: DefaultTimeout},
	}
}

// Request sends one request to RemoteURL+path and returns the response body.
// Responses other than 200 OK are reported as ErrUnexpectedStatus.
func (h *HTTP) Request(ctx context.Context, method, path string, headers map[string]string, data []byte) ([]byte, error) {
	var reader io.Reader
	if data != nil {
		reader = bytes.NewReader(data)
	}

	url := h.RemoteURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w %d with body %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}
	return body, nil
}
