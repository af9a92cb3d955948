package atobarai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"AtobaraiGateway/internal/controller/apperror"
)

// RawResponse is one completed provider round-trip: status code plus body.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// Ok reports whether the status code is in the 2xx success range.
func (r *RawResponse) Ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport performs a single synchronous call against the provider.
//
// A returned error always wraps apperror.ErrConnection and means the
// round-trip itself failed: network error, or a non-2xx status without a
// readable JSON body. A non-2xx status WITH a JSON body is not an error
// here; it is a provider error body for the caller to interpret.
type Transport interface {
	Send(ctx context.Context, method, path string, body any) (*RawResponse, error)
}

// Credentials identify the merchant against the NP Atobarai API.
type Credentials struct {
	MerchantCode string
	SPCode       string
	TerminalID   string
}

// HTTPTransport implements Transport over net/http.
type HTTPTransport struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
}

func NewHTTPTransport(baseURL string, creds Credentials, httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &HTTPTransport{
		baseURL:    baseURL,
		creds:      creds,
		httpClient: httpClient,
	}
}

func (t *HTTPTransport) Send(ctx context.Context, method, path string, body any) (*RawResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-NP-Terminal-Id", t.creds.TerminalID)
	httpReq.SetBasicAuth(t.creds.MerchantCode, t.creds.SPCode)

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", apperror.ErrConnection, err)
	}

	// A failure status without a readable error body gives the caller
	// nothing to interpret, so it degrades to a connectivity failure.
	if !statusOk(resp.StatusCode) && !json.Valid(raw) {
		return nil, fmt.Errorf("%w: status %d without a parseable body", apperror.ErrConnection, resp.StatusCode)
	}

	return &RawResponse{StatusCode: resp.StatusCode, Body: raw}, nil
}

func statusOk(code int) bool {
	return code >= 200 && code < 300
}
