package health

import (
	"context"
	"fmt"
	"net/http"
)

// ProviderChecker checks reachability of the NP Atobarai API endpoint.
// Any HTTP response counts as reachable; only transport-level failures
// mark the provider as down.
type ProviderChecker struct {
	baseURL string
	client  *http.Client
}

// NewProviderChecker creates a new provider reachability checker.
func NewProviderChecker(baseURL string, client *http.Client) *ProviderChecker {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &ProviderChecker{baseURL: baseURL, client: client}
}

// Name returns "np_atobarai".
func (c *ProviderChecker) Name() string {
	return "np_atobarai"
}

// Check issues a HEAD request against the provider base URL.
func (c *ProviderChecker) Check(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return Result{Status: StatusDown, Message: fmt.Sprintf("build request: %v", err)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	return Result{Status: StatusUp}
}
