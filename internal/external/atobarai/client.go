// Package atobarai is the NP Atobarai deferred-payment provider adapter:
// it builds transaction payloads from domain payment data, performs the
// synchronous API calls and interprets the provider's responses.
package atobarai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"AtobaraiGateway/internal/domain/payment"
	"AtobaraiGateway/pkg/metrics"
)

const (
	registerPath    = "/transactions"
	cancelPath      = "/transactions/cancel"
	fulfillmentPath = "/shipments"
)

// Client implements payment.Provider against the NP Atobarai API.
type Client struct {
	transport Transport
}

func NewClient(transport Transport) *Client {
	return &Client{transport: transport}
}

var _ payment.Provider = (*Client)(nil)

// RegisterTransaction submits one authorization attempt.
func (c *Client) RegisterTransaction(ctx context.Context, req payment.RegistrationRequest) (payment.AuthorizationResult, error) {
	payload := buildRegistrationPayload(req)

	resp, err := c.send(ctx, "register", http.MethodPost, registerPath, payload)
	if err != nil {
		return payment.AuthorizationResult{}, fmt.Errorf("register transaction: %w", err)
	}

	if !resp.Ok() {
		return payment.AuthorizationResult{}, interpretErrorBody(resp.Body)
	}

	return interpretAuthorization(resp.Body, req.ShopTransactionID)
}

// CancelTransaction voids a previously registered transaction.
func (c *Client) CancelTransaction(ctx context.Context, npTransactionID string) error {
	payload := buildCancelPayload(npTransactionID)

	resp, err := c.send(ctx, "cancel", http.MethodPost, cancelPath, payload)
	if err != nil {
		return fmt.Errorf("cancel transaction: %w", err)
	}

	if !resp.Ok() {
		return interpretErrorBody(resp.Body)
	}

	return interpretConfirmation(resp.Body, npTransactionID)
}

// ReportFulfillment reports the shipment backing a transaction.
func (c *Client) ReportFulfillment(ctx context.Context, report payment.FulfillmentReport) error {
	payload := buildFulfillmentPayload(report)

	resp, err := c.send(ctx, "fulfillment", http.MethodPost, fulfillmentPath, payload)
	if err != nil {
		return fmt.Errorf("report fulfillment: %w", err)
	}

	if !resp.Ok() {
		return interpretErrorBody(resp.Body)
	}

	return interpretConfirmation(resp.Body, report.NPTransactionID)
}

// send wraps the transport call with per-operation metrics.
func (c *Client) send(ctx context.Context, operation, method, path string, body any) (*RawResponse, error) {
	start := time.Now()

	resp, err := c.transport.Send(ctx, method, path, body)

	metrics.ProviderRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	switch {
	case err != nil:
		metrics.ProviderRequestsTotal.WithLabelValues(operation, "transport_error").Inc()
	case resp.Ok():
		metrics.ProviderRequestsTotal.WithLabelValues(operation, "ok").Inc()
	default:
		metrics.ProviderRequestsTotal.WithLabelValues(operation, "provider_error").Inc()
	}

	return resp, err
}
