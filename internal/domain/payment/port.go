package payment

import "context"

//go:generate mockgen -source port.go -destination mock_port.go -package payment

// Provider is the outbound port to the NP Atobarai transaction API.
//
// Error contract: a returned error is either apperror.ErrConnection
// (network-level failure), apperror.ErrMalformedResponse (2xx body that
// cannot be interpreted) or *apperror.ProviderError (non-2xx with resolved
// error-code messages). A business refusal is not an error: it comes back
// as an AuthorizationResult with StatusRefused.
type Provider interface {
	RegisterTransaction(ctx context.Context, req RegistrationRequest) (AuthorizationResult, error)
	CancelTransaction(ctx context.Context, npTransactionID string) error
	ReportFulfillment(ctx context.Context, req FulfillmentReport) error
}

// RegistrationRequest is one authorization attempt against the provider.
type RegistrationRequest struct {
	ShopTransactionID string
	Payment           PaymentData
}

// FulfillmentReport notifies the provider that goods were shipped.
type FulfillmentReport struct {
	NPTransactionID     string `json:"np_transaction_id"`
	ShippingCompanyCode string `json:"shipping_company_code"`
	TrackingNumber      string `json:"tracking_number"`
}

// AuthorizationStatus is the terminal state of one authorization attempt.
type AuthorizationStatus string

const (
	StatusAuthorized AuthorizationStatus = "authorized"
	StatusRefused    AuthorizationStatus = "refused"
)

// AuthorizationResult is the interpreted outcome of a successful (2xx)
// registration round-trip.
type AuthorizationResult struct {
	Status          AuthorizationStatus
	NPTransactionID string
	// AuthoriRequiredDate is set when the provider holds the authorization
	// pending review; passed through verbatim.
	AuthoriRequiredDate string
}
