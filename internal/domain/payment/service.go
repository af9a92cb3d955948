package payment

import (
	"context"
	"errors"

	"AtobaraiGateway/internal/controller/apperror"
	"AtobaraiGateway/pkg/logger"
)

// User-facing texts for failures that carry no provider error codes.
const (
	MsgCannotConnect     = "Cannot connect to NP Atobarai."
	MsgUnexpectedPayload = "NP Atobarai returned an unexpected response."
)

type PaymentService struct {
	provider Provider
	l        *logger.Logger
}

func NewPaymentService(provider Provider, l *logger.Logger) *PaymentService {
	return &PaymentService{provider: provider, l: l}
}

// ProcessPayment runs one synchronous authorization attempt and normalizes
// the outcome. It never returns an error: every failure mode, including
// transport failures, is folded into the GatewayResponse.
func (s *PaymentService) ProcessPayment(ctx context.Context, data PaymentData) GatewayResponse {
	req := RegistrationRequest{
		ShopTransactionID: data.PaymentID,
		Payment:           data,
	}

	result, err := s.provider.RegisterTransaction(ctx, req)
	if err != nil {
		s.l.Error("register transaction failed: payment_id=%s err=%v", data.PaymentID, err)
		return s.failureResponse(err)
	}

	if result.Status == StatusAuthorized {
		s.l.Info("transaction authorized: payment_id=%s np_transaction_id=%s",
			data.PaymentID, result.NPTransactionID)
		return GatewayResponse{
			Success:         true,
			NPTransactionID: result.NPTransactionID,
		}
	}

	// Refusal is a business outcome, not an error: the provider returned no
	// message text, but its transaction id is kept for reconciliation.
	s.l.Info("transaction refused: payment_id=%s np_transaction_id=%s",
		data.PaymentID, result.NPTransactionID)
	return GatewayResponse{
		Success:         false,
		NPTransactionID: result.NPTransactionID,
	}
}

// VoidPayment cancels a previously registered transaction.
func (s *PaymentService) VoidPayment(ctx context.Context, npTransactionID string) GatewayResponse {
	if npTransactionID == "" {
		return GatewayResponse{Success: false, Error: apperror.ErrMissingNPTransactionID.Error()}
	}

	if err := s.provider.CancelTransaction(ctx, npTransactionID); err != nil {
		s.l.Error("cancel transaction failed: np_transaction_id=%s err=%v", npTransactionID, err)
		return s.failureResponse(err)
	}

	return GatewayResponse{Success: true, NPTransactionID: npTransactionID}
}

// ReportFulfillment reports shipment of the goods backing a transaction,
// which starts the provider's collection flow.
func (s *PaymentService) ReportFulfillment(ctx context.Context, report FulfillmentReport) GatewayResponse {
	if report.NPTransactionID == "" {
		return GatewayResponse{Success: false, Error: apperror.ErrMissingNPTransactionID.Error()}
	}

	if err := s.provider.ReportFulfillment(ctx, report); err != nil {
		s.l.Error("report fulfillment failed: np_transaction_id=%s err=%v", report.NPTransactionID, err)
		return s.failureResponse(err)
	}

	return GatewayResponse{Success: true, NPTransactionID: report.NPTransactionID}
}

// failureResponse maps a provider-port error to a normalized failure.
// Provider-code-derived messages keep their resolution order; transport and
// malformed-body failures get a generic text instead.
func (s *PaymentService) failureResponse(err error) GatewayResponse {
	var providerErr *apperror.ProviderError

	switch {
	case errors.As(err, &providerErr):
		return GatewayResponse{Success: false, Error: providerErr.Error()}
	case errors.Is(err, apperror.ErrConnection):
		return GatewayResponse{Success: false, Error: MsgCannotConnect}
	case errors.Is(err, apperror.ErrMalformedResponse):
		return GatewayResponse{Success: false, Error: MsgUnexpectedPayload}
	default:
		return GatewayResponse{Success: false, Error: err.Error()}
	}
}
