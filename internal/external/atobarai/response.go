package atobarai

import (
	"encoding/json"
	"fmt"

	"AtobaraiGateway/internal/controller/apperror"
	"AtobaraiGateway/internal/domain/payment"
)

// authoriResultOK is the two-digit authorization code for an accepted
// transaction. Every other code is a refusal.
const authoriResultOK = "00"

type successBody struct {
	Results []transactionResult `json:"results"`
}

type transactionResult struct {
	ShopTransactionID   string `json:"shop_transaction_id"`
	NPTransactionID     string `json:"np_transaction_id"`
	AuthoriResult       string `json:"authori_result"`
	AuthoriRequiredDate string `json:"authori_required_date"`
}

type errorBody struct {
	Errors []errorEntry `json:"errors"`
}

type errorEntry struct {
	Codes []string `json:"codes"`
}

// interpretAuthorization reads a 2xx registration body and decides the
// authorization outcome. Only the result entry matching the originating
// shop transaction id is authoritative; extra or mismatched entries are
// ignored. A body with no matching entry, or a matching entry missing its
// required fields, is a malformed success body.
func interpretAuthorization(body []byte, shopTransactionID string) (payment.AuthorizationResult, error) {
	var parsed successBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return payment.AuthorizationResult{}, fmt.Errorf("%w: %v", apperror.ErrMalformedResponse, err)
	}

	result, ok := matchResult(parsed.Results, shopTransactionID)
	if !ok {
		return payment.AuthorizationResult{}, fmt.Errorf(
			"%w: no result for shop_transaction_id %q", apperror.ErrMalformedResponse, shopTransactionID)
	}

	if result.NPTransactionID == "" || result.AuthoriResult == "" {
		return payment.AuthorizationResult{}, fmt.Errorf(
			"%w: result entry missing required fields", apperror.ErrMalformedResponse)
	}

	status := payment.StatusRefused
	if result.AuthoriResult == authoriResultOK {
		status = payment.StatusAuthorized
	}

	return payment.AuthorizationResult{
		Status:              status,
		NPTransactionID:     result.NPTransactionID,
		AuthoriRequiredDate: result.AuthoriRequiredDate,
	}, nil
}

// interpretConfirmation reads a 2xx cancel/fulfillment body, where a result
// entry for the transaction means the operation took effect.
func interpretConfirmation(body []byte, npTransactionID string) error {
	var parsed successBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrMalformedResponse, err)
	}

	for _, result := range parsed.Results {
		if result.NPTransactionID == npTransactionID {
			return nil
		}
	}

	return fmt.Errorf("%w: no result for np_transaction_id %q", apperror.ErrMalformedResponse, npTransactionID)
}

// interpretErrorBody reads a non-2xx body, flattens every code from every
// error entry in original order and resolves each against the static table.
// The caller never sees raw codes, only resolved messages.
func interpretErrorBody(body []byte) error {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrMalformedResponse, err)
	}

	var codes []string
	for _, entry := range parsed.Errors {
		codes = append(codes, entry.Codes...)
	}

	return &apperror.ProviderError{Messages: resolveErrorCodes(codes)}
}

func matchResult(results []transactionResult, shopTransactionID string) (transactionResult, bool) {
	for _, result := range results {
		if result.ShopTransactionID == shopTransactionID {
			return result, true
		}
	}
	return transactionResult{}, false
}
