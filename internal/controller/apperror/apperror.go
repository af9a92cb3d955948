package apperror

import (
	"errors"
	"strings"
)

// ErrConnection signals a network-level failure talking to NP Atobarai:
// DNS, timeout, TLS, or a non-2xx response without a readable error body.
var ErrConnection = errors.New("cannot connect to NP Atobarai")

// ErrMalformedResponse signals a 2xx response whose body could not be
// interpreted as a transaction result.
var ErrMalformedResponse = errors.New("malformed NP Atobarai response")

var ErrMissingNPTransactionID = errors.New("missing np_transaction_id")

// ProviderError carries the human-readable messages resolved from the error
// codes of a non-2xx NP Atobarai response. Message order follows code order
// in the response; repeated codes produce repeated messages.
type ProviderError struct {
	Messages []string
}

func (e *ProviderError) Error() string {
	return strings.Join(e.Messages, " ")
}
