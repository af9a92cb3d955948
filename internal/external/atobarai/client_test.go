package atobarai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"AtobaraiGateway/internal/controller/apperror"
	"AtobaraiGateway/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials() Credentials {
	return Credentials{
		MerchantCode: "merchant-001",
		SPCode:       "sp-001",
		TerminalID:   "terminal-001",
	}
}

func newTestClient(serverURL string) *Client {
	return NewClient(NewHTTPTransport(serverURL, testCredentials(), nil))
}

func TestClient_RegisterTransaction(t *testing.T) {
	t.Run("authorized transaction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transactions", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "terminal-001", r.Header.Get("X-NP-Terminal-Id"))

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "merchant-001", user)
			assert.Equal(t, "sp-001", pass)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			transactions := body["transactions"].([]any)
			require.Len(t, transactions, 1)
			tx := transactions[0].(map[string]any)
			assert.Equal(t, "abc1234567890", tx["shop_transaction_id"])
			assert.Len(t, tx["goods"], 3)

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{
				"results": [{
					"shop_transaction_id": "abc1234567890",
					"np_transaction_id": "18121200001",
					"authori_result": "00",
					"authori_required_date": "2018-12-12T12:00:00+09:00"
				}]
			}`))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).RegisterTransaction(context.Background(), registrationFixture(t))

		require.NoError(t, err)
		assert.Equal(t, payment.StatusAuthorized, result.Status)
		assert.Equal(t, "18121200001", result.NPTransactionID)
	})

	t.Run("refused transaction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{
				"results": [{
					"shop_transaction_id": "abc1234567890",
					"np_transaction_id": "18121200001",
					"authori_result": "20"
				}]
			}`))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).RegisterTransaction(context.Background(), registrationFixture(t))

		require.NoError(t, err)
		assert.Equal(t, payment.StatusRefused, result.Status)
		assert.Equal(t, "18121200001", result.NPTransactionID)
	})

	t.Run("provider error body resolves all codes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors": [{"codes": ["E0100059", "E0100083"]}]}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).RegisterTransaction(context.Background(), registrationFixture(t))

		var providerErr *apperror.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Contains(t, providerErr.Error(), "Please check if the customer’s ZIP code and address match.")
		assert.Contains(t, providerErr.Error(), "Please make sure the delivery destination (ZIP code) and address match.")
	})

	t.Run("error body never yields success even with result-shaped fields", func(t *testing.T) {
		// given: a non-2xx body smuggling in an authori_result "00"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{
				"results": [{"shop_transaction_id": "abc1234567890", "np_transaction_id": "x", "authori_result": "00"}],
				"errors": [{"codes": ["EPRO0102"]}]
			}`))
		}))
		defer server.Close()

		// when
		_, err := newTestClient(server.URL).RegisterTransaction(context.Background(), registrationFixture(t))

		// then: parsing path is selected purely by HTTP status range
		var providerErr *apperror.ProviderError
		require.ErrorAs(t, err, &providerErr)
	})

	t.Run("connection failure maps to ErrConnection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestClient(server.URL).RegisterTransaction(context.Background(), registrationFixture(t))

		assert.ErrorIs(t, err, apperror.ErrConnection)
	})

	t.Run("non-2xx without parseable body maps to ErrConnection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).RegisterTransaction(context.Background(), registrationFixture(t))

		assert.ErrorIs(t, err, apperror.ErrConnection)
	})

	t.Run("2xx with unparsable body maps to ErrMalformedResponse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`not json at all`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).RegisterTransaction(context.Background(), registrationFixture(t))

		assert.ErrorIs(t, err, apperror.ErrMalformedResponse)
	})
}

func TestClient_CancelTransaction(t *testing.T) {
	t.Run("successful cancel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transactions/cancel", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			tx := body["transactions"].([]any)[0].(map[string]any)
			assert.Equal(t, "18121200001", tx["np_transaction_id"])

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"results": [{"np_transaction_id": "18121200001"}]}`))
		}))
		defer server.Close()

		err := newTestClient(server.URL).CancelTransaction(context.Background(), "18121200001")

		assert.NoError(t, err)
	})

	t.Run("cancel of unknown transaction returns provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors": [{"codes": ["E0100131"]}]}`))
		}))
		defer server.Close()

		err := newTestClient(server.URL).CancelTransaction(context.Background(), "18121200001")

		var providerErr *apperror.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "The transaction could not be found.", providerErr.Error())
	})
}

func TestClient_ReportFulfillment(t *testing.T) {
	t.Run("successful report", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/shipments", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			tx := body["transactions"].([]any)[0].(map[string]any)
			assert.Equal(t, "TRACK-001", tx["tracking_number"])

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"results": [{"np_transaction_id": "18121200001"}]}`))
		}))
		defer server.Close()

		err := newTestClient(server.URL).ReportFulfillment(context.Background(), payment.FulfillmentReport{
			NPTransactionID:     "18121200001",
			ShippingCompanyCode: "50000",
			TrackingNumber:      "TRACK-001",
		})

		assert.NoError(t, err)
	})
}
