package atobarai

import (
	"encoding/json"
	"testing"

	"AtobaraiGateway/internal/domain/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func japaneseAddress() payment.Address {
	return payment.Address{
		FirstName:      "John",
		LastName:       "Doe",
		CompanyName:    "",
		Phone:          "+81 03-1234-5678",
		Country:        "JP",
		PostalCode:     "370-2625",
		CountryArea:    "群馬県",
		City:           "甘楽郡下仁田町",
		CityArea:       "本宿",
		StreetAddress1: "2-16-3",
		StreetAddress2: "",
	}
}

func registrationFixture(t *testing.T) payment.RegistrationRequest {
	t.Helper()

	line := payment.PaymentLine{
		Gross:       decimal.RequireFromString("100.00"),
		ProductName: "Product Name",
		ProductSKU:  "PRODUCT_SKU123",
		Quantity:    5,
	}

	return payment.RegistrationRequest{
		ShopTransactionID: "abc1234567890",
		Payment: payment.PaymentData{
			PaymentID: "abc1234567890",
			Amount:    decimal.RequireFromString("300.00"),
			Currency:  "JPY",
			Billing:   japaneseAddress(),
			Shipping:  japaneseAddress(),
			Lines:     []payment.PaymentLine{line, line, line},
		},
	}
}

func TestBuildRegistrationPayload(t *testing.T) {
	t.Parallel()

	t.Run("maps addresses and lines into the provider schema", func(t *testing.T) {
		// given
		req := registrationFixture(t)

		// when
		payload := buildRegistrationPayload(req)

		// then
		require.Len(t, payload.Transactions, 1)
		tx := payload.Transactions[0]

		assert.Equal(t, "abc1234567890", tx.ShopTransactionID)
		assert.Equal(t, "JPY", tx.Currency)
		assert.True(t, tx.BilledAmount.Equal(decimal.RequireFromString("300.00")))

		assert.Equal(t, "370-2625", tx.Customer.ZipCode)
		assert.Equal(t, "群馬県", tx.Customer.Prefecture)
		assert.Equal(t, "甘楽郡下仁田町", tx.Customer.City)
		assert.Equal(t, "本宿", tx.Customer.CityArea)
		assert.Equal(t, "+81 03-1234-5678", tx.Customer.TelNumber)
		assert.Equal(t, tx.Customer, tx.DestCustomer)

		require.Len(t, tx.Goods, 3)
		for _, good := range tx.Goods {
			assert.Equal(t, "Product Name", good.ProductName)
			assert.Equal(t, "PRODUCT_SKU123", good.ProductSKU)
			assert.Equal(t, 5, good.Quantity)
			assert.True(t, good.Gross.Equal(decimal.RequireFromString("100.00")))
		}
	})

	t.Run("forwards malformed input as-is", func(t *testing.T) {
		// given: empty name and free-form postal code are not validated here,
		// the provider is authoritative on rejecting them
		req := registrationFixture(t)
		req.Payment.Billing.LastName = ""
		req.Payment.Billing.PostalCode = "not-a-zip"

		// when
		payload := buildRegistrationPayload(req)

		// then
		assert.Equal(t, "", payload.Transactions[0].Customer.LastName)
		assert.Equal(t, "not-a-zip", payload.Transactions[0].Customer.ZipCode)
	})

	t.Run("is idempotent in content for identical input", func(t *testing.T) {
		// given
		req := registrationFixture(t)

		// when
		first, err := json.Marshal(buildRegistrationPayload(req))
		require.NoError(t, err)
		second, err := json.Marshal(buildRegistrationPayload(registrationFixture(t)))
		require.NoError(t, err)

		// then
		assert.Equal(t, first, second)
	})

	t.Run("keeps duplicate lines as independent entries", func(t *testing.T) {
		// given
		req := registrationFixture(t)

		// when
		payload := buildRegistrationPayload(req)

		// then
		require.Len(t, payload.Transactions[0].Goods, len(req.Payment.Lines))
		assert.Equal(t, payload.Transactions[0].Goods[0], payload.Transactions[0].Goods[2])
	})
}

func TestBuildCancelPayload(t *testing.T) {
	t.Parallel()

	payload := buildCancelPayload("18121200001")

	require.Len(t, payload.Transactions, 1)
	assert.Equal(t, "18121200001", payload.Transactions[0].NPTransactionID)
}

func TestBuildFulfillmentPayload(t *testing.T) {
	t.Parallel()

	payload := buildFulfillmentPayload(payment.FulfillmentReport{
		NPTransactionID:     "18121200001",
		ShippingCompanyCode: "50000",
		TrackingNumber:      "TRACK-001",
	})

	require.Len(t, payload.Transactions, 1)
	assert.Equal(t, "18121200001", payload.Transactions[0].NPTransactionID)
	assert.Equal(t, "50000", payload.Transactions[0].ShippingCompanyCode)
	assert.Equal(t, "TRACK-001", payload.Transactions[0].TrackingNumber)
}
