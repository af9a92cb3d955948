package payment

import (
	"github.com/shopspring/decimal"
)

// Address is an immutable snapshot of a billing or shipping address.
// All fields are free-form text except Country (ISO code) and PostalCode,
// which the provider validates on its side.
type Address struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CompanyName    string `json:"company_name"`
	Phone          string `json:"phone"`
	Country        string `json:"country"`
	PostalCode     string `json:"postal_code"`
	CountryArea    string `json:"country_area"`
	City           string `json:"city"`
	CityArea       string `json:"city_area"`
	StreetAddress1 string `json:"street_address_1"`
	StreetAddress2 string `json:"street_address_2"`
}

// PaymentLine is a single order line billed through the provider.
// Duplicate lines are valid: the same SKU may repeat for independent units.
type PaymentLine struct {
	Gross       decimal.Decimal `json:"gross"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	Quantity    int             `json:"quantity"`
}

// PaymentData aggregates everything needed for one authorization attempt.
// The provider, not this service, enforces that line grosses reconcile
// with the total amount.
type PaymentData struct {
	// PaymentID is the merchant-side reference: it becomes the
	// shop_transaction_id correlating a request to its response.
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Billing   Address         `json:"billing"`
	Shipping  Address         `json:"shipping"`
	Lines     []PaymentLine   `json:"lines"`
}

// GatewayResponse is the normalized outcome of one gateway operation.
// Constructed once per call and never mutated afterwards.
type GatewayResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	// NPTransactionID is the provider-assigned transaction identifier.
	// Present whenever the provider returned one, including refusals,
	// never on transport failure.
	NPTransactionID string `json:"np_transaction_id,omitempty"`
}
