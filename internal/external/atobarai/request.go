package atobarai

import (
	"AtobaraiGateway/internal/domain/payment"

	"github.com/shopspring/decimal"
)

// Wire types for the transaction registration payload. The provider expects
// a flat field set per transaction; mapping from the domain types happens in
// the build functions below and nowhere else.

type registrationPayload struct {
	Transactions []transactionPayload `json:"transactions"`
}

type transactionPayload struct {
	ShopTransactionID string          `json:"shop_transaction_id"`
	BilledAmount      decimal.Decimal `json:"billed_amount"`
	Currency          string          `json:"currency"`
	Customer          addressPayload  `json:"customer"`
	DestCustomer      addressPayload  `json:"dest_customer"`
	Goods             []goodPayload   `json:"goods"`
}

type addressPayload struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CompanyName    string `json:"company_name"`
	TelNumber      string `json:"tel_number"`
	Country        string `json:"country"`
	ZipCode        string `json:"zip_code"`
	Prefecture     string `json:"prefecture"`
	City           string `json:"city"`
	CityArea       string `json:"city_area"`
	StreetAddress1 string `json:"street_address_1"`
	StreetAddress2 string `json:"street_address_2"`
}

type goodPayload struct {
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	Quantity    int             `json:"quantity"`
	Gross       decimal.Decimal `json:"gross"`
}

type cancelPayload struct {
	Transactions []cancelTransaction `json:"transactions"`
}

type cancelTransaction struct {
	NPTransactionID string `json:"np_transaction_id"`
}

type fulfillmentPayload struct {
	Transactions []fulfillmentTransaction `json:"transactions"`
}

type fulfillmentTransaction struct {
	NPTransactionID     string `json:"np_transaction_id"`
	ShippingCompanyCode string `json:"shipping_company_code"`
	TrackingNumber      string `json:"tracking_number"`
}

// buildRegistrationPayload assembles one authorization attempt. Construction
// is pure: identical input produces byte-identical JSON.
func buildRegistrationPayload(req payment.RegistrationRequest) registrationPayload {
	return registrationPayload{
		Transactions: []transactionPayload{
			{
				ShopTransactionID: req.ShopTransactionID,
				BilledAmount:      req.Payment.Amount,
				Currency:          req.Payment.Currency,
				Customer:          normalizeAddress(req.Payment.Billing),
				DestCustomer:      normalizeAddress(req.Payment.Shipping),
				Goods:             normalizeLines(req.Payment.Lines),
			},
		},
	}
}

// normalizeAddress flattens a domain address into the provider schema.
// No business validation happens here: malformed input is forwarded as-is,
// the provider is authoritative on rejecting it.
func normalizeAddress(a payment.Address) addressPayload {
	return addressPayload{
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		CompanyName:    a.CompanyName,
		TelNumber:      a.Phone,
		Country:        a.Country,
		ZipCode:        a.PostalCode,
		Prefecture:     a.CountryArea,
		City:           a.City,
		CityArea:       a.CityArea,
		StreetAddress1: a.StreetAddress1,
		StreetAddress2: a.StreetAddress2,
	}
}

// normalizeLines maps payment lines one-to-one, duplicates included.
// Quantity stays an integer and gross stays a decimal: no rounding.
func normalizeLines(lines []payment.PaymentLine) []goodPayload {
	goods := make([]goodPayload, len(lines))
	for i, line := range lines {
		goods[i] = goodPayload{
			ProductName: line.ProductName,
			ProductSKU:  line.ProductSKU,
			Quantity:    line.Quantity,
			Gross:       line.Gross,
		}
	}
	return goods
}

func buildCancelPayload(npTransactionID string) cancelPayload {
	return cancelPayload{
		Transactions: []cancelTransaction{{NPTransactionID: npTransactionID}},
	}
}

func buildFulfillmentPayload(report payment.FulfillmentReport) fulfillmentPayload {
	return fulfillmentPayload{
		Transactions: []fulfillmentTransaction{
			{
				NPTransactionID:     report.NPTransactionID,
				ShippingCompanyCode: report.ShippingCompanyCode,
				TrackingNumber:      report.TrackingNumber,
			},
		},
	}
}
