package atobarai

// FallbackErrorMessage is surfaced for provider error codes absent from the
// table, so an unknown code is never silently dropped.
const FallbackErrorMessage = "Unknown error while processing the payment."

// errorMessages maps documented NP Atobarai error codes to user-facing
// texts. Populated once at init, read-only afterwards: concurrent lookup
// from multiple in-flight payments is safe.
var errorMessages = map[string]string{
	"E0100002": "Please check if the merchant code is correct.",
	"E0100003": "Please check if the SP code is correct.",
	"E0100048": "Please check if the terminal ID is correct.",
	"E0100059": "Please check if the customer’s ZIP code and address match.",
	"E0100061": "Please check if the customer’s ZIP code format is correct.",
	"E0100062": "Please check if the customer’s telephone number format is correct.",
	"E0100063": "Please enter the customer’s name.",
	"E0100064": "Please check if the customer’s address is entered correctly.",
	"E0100065": "Please check if the billed amount is within the allowed limit.",
	"E0100066": "Please confirm that the billed amount matches the sum of the goods.",
	"E0100068": "Please enter at least one item of goods.",
	"E0100069": "Please check if the goods quantity is a positive number.",
	"E0100070": "Please check if the goods price format is correct.",
	"E0100081": "Please check if the delivery destination telephone number format is correct.",
	"E0100082": "Please enter the delivery destination name.",
	"E0100083": "Please make sure the delivery destination (ZIP code) and address match.",
	"E0100084": "Please check if the delivery destination ZIP code format is correct.",
	"E0100085": "Please check if the delivery destination address is entered correctly.",
	"E0100113": "Please check if the shop transaction ID is unique.",
	"E0100114": "Please check if the shop transaction ID format is correct.",
	"E0100118": "The transaction has already been cancelled.",
	"E0100131": "The transaction could not be found.",
	"E0100132": "Please check if the NP transaction ID format is correct.",
	"E0100133": "The transaction is not in a state that allows this operation.",
	"E0100134": "Please check if the shipping company code is correct.",
	"E0100135": "Please check if the tracking number format is correct.",
	"EPRO0101": "The NP Atobarai service is temporarily unavailable. Please try again later.",
	"EPRO0102": "An internal error occurred on the NP Atobarai side.",
	"EPRO0105": "The request was rejected by the NP Atobarai system. Please contact support.",
}

// resolveErrorCodes looks up every code in order, deduplicating nothing:
// a code repeated across error entries yields its message again.
func resolveErrorCodes(codes []string) []string {
	messages := make([]string, len(codes))
	for i, code := range codes {
		msg, ok := errorMessages[code]
		if !ok {
			msg = FallbackErrorMessage
		}
		messages[i] = msg
	}
	return messages
}
