package gateway

import (
	"regexp"
	"strings"
	"time"

	"payment-gateway/gateway/models"
)

// recognizedCurrencies is the fixed set of currencies the gateway accepts,
// matched case-insensitively.
var recognizedCurrencies = []string{"USD", "GBP", "EUR"}

// numbersOnly is the historical numeric check for card numbers and CVVs.
// It admits an optional leading minus and a decimal fraction, so a value
// like "-12345.678901234" of the right length slips past the digits-only
// rules. Known gap, kept until the API contract owners sign off on
// tightening it.
var numbersOnly = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?$`)

// Validator checks the structural and business-rule validity of a payment
// request. All rule blocks are evaluated and their errors accumulated in a
// fixed order; only a missing card number short-circuits the rest of the
// card block.
type Validator struct {
	now func() time.Time
}

func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

func (v *Validator) Validate(request *models.PaymentRequest) models.ValidationResult {
	var errs []string
	errs = append(errs, validateRequest(request)...)
	errs = append(errs, v.validateCard(request)...)
	errs = append(errs, validateParams(request)...)

	return models.ValidationResult{
		Success: len(errs) == 0,
		Errors:  errs,
	}
}

func validateRequest(request *models.PaymentRequest) []string {
	if request == nil {
		return []string{"Payment request must be supplied."}
	}
	return nil
}

func (v *Validator) validateCard(request *models.PaymentRequest) []string {
	if request == nil {
		return nil
	}

	card := request.Card
	if card == nil {
		return []string{"Card details must be supplied."}
	}

	var errs []string
	if card.Number == "" {
		return append(errs, "Card number must be supplied.")
	}
	if len(card.Number) != 16 {
		errs = append(errs, "Card number must be 16 digits long.")
	}
	if !numbersOnly.MatchString(card.Number) {
		errs = append(errs, "Card number must only contain digits.")
	}
	if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 {
		errs = append(errs, "Expiry month must be between 1 and 12.")
	}

	now := v.now()
	if card.ExpiryYear < now.Year() {
		errs = append(errs, "Expiry year cannot be in the past.")
	} else if card.ExpiryYear == now.Year() && card.ExpiryMonth <= int(now.Month()) {
		errs = append(errs, "Card has already expired.")
	}

	if len(card.Cvv) != 3 {
		errs = append(errs, "CVV must be 3 digits long.")
	}
	if !numbersOnly.MatchString(card.Cvv) {
		errs = append(errs, "CVV must only contain digits.")
	}

	return errs
}

func validateParams(request *models.PaymentRequest) []string {
	if request == nil {
		return nil
	}

	var errs []string
	if request.MerchantID == "" {
		errs = append(errs, "MerchantId must be supplied")
	}
	if request.Amount == nil {
		errs = append(errs, "Amount must be supplied")
	}
	if request.Amount == nil || *request.Amount <= 0 {
		errs = append(errs, "Amount must be greater than zero")
	}
	if request.Currency == "" {
		errs = append(errs, "Currency must be supplied")
	} else if !isRecognizedCurrency(request.Currency) {
		errs = append(errs, "Currency supplied is invalid")
	}

	return errs
}

func isRecognizedCurrency(code string) bool {
	for _, currency := range recognizedCurrencies {
		if strings.EqualFold(code, currency) {
			return true
		}
	}
	return false
}
