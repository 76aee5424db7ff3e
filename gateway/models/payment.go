package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Card carries the full card details for a single payment request. It is
// never persisted; only the last four digits and expiry survive into the
// stored Payment.
type Card struct {
	Number      string `json:"number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Cvv         string `json:"cvv"`
}

// PaymentRequest is one incoming payment attempt on behalf of a merchant.
// Amount is a pointer so an absent amount can be told apart from zero.
type PaymentRequest struct {
	MerchantID string `json:"merchant_id"`
	Card       *Card  `json:"card"`
	Currency   string `json:"currency"`
	Amount     *int64 `json:"amount"`
}

type PaymentStatus string

const (
	PaymentStatusAuthorized PaymentStatus = "Authorized"
	PaymentStatusDeclined   PaymentStatus = "Declined"
)

// Payment is the stored record of a processed payment.
type Payment struct {
	ID             string        `json:"id"`
	MerchantID     string        `json:"merchant_id"`
	Status         PaymentStatus `json:"status"`
	LastFourDigits string        `json:"last_four_digits"`
	ExpiryMonth    int           `json:"expiry_month"`
	ExpiryYear     int           `json:"expiry_year"`
	Currency       string        `json:"currency"`
	Amount         int64         `json:"amount"`
}

// NewPayment derives the stored record for a request from the bank's
// authorized/declined decision. The full card number and CVV never make it
// into the record.
func NewPayment(req *PaymentRequest, authorized bool) (*Payment, error) {
	if req == nil || req.Card == nil {
		return nil, fmt.Errorf("payment request is missing card details")
	}
	// validation upstream guarantees a 16 digit number; refuse to build a
	// record from anything shorter than the four digits we keep
	if len(req.Card.Number) < 4 {
		return nil, fmt.Errorf("card number is too short to derive last four digits")
	}

	status := PaymentStatusDeclined
	if authorized {
		status = PaymentStatusAuthorized
	}

	var amount int64
	if req.Amount != nil {
		amount = *req.Amount
	}

	return &Payment{
		ID:             uuid.New().String(),
		MerchantID:     req.MerchantID,
		Status:         status,
		LastFourDigits: req.Card.Number[len(req.Card.Number)-4:],
		ExpiryMonth:    req.Card.ExpiryMonth,
		ExpiryYear:     req.Card.ExpiryYear,
		Currency:       req.Currency,
		Amount:         amount,
	}, nil
}
