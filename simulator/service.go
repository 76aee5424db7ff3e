package simulator

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/slog"
)

// Reserved card numbers that trigger infrastructure failures instead of a
// decision, so clients can exercise their failure handling.
const (
	// CardNumberUnavailable makes the bank answer 503.
	CardNumberUnavailable = "4000000000000503"
	// CardNumberEmptyBody makes the bank answer 200 with no body.
	CardNumberEmptyBody = "4000000000000200"
)

var (
	ErrUnavailable = fmt.Errorf("simulated outage")
	ErrEmptyBody   = fmt.Errorf("simulated empty response")
)

// Request mirrors the authorization wire contract the bank accepts.
type Request struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

type Response struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Authorize decides the outcome for one authorization attempt. The decision
// is deterministic so tests can rely on it: card numbers ending in an odd
// digit are authorized, even digits are declined. The reserved card numbers
// above simulate failures instead of deciding.
func (s *Service) Authorize(request Request) (Response, error) {
	switch request.CardNumber {
	case CardNumberUnavailable:
		return Response{}, ErrUnavailable
	case CardNumberEmptyBody:
		return Response{}, ErrEmptyBody
	}

	last := request.CardNumber[len(request.CardNumber)-1]
	if (last-'0')%2 == 0 {
		s.logger.Info("authorization declined", slog.String("last_four", lastFour(request.CardNumber)))
		return Response{Authorized: false}, nil
	}

	response := Response{
		Authorized:        true,
		AuthorizationCode: generateAuthorizationCode(),
	}

	s.logger.Info("authorization approved",
		slog.String("last_four", lastFour(request.CardNumber)),
		slog.String("authorization_code", response.AuthorizationCode),
	)

	return response, nil
}

func lastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}

func generateAuthorizationCode() string {
	return generateRandomNumber(6)
}

func generateRandomNumber(length int) string {
	digits := make([]byte, length)
	for i := range digits {
		digits[i] = '0' + byte(rand.Intn(10))
	}

	return string(digits)
}
