package acquirer

// Request is the acquiring bank's view of one authorization attempt.
type Request struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

// Response is the bank's definitive decision for one attempt. A declined
// authorization is still a successful exchange.
type Response struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

// Kind classifies why an authorization call failed.
type Kind string

const (
	KindBadRequest         Kind = "bad request"
	KindServiceUnavailable Kind = "service unavailable"
	KindEmptyResponse      Kind = "empty response"
	KindUnexpected         Kind = "unexpected error"
)

// Error is a failed authorization call. Calls are single attempt; an Error
// is terminal for the payment that triggered it.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
