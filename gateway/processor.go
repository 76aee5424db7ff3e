package gateway

import (
	"context"

	"payment-gateway/gateway/acquirer"
	"payment-gateway/gateway/models"
	"payment-gateway/internal/expiry"

	"golang.org/x/exp/slog"
)

// Authorizer performs the outbound authorization exchange with the
// acquiring bank.
type Authorizer interface {
	Authorize(ctx context.Context, request acquirer.Request) (acquirer.Response, error)
}

// Processor is the boundary between the payment workflow and the acquiring
// bank. Callers above it see a single ProcessingError instead of the
// transport-level failure kinds.
type Processor struct {
	client Authorizer
	logger *slog.Logger
}

func NewProcessor(logger *slog.Logger, client Authorizer) *Processor {
	return &Processor{
		client: client,
		logger: logger.With(slog.String("component", "processor")),
	}
}

// GetAuthorization maps the payment request into the acquirer's shape and
// obtains the bank's decision for it.
func (p *Processor) GetAuthorization(ctx context.Context, request *models.PaymentRequest) (acquirer.Response, error) {
	response, err := p.client.Authorize(ctx, toAcquirerRequest(request))
	if err != nil {
		p.logger.Error("processing the payment with the bank", slog.Any("err", err))
		return acquirer.Response{}, NewProcessingError(err)
	}

	return response, nil
}

// toAcquirerRequest maps a validated payment request into the acquirer's
// request shape. The caller guarantees the request already passed the
// Validator.
func toAcquirerRequest(request *models.PaymentRequest) acquirer.Request {
	card := request.Card

	var amount int64
	if request.Amount != nil {
		amount = *request.Amount
	}

	return acquirer.Request{
		CardNumber: card.Number,
		ExpiryDate: expiry.Format(card.ExpiryMonth, card.ExpiryYear),
		Currency:   request.Currency,
		Amount:     amount,
		Cvv:        card.Cvv,
	}
}
