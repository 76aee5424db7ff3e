package gateway_test

import (
	"context"
	"io"
	"testing"
	"time"

	"payment-gateway/gateway"
	"payment-gateway/gateway/acquirer"
	"payment-gateway/gateway/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type stubBank struct {
	response acquirer.Response
	err      error
	calls    int
}

func (b *stubBank) GetAuthorization(ctx context.Context, request *models.PaymentRequest) (acquirer.Response, error) {
	b.calls++
	if b.err != nil {
		return acquirer.Response{}, b.err
	}
	return b.response, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func paymentRequest() *models.PaymentRequest {
	amount := int64(100)

	return &models.PaymentRequest{
		MerchantID: uuid.New().String(),
		Card: &models.Card{
			Number:      "2222405343248879",
			ExpiryMonth: 12,
			ExpiryYear:  time.Now().Year() + 5,
			Cvv:         "123",
		},
		Currency: "USD",
		Amount:   &amount,
	}
}

func TestProcessPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("authorized payment is recorded", func(t *testing.T) {
		repo := gateway.NewRepository()
		bank := &stubBank{response: acquirer.Response{Authorized: true, AuthorizationCode: "123456"}}
		service := gateway.NewService(testLogger(), repo, bank)

		request := paymentRequest()
		err := service.ProcessPayment(ctx, request)
		require.NoError(t, err)

		payments, err := repo.AllPayments(ctx)
		require.NoError(t, err)
		require.Len(t, payments, 1)

		payment := payments[0]
		require.Equal(t, models.PaymentStatusAuthorized, payment.Status)
		require.Equal(t, request.MerchantID, payment.MerchantID)
		require.Equal(t, "8879", payment.LastFourDigits)
		require.Equal(t, "USD", payment.Currency)
		require.Equal(t, int64(100), payment.Amount)
	})

	t.Run("declined payment is recorded, not failed", func(t *testing.T) {
		repo := gateway.NewRepository()
		bank := &stubBank{response: acquirer.Response{Authorized: false}}
		service := gateway.NewService(testLogger(), repo, bank)

		err := service.ProcessPayment(ctx, paymentRequest())
		require.NoError(t, err)

		payments, err := repo.AllPayments(ctx)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		require.Equal(t, models.PaymentStatusDeclined, payments[0].Status)
	})

	t.Run("invalid request never reaches the bank", func(t *testing.T) {
		repo := gateway.NewRepository()
		bank := &stubBank{response: acquirer.Response{Authorized: true}}
		service := gateway.NewService(testLogger(), repo, bank)

		request := paymentRequest()
		request.Card.Cvv = "12"

		err := service.ProcessPayment(ctx, request)

		var validationErr *gateway.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "CVV must be 3 digits long.", validationErr.Error())

		require.Zero(t, bank.calls)

		payments, err := repo.AllPayments(ctx)
		require.NoError(t, err)
		require.Empty(t, payments)
	})

	t.Run("bank failure keeps the original message and persists nothing", func(t *testing.T) {
		repo := gateway.NewRepository()
		cause := &acquirer.Error{
			Kind:    acquirer.KindServiceUnavailable,
			Message: "acquirer call failed with http status code: 503",
		}
		bank := &stubBank{err: gateway.NewProcessingError(cause)}
		service := gateway.NewService(testLogger(), repo, bank)

		err := service.ProcessPayment(ctx, paymentRequest())

		var processingErr *gateway.ProcessingError
		require.ErrorAs(t, err, &processingErr)
		require.EqualError(t, processingErr, "acquirer call failed with http status code: 503")

		var acquirerErr *acquirer.Error
		require.ErrorAs(t, err, &acquirerErr)
		require.Equal(t, acquirer.KindServiceUnavailable, acquirerErr.Kind)

		payments, err := repo.AllPayments(ctx)
		require.NoError(t, err)
		require.Empty(t, payments)
	})

	t.Run("unwrapped provider errors are wrapped once", func(t *testing.T) {
		repo := gateway.NewRepository()
		bank := &stubBank{err: io.ErrUnexpectedEOF}
		service := gateway.NewService(testLogger(), repo, bank)

		err := service.ProcessPayment(ctx, paymentRequest())

		var processingErr *gateway.ProcessingError
		require.ErrorAs(t, err, &processingErr)
		require.EqualError(t, processingErr, io.ErrUnexpectedEOF.Error())
	})
}

func TestCreateMerchant(t *testing.T) {
	ctx := context.Background()
	repo := gateway.NewRepository()
	service := gateway.NewService(testLogger(), repo, &stubBank{})

	merchant, err := service.CreateMerchant(ctx, models.CreateMerchant{Name: "Gopher Books"})
	require.NoError(t, err)
	require.NotEmpty(t, merchant.ID)
	require.Equal(t, "Gopher Books", merchant.Name)

	merchants, err := service.Merchants(ctx)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
	require.Equal(t, merchant, merchants[0])
}
