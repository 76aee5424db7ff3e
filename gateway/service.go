package gateway

import (
	"context"
	"errors"
	"fmt"

	"payment-gateway/gateway/acquirer"
	"payment-gateway/gateway/models"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// AuthorizationProvider obtains a definitive authorized/declined outcome
// for a payment request.
type AuthorizationProvider interface {
	GetAuthorization(ctx context.Context, request *models.PaymentRequest) (acquirer.Response, error)
}

type Service struct {
	repo      *Repository
	bank      AuthorizationProvider
	validator *Validator
	logger    *slog.Logger
}

func NewService(logger *slog.Logger, repo *Repository, bank AuthorizationProvider) *Service {
	return &Service{
		repo:      repo,
		bank:      bank,
		validator: NewValidator(),
		logger:    logger.With(slog.String("component", "service")),
	}
}

// ProcessPayment runs the payment workflow for one request: validate, obtain
// the bank's decision, record the outcome. A declined authorization is a
// successful outcome; only a validation failure or a processing failure
// comes back as an error, and neither leaves a record behind.
func (s *Service) ProcessPayment(ctx context.Context, request *models.PaymentRequest) error {
	result := s.validator.Validate(request)
	if !result.Success {
		// expected caller input trouble, not worth an error-level event
		s.logger.Info("payment request rejected", slog.Int("rule_errors", len(result.Errors)))
		return &ValidationError{Result: result}
	}

	response, err := s.bank.GetAuthorization(ctx, request)
	if err != nil {
		var processingErr *ProcessingError
		if errors.As(err, &processingErr) {
			return err
		}
		s.logger.Error("obtaining authorization", slog.Any("err", err))
		return NewProcessingError(err)
	}

	payment, err := models.NewPayment(request, response.Authorized)
	if err != nil {
		s.logger.Error("building payment record", slog.Any("err", err))
		return NewProcessingError(err)
	}

	if err := s.repo.SavePayment(ctx, payment); err != nil {
		s.logger.Error("saving payment", slog.Any("err", err))
		return NewProcessingError(fmt.Errorf("saving payment: %w", err))
	}

	s.logger.Info("payment processed",
		slog.String("payment_id", payment.ID),
		slog.String("merchant_id", payment.MerchantID),
		slog.String("status", string(payment.Status)),
	)

	return nil
}

// Payments returns every stored payment. For admin use only.
func (s *Service) Payments(ctx context.Context) ([]*models.Payment, error) {
	payments, err := s.repo.AllPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	return payments, nil
}

// MerchantPayments returns the payments recorded for the given merchant.
func (s *Service) MerchantPayments(ctx context.Context, merchantID string) ([]*models.Payment, error) {
	payments, err := s.repo.PaymentsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("listing merchant payments: %w", err)
	}

	return payments, nil
}

// Payment returns a single payment scoped to its merchant.
func (s *Service) Payment(ctx context.Context, merchantID, paymentID string) (*models.Payment, error) {
	payment, err := s.repo.PaymentByIDs(ctx, merchantID, paymentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("finding payment: %w", err)
	}

	return payment, nil
}

func (s *Service) CreateMerchant(ctx context.Context, create models.CreateMerchant) (*models.Merchant, error) {
	merchant := &models.Merchant{
		ID:   uuid.New().String(),
		Name: create.Name,
	}

	if err := s.repo.SaveMerchant(ctx, merchant); err != nil {
		return nil, fmt.Errorf("saving merchant: %w", err)
	}

	s.logger.Info("merchant created", slog.String("merchant_id", merchant.ID), slog.String("name", merchant.Name))

	return merchant, nil
}

func (s *Service) Merchants(ctx context.Context) ([]*models.Merchant, error) {
	merchants, err := s.repo.AllMerchants(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing merchants: %w", err)
	}

	return merchants, nil
}
