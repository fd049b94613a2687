package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"survey_platform/internal/model"
	"survey_platform/internal/repository"

	"github.com/google/uuid"
)

// PaymentGateway creates payment intents with an external provider.
type PaymentGateway interface {
	// CreatePaymentIntent returns the client secret for amount minor units of currency.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// PaymentService handles payment intents and payment records
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	// Record stores a payment by payerEmail and promotes the payer to prouser.
	Record(ctx context.Context, payerEmail string, req model.CreatePaymentRequest) (model.PaymentResult, error)
	List(ctx context.Context) ([]model.Payment, error)
}

type paymentService struct {
	repo     repository.PaymentRepository
	gateway  PaymentGateway
	currency string
}

// NewPaymentService creates a new PaymentService. gateway may be nil when no
// provider is configured; CreateIntent then fails with ErrPaymentGateway.
func NewPaymentService(repo repository.PaymentRepository, gateway PaymentGateway, currency string) PaymentService {
	return &paymentService{repo: repo, gateway: gateway, currency: currency}
}

// AmountInMinorUnits converts a price in major units to round(price*100).
func AmountInMinorUnits(price float64) (int64, error) {
	if !validAmount(price) {
		return 0, ErrInvalidPrice
	}
	amount := math.Round(price * 100)
	if amount < 1 || amount >= math.MaxInt64 {
		return 0, ErrInvalidPrice
	}
	return int64(amount), nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := AmountInMinorUnits(price)
	if err != nil {
		return "", err
	}
	if s.gateway == nil {
		return "", fmt.Errorf("%w: no gateway configured", ErrPaymentGateway)
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPaymentGateway, err)
	}
	return secret, nil
}

func (s *paymentService) Record(ctx context.Context, payerEmail string, req model.CreatePaymentRequest) (model.PaymentResult, error) {
	if payerEmail == "" {
		return model.PaymentResult{}, ErrUnauthorized
	}
	if !validAmount(req.Amount) {
		return model.PaymentResult{}, ErrInvalidPrice
	}

	p := &model.Payment{
		ID:            uuid.NewString(),
		Email:         payerEmail,
		Name:          req.Name,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		CreatedAt:     time.Now(),
	}

	promoted, err := s.repo.CreateAndPromote(ctx, p)
	if err != nil {
		return model.PaymentResult{}, fmt.Errorf("failed to record payment: %w", err)
	}
	return model.PaymentResult{
		Result:         model.Inserted(p.ID),
		UpdateUserRole: model.Updated(promoted),
	}, nil
}

func (s *paymentService) List(ctx context.Context) ([]model.Payment, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
