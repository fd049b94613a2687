package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"survey_platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAmountInMinorUnits(t *testing.T) {
	tests := []struct {
		price   float64
		want    int64
		wantErr bool
	}{
		{price: 10, want: 1000},
		{price: 19.99, want: 1999},
		{price: 0.01, want: 1},
		{price: 0.004, wantErr: true},
		{price: 0, wantErr: true},
		{price: -5, wantErr: true},
		{price: math.NaN(), wantErr: true},
		{price: math.Inf(1), wantErr: true},
		{price: 1e300, wantErr: true},
	}

	for _, tt := range tests {
		got, err := AmountInMinorUnits(tt.price)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPrice, "price %v", tt.price)
			continue
		}
		require.NoError(t, err, "price %v", tt.price)
		assert.Equal(t, tt.want, got, "price %v", tt.price)
	}
}

func TestPaymentService_CreateIntent(t *testing.T) {
	gateway := &mockGateway{}
	svc := NewPaymentService(&mockPaymentRepo{}, gateway, "usd")
	ctx := context.Background()

	gateway.On("CreatePaymentIntent", ctx, int64(2500), "usd").Return("pi_secret", nil)

	secret, err := svc.CreateIntent(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, "pi_secret", secret)
}

func TestPaymentService_CreateIntent_InvalidPriceSkipsGateway(t *testing.T) {
	gateway := &mockGateway{}
	svc := NewPaymentService(&mockPaymentRepo{}, gateway, "usd")

	_, err := svc.CreateIntent(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidPrice)
	gateway.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_CreateIntent_GatewayFailure(t *testing.T) {
	gateway := &mockGateway{}
	svc := NewPaymentService(&mockPaymentRepo{}, gateway, "usd")
	gateway.On("CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("card_declined"))

	_, err := svc.CreateIntent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrPaymentGateway)
}

func TestPaymentService_CreateIntent_NoGateway(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepo{}, nil, "usd")

	_, err := svc.CreateIntent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrPaymentGateway)
}

func TestPaymentService_Record_PromotesPayer(t *testing.T) {
	repo := &mockPaymentRepo{}
	svc := NewPaymentService(repo, nil, "usd")
	ctx := context.Background()

	repo.On("CreateAndPromote", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Email == "a@x.com" && p.Amount == 25 && p.TransactionID == "pi_1"
	})).Return(int64(1), nil)

	res, err := svc.Record(ctx, "a@x.com", model.CreatePaymentRequest{Amount: 25, TransactionID: "pi_1"})

	require.NoError(t, err)
	assert.True(t, res.Result.Acknowledged)
	assert.NotNil(t, res.Result.InsertedID)
	assert.Equal(t, int64(1), res.UpdateUserRole.ModifiedCount)
}

func TestPaymentService_Record_StoreError(t *testing.T) {
	repo := &mockPaymentRepo{}
	svc := NewPaymentService(repo, nil, "usd")
	repo.On("CreateAndPromote", mock.Anything, mock.Anything).Return(int64(0), errors.New("tx aborted"))

	_, err := svc.Record(context.Background(), "a@x.com", model.CreatePaymentRequest{Amount: 10})
	assert.ErrorContains(t, err, "tx aborted")
}

func TestPaymentService_Record_RejectsInvalidAmount(t *testing.T) {
	repo := &mockPaymentRepo{}
	svc := NewPaymentService(repo, nil, "usd")

	for _, amount := range []float64{0, -25, math.NaN(), math.Inf(1)} {
		_, err := svc.Record(context.Background(), "a@x.com", model.CreatePaymentRequest{Amount: amount})
		assert.ErrorIs(t, err, ErrInvalidPrice, "amount %v", amount)
	}
	repo.AssertNotCalled(t, "CreateAndPromote", mock.Anything, mock.Anything)
}

func TestPaymentService_Record_RequiresPayer(t *testing.T) {
	repo := &mockPaymentRepo{}
	svc := NewPaymentService(repo, nil, "usd")

	_, err := svc.Record(context.Background(), "", model.CreatePaymentRequest{Amount: 25})
	assert.ErrorIs(t, err, ErrUnauthorized)
	repo.AssertNotCalled(t, "CreateAndPromote", mock.Anything, mock.Anything)
}
