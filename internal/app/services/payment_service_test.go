package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appAuth "github.com/yigit/classbook/internal/app/auth"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/payments"
)

func floatPtr(v float64) *float64 { return &v }

type brokenEnrollments struct {
	memPayments
	err error
}

func (s brokenEnrollments) ListEnrollments(context.Context, string) ([]*models.Enrollment, error) {
	return nil, s.err
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("invalid price", func(t *testing.T) {
		tests := []struct {
			name    string
			req     *dto.PaymentIntentRequest
			message string
		}{
			{"missing", &dto.PaymentIntentRequest{}, "price is required"},
			{"zero", &dto.PaymentIntentRequest{Price: floatPtr(0)}, "price must be positive"},
			{"negative", &dto.PaymentIntentRequest{Price: floatPtr(-5)}, "price must be positive"},
			{"above column range", &dto.PaymentIntentRequest{Price: floatPtr(dto.MaxPrice + 1)}, "price exceeds the maximum amount"},
		}

		f := newFixture()
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.payments.CreatePaymentIntent(context.Background(), tt.req)
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				assert.EqualError(t, err, tt.message)
			})
		}
		f.proc.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything)
	})

	t.Run("price is sent in minor units", func(t *testing.T) {
		f := newFixture()
		f.proc.On("CreateIntent", mock.Anything, int64(2999)).
			Return(&payments.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil).Once()

		res, err := f.payments.CreatePaymentIntent(context.Background(), &dto.PaymentIntentRequest{Price: floatPtr(29.99)})
		require.NoError(t, err)
		assert.Equal(t, "pi_1_secret", res.ClientSecret)
		f.proc.AssertExpectations(t)
	})

	t.Run("processor failure", func(t *testing.T) {
		f := newFixture()
		f.proc.On("CreateIntent", mock.Anything, int64(500)).
			Return(nil, fmt.Errorf("%w: boom", apperrors.ErrExternalService))

		_, err := f.payments.CreatePaymentIntent(context.Background(), &dto.PaymentIntentRequest{Price: floatPtr(5)})
		assert.ErrorIs(t, err, apperrors.ErrExternalService)
	})
}

func TestRecordPaymentThenResolveEnrollment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	yoga := f.seedClass("Yoga", 20, models.ClassApproved)
	pilates := f.seedClass("Pilates", 30, models.ClassApproved)

	cart, err := f.carts.Add(ctx, "a@x.io", &dto.AddCartItemRequest{ClassID: yoga.ID})
	require.NoError(t, err)

	res, err := f.payments.RecordPayment(ctx, "a@x.io", &dto.RecordPaymentRequest{
		Email: "a@x.io", ClassID: yoga.ID, CartItemID: &cart.InsertedID, TransactionID: "pi_a", Amount: 20,
	})
	require.NoError(t, err)
	assert.NotZero(t, res.InsertResult.InsertedID)
	assert.Equal(t, int64(1), res.DeleteResult.DeletedCount)

	items, _ := f.carts.List(ctx, "a@x.io", "a@x.io")
	assert.Empty(t, items)

	enrollments, err := f.payments.Enrollments(ctx, "a@x.io", "a@x.io")
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, yoga.ID, enrollments[0].Class.ID)
	assert.Equal(t, "usd", enrollments[0].Payment.Currency)
	assert.Equal(t, 1, enrollments[0].Class.Enrolled)

	_, err = f.payments.RecordPayment(ctx, "a@x.io", &dto.RecordPaymentRequest{
		Email: "a@x.io", ClassID: pilates.ID, TransactionID: "pi_b", Amount: 30, Currency: "EUR",
	})
	require.NoError(t, err)

	enrollments, err = f.payments.Enrollments(ctx, "a@x.io", "a@x.io")
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	assert.Equal(t, pilates.ID, enrollments[0].Class.ID)
	assert.Equal(t, "eur", enrollments[0].Payment.Currency)
	assert.True(t, enrollments[0].Payment.CreatedAt.After(enrollments[1].Payment.CreatedAt))

	history, err := f.payments.History(ctx, "a@x.io", "a@x.io")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestRecordPayment_Rejections(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.payments.RecordPayment(ctx, "a@x.io", &dto.RecordPaymentRequest{Email: "b@x.io", ClassID: 1, TransactionID: "pi"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.payments.RecordPayment(ctx, "a@x.io", &dto.RecordPaymentRequest{Email: "a@x.io", ClassID: 77, TransactionID: "pi"})
	assert.True(t, errors.Is(err, apperrors.ErrClassNotFound))
	assert.Empty(t, f.store.payments)

	_, err = f.payments.Enrollments(ctx, "a@x.io", "b@x.io")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestEnrollments_StoreFailure(t *testing.T) {
	f := newFixture()
	cause := errors.New("relation \"payments\" does not exist")
	svc := NewPaymentService(brokenEnrollments{memPayments{f.store}, cause}, f.proc, appAuth.NewAuthorizationService(memUsers{f.store}), zerolog.Nop())

	_, err := svc.Enrollments(context.Background(), "a@x.io", "a@x.io")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "failed to resolve enrolled classes")
}
