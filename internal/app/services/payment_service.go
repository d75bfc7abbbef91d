package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/classbook/internal/app/auth"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/app/repositories"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/helpers"
)

// PaymentService handles checkout and enrollment operations
type PaymentService struct {
	paymentRepo  repositories.PaymentStore
	processor    PaymentProcessor
	authzService *appAuth.AuthorizationService
	logger       zerolog.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo repositories.PaymentStore,
	processor PaymentProcessor,
	authzService *appAuth.AuthorizationService,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		processor:    processor,
		authzService: authzService,
		logger:       logger,
	}
}

// CreatePaymentIntent requests a processor intent for price and returns its client secret
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req *dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	if req.Price == nil {
		return nil, apperrors.NewValidationError("price is required")
	}
	amount := helpers.ToMinorUnits(*req.Price)
	if amount <= 0 {
		return nil, apperrors.NewValidationError("price must be positive")
	}
	if *req.Price > dto.MaxPrice {
		return nil, apperrors.NewValidationError("price exceeds the maximum amount")
	}

	intent, err := s.processor.CreateIntent(ctx, amount)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("intentID", intent.ID).Int64("amount", amount).Msg("Payment intent created")
	return &dto.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// RecordPayment stores the caller's completed payment and removes the cart item it paid for
func (s *PaymentService) RecordPayment(ctx context.Context, identity string, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if err := s.authzService.ValidateSelf(identity, req.Email); err != nil {
		return nil, err
	}

	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.processor.Currency()
	}

	payment := &models.Payment{
		Email:         req.Email,
		ClassID:       req.ClassID,
		CartItemID:    req.CartItemID,
		TransactionID: strings.TrimSpace(req.TransactionID),
		Amount:        req.Amount,
		Currency:      currency,
	}

	cartDeleted, err := s.paymentRepo.Record(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("email", payment.Email).
		Int64("paymentID", payment.ID).
		Int64("classID", payment.ClassID).
		Int64("cartDeleted", cartDeleted).
		Msg("Payment recorded")

	return &dto.RecordPaymentResponse{
		InsertResult: dto.NewInsertResult(payment.ID),
		DeleteResult: dto.NewDeleteResult(cartDeleted),
	}, nil
}

// History returns the caller's payments, newest first
func (s *PaymentService) History(ctx context.Context, identity, email string) ([]*models.Payment, error) {
	if err := s.authzService.ValidateSelf(identity, email); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	return payments, nil
}

// Enrollments returns the classes the caller has paid for, newest payment first
func (s *PaymentService) Enrollments(ctx context.Context, identity, email string) ([]*models.Enrollment, error) {
	if err := s.authzService.ValidateSelf(identity, email); err != nil {
		return nil, err
	}

	enrollments, err := s.paymentRepo.ListEnrollments(ctx, email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to resolve enrolled classes", err)
	}
	return enrollments, nil
}
