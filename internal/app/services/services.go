package services

import (
	"context"

	"github.com/yigit/classbook/internal/pkg/payments"
)

// Services defined in this package:
// - AuthService: issues bearer tokens
// - UserService: signup, role checks and role changes
// - ClassService: class listings, submission and review
// - CatalogService: instructor and review listings
// - CartService: the caller's staged classes
// - PaymentService: payment intents, checkout recording and enrollments

// PaymentProcessor creates payment intents with an external processor
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount int64) (*payments.Intent, error)
	Currency() string
}
