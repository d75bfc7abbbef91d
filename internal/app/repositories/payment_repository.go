package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/db"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/logger"
)

var paymentColumns = []string{
	"id", "email", "class_id", "cart_item_id", "transaction_id", "amount", "currency", "created_at",
}

// PaymentRepository records checkouts and resolves enrollments
type PaymentRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(pool db.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: pool,
		sb: statementBuilder(),
	}
}

// Record stores payment in one transaction: the paid class gains an enrollment, the payment row
// is inserted and, when the payment names a cart item, that item of the payer is removed.
// payment.ID and payment.CreatedAt are filled in on success.
func (r *PaymentRepository) Record(ctx context.Context, payment *models.Payment) (int64, error) {
	var cartDeleted int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("classes").
			Set("enrolled", squirrel.Expr("enrolled + 1")).
			Where(squirrel.Eq{"id": payment.ClassID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build enroll query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error incrementing class enrollment: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrClassNotFound
		}

		sql, args, err = r.sb.Insert("payments").
			Columns("email", "class_id", "cart_item_id", "transaction_id", "amount", "currency").
			Values(payment.Email, payment.ClassID, payment.CartItemID, payment.TransactionID, payment.Amount, payment.Currency).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert payment query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&payment.ID, &payment.CreatedAt); err != nil {
			return fmt.Errorf("error inserting payment: %w", err)
		}

		if payment.CartItemID == nil {
			return nil
		}

		sql, args, err = r.sb.Delete("carts").
			Where(squirrel.Eq{"id": *payment.CartItemID, "email": payment.Email}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete cart item query: %w", err)
		}

		cmdTag, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error removing paid cart item: %w", err)
		}
		cartDeleted = cmdTag.RowsAffected()
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrClassNotFound) {
			logger.Error().Err(err).Str("email", payment.Email).Int64("classID", payment.ClassID).Msg("Error recording payment")
		}
		return 0, err
	}

	return cartDeleted, nil
}

// ListByEmail returns the payments of email, newest first
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	sql, args, err := r.sb.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"email": email}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error executing list payments query")
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.Email, &p.ClassID, &p.CartItemID, &p.TransactionID, &p.Amount, &p.Currency, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

// ListEnrollments joins the payments of email with the classes they paid for. Payments whose
// class no longer exists are left out.
func (r *PaymentRepository) ListEnrollments(ctx context.Context, email string) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"p.id", "p.email", "p.class_id", "p.cart_item_id", "p.transaction_id", "p.amount", "p.currency", "p.created_at",
		"c.id", "c.name", "c.image", "c.instructor_name", "c.instructor_email",
		"c.seats", "c.enrolled", "c.price", "c.status", "c.feedback", "c.created_at",
	).
		From("payments p").
		Join("classes c ON c.id = p.class_id").
		Where(squirrel.Eq{"p.email": email}).
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{}
		p, c := &e.Payment, &e.Class
		err := rows.Scan(
			&p.ID, &p.Email, &p.ClassID, &p.CartItemID, &p.TransactionID, &p.Amount, &p.Currency, &p.CreatedAt,
			&c.ID, &c.Name, &c.Image, &c.InstructorName, &c.InstructorEmail,
			&c.Seats, &c.Enrolled, &c.Price, &c.Status, &c.Feedback, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}
