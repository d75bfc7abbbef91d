package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/pkg/apperrors"
)

const (
	enrollSQL        = `UPDATE classes SET enrolled = enrolled \+ 1 WHERE id = \$1`
	insertPaymentSQL = `INSERT INTO payments \(email,class_id,cart_item_id,transaction_id,amount,currency\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) RETURNING id, created_at`
	deleteCartSQL    = `DELETE FROM carts WHERE email = \$1 AND id = \$2`
)

func TestPaymentRepository_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("enrolls, inserts and clears the cart item", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPaymentRepository(mock)
		cartItemID := int64(3)
		now := time.Now()
		payment := &models.Payment{
			Email: "a@x.io", ClassID: 7, CartItemID: &cartItemID,
			TransactionID: "pi_1", Amount: 20, Currency: "usd",
		}

		mock.ExpectBegin()
		mock.ExpectExec(enrollSQL).WithArgs(int64(7)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(insertPaymentSQL).
			WithArgs("a@x.io", int64(7), &cartItemID, "pi_1", 20.0, "usd").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))
		mock.ExpectExec(deleteCartSQL).WithArgs("a@x.io", int64(3)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		deleted, err := repo.Record(ctx, payment)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
		assert.Equal(t, int64(11), payment.ID)
		assert.Equal(t, now, payment.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no cart item skips the delete", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPaymentRepository(mock)
		payment := &models.Payment{Email: "a@x.io", ClassID: 7, TransactionID: "pi_2", Amount: 20, Currency: "usd"}

		mock.ExpectBegin()
		mock.ExpectExec(enrollSQL).WithArgs(int64(7)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(insertPaymentSQL).
			WithArgs("a@x.io", int64(7), (*int64)(nil), "pi_2", 20.0, "usd").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), time.Now()))
		mock.ExpectCommit()

		deleted, err := repo.Record(ctx, payment)
		require.NoError(t, err)
		assert.Zero(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown class rolls back", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPaymentRepository(mock)
		payment := &models.Payment{Email: "a@x.io", ClassID: 99, TransactionID: "pi_3", Amount: 5, Currency: "usd"}

		mock.ExpectBegin()
		mock.ExpectExec(enrollSQL).WithArgs(int64(99)).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		_, err := repo.Record(ctx, payment)
		assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_ListEnrollments(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock)
	newer := time.Now()
	older := newer.Add(-time.Hour)
	noCart := (*int64)(nil)

	columns := []string{
		"id", "email", "class_id", "cart_item_id", "transaction_id", "amount", "currency", "created_at",
		"id", "name", "image", "instructor_name", "instructor_email",
		"seats", "enrolled", "price", "status", "feedback", "created_at",
	}
	mock.ExpectQuery(`SELECT (.+) FROM payments p JOIN classes c ON c.id = p.class_id WHERE p.email = \$1 ORDER BY p.created_at DESC, p.id DESC`).
		WithArgs("a@x.io").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(2), "a@x.io", int64(8), noCart, "pi_b", 30.0, "usd", newer,
				int64(8), "Pilates", "", "Ann", "ann@x.io", 10, 3, 30.0, models.ClassApproved, "", older).
			AddRow(int64(1), "a@x.io", int64(7), noCart, "pi_a", 20.0, "usd", older,
				int64(7), "Yoga", "", "Ann", "ann@x.io", 10, 1, 20.0, models.ClassApproved, "", older))

	enrollments, err := repo.ListEnrollments(context.Background(), "a@x.io")
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	assert.Equal(t, int64(8), enrollments[0].Class.ID)
	assert.Equal(t, enrollments[0].Payment.ClassID, enrollments[0].Class.ID)
	assert.True(t, enrollments[0].Payment.CreatedAt.After(enrollments[1].Payment.CreatedAt))
}
