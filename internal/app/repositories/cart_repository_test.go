package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/pkg/apperrors"
)

func TestCartRepository_ListByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCartRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, email, class_id, name, image, price, created_at FROM carts WHERE email = \$1 ORDER BY created_at ASC, id ASC`).
		WithArgs("a@x.io").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "class_id", "name", "image", "price", "created_at"}).
			AddRow(int64(1), "a@x.io", int64(7), "Yoga", "", 20.0, now).
			AddRow(int64(2), "a@x.io", int64(8), "Pilates", "", 25.5, now))

	items, err := repo.ListByEmail(context.Background(), "a@x.io")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "a@x.io", item.Email)
	}
	assert.Equal(t, 25.5, items[1].Price)
}

func TestCartRepository_Create(t *testing.T) {
	insertSQL := `INSERT INTO carts \(email,class_id,name,image,price\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`
	item := &models.CartItem{Email: "a@x.io", ClassID: 7, Name: "Yoga", Price: 20}

	t.Run("returns id", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewCartRepository(mock)

		mock.ExpectQuery(insertSQL).
			WithArgs("a@x.io", int64(7), "Yoga", "", 20.0).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

		id, err := repo.Create(context.Background(), item)
		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
	})

	t.Run("dangling class maps to ErrClassNotFound", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewCartRepository(mock)

		mock.ExpectQuery(insertSQL).
			WithArgs("a@x.io", int64(7), "Yoga", "", 20.0).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err := repo.Create(context.Background(), item)
		assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
	})
}

func TestCartRepository_DeleteOwned(t *testing.T) {
	deleteSQL := `DELETE FROM carts WHERE email = \$1 AND id = \$2`

	tests := []struct {
		name     string
		affected int64
	}{
		{name: "owned item is removed", affected: 1},
		{name: "unknown or foreign item deletes nothing", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewCartRepository(mock)

			mock.ExpectExec(deleteSQL).
				WithArgs("a@x.io", int64(5)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			deleted, err := repo.DeleteOwned(context.Background(), 5, "a@x.io")
			require.NoError(t, err)
			assert.Equal(t, tt.affected, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
