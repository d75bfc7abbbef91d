package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/pkg/apperrors"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	insertSQL := `INSERT INTO users \(email,name,photo_url,role_type\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(email\) DO NOTHING RETURNING id`

	t.Run("new email is inserted with role none", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewUserRepository(mock)

		mock.ExpectQuery(insertSQL).
			WithArgs("a@x.io", "A", "", models.RoleNone).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

		id, created, err := repo.CreateIfAbsent(ctx, &models.User{Email: "a@x.io", Name: "A"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(7), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing email is left untouched", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewUserRepository(mock)

		mock.ExpectQuery(insertSQL).
			WithArgs("a@x.io", "Other", "", models.RoleNone).
			WillReturnError(pgx.ErrNoRows)

		id, created, err := repo.CreateIfAbsent(ctx, &models.User{Email: "a@x.io", Name: "Other"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	query := `SELECT id, email, name, photo_url, role_type, created_at FROM users WHERE email = \$1 LIMIT 1`

	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewUserRepository(mock)
		now := time.Now()

		mock.ExpectQuery(query).
			WithArgs("boss@x.io").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(int64(1), "boss@x.io", "Boss", "", models.RoleAdmin, now))

		user, err := repo.GetByEmail(ctx, "boss@x.io")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.Equal(t, now, user.CreatedAt)
	})

	t.Run("missing maps to ErrUserNotFound", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewUserRepository(mock)

		mock.ExpectQuery(query).WithArgs("ghost@x.io").WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByEmail(ctx, "ghost@x.io")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_SetRole(t *testing.T) {
	ctx := context.Background()

	t.Run("reports matched rows", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewUserRepository(mock)

		mock.ExpectExec(`UPDATE users SET role_type = \$1 WHERE id = \$2`).
			WithArgs(models.RoleInstructor, int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		matched, err := repo.SetRole(ctx, 3, models.RoleInstructor)
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	})

	t.Run("unknown id matches nothing", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewUserRepository(mock)

		mock.ExpectExec(`UPDATE users SET role_type = \$1 WHERE id = \$2`).
			WithArgs(models.RoleAdmin, int64(404)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		matched, err := repo.SetRole(ctx, 404, models.RoleAdmin)
		require.NoError(t, err)
		assert.Zero(t, matched)
	})

	t.Run("by email", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewUserRepository(mock)

		mock.ExpectExec(`UPDATE users SET role_type = \$1 WHERE email = \$2`).
			WithArgs(models.RoleAdmin, "root@x.io").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		matched, err := repo.SetRoleByEmail(ctx, "root@x.io", models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
