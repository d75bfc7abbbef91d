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

func classRow(rows *pgxmock.Rows, id int64, status models.ClassStatus, enrolled int) *pgxmock.Rows {
	return rows.AddRow(id, "Class", "", "Ann", "ann@x.io", 10, enrolled, 20.0, status, "", time.Now())
}

func TestClassRepository_List(t *testing.T) {
	t.Run("status filter", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewClassRepository(mock)

		mock.ExpectQuery(`SELECT (.+) FROM classes WHERE status = \$1 ORDER BY id ASC`).
			WithArgs(models.ClassApproved).
			WillReturnRows(classRow(pgxmock.NewRows(classColumns), 1, models.ClassApproved, 0))

		classes, err := repo.List(context.Background(), ClassFilter{Status: models.ClassApproved})
		require.NoError(t, err)
		require.Len(t, classes, 1)
		assert.Equal(t, models.ClassApproved, classes[0].Status)
	})

	t.Run("instructor filter", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewClassRepository(mock)

		mock.ExpectQuery(`SELECT (.+) FROM classes WHERE instructor_email = \$1 ORDER BY id ASC`).
			WithArgs("ann@x.io").
			WillReturnRows(pgxmock.NewRows(classColumns))

		classes, err := repo.List(context.Background(), ClassFilter{InstructorEmail: "ann@x.io"})
		require.NoError(t, err)
		assert.Empty(t, classes)
		assert.NotNil(t, classes)
	})
}

func TestClassRepository_ListPopular(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClassRepository(mock)

	rows := pgxmock.NewRows(classColumns)
	classRow(rows, 2, models.ClassApproved, 9)
	classRow(rows, 1, models.ClassApproved, 4)
	mock.ExpectQuery(`SELECT (.+) FROM classes WHERE status = \$1 ORDER BY enrolled DESC, id ASC LIMIT 6`).
		WithArgs(models.ClassApproved).
		WillReturnRows(rows)

	classes, err := repo.ListPopular(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, 9, classes[0].Enrolled)
}

func TestClassRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClassRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM classes WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}

func TestClassRepository_UpdateStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClassRepository(mock)

	mock.ExpectExec(`UPDATE classes SET feedback = \$1, status = \$2 WHERE id = \$3`).
		WithArgs("too short", models.ClassDenied, int64(4)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	matched, err := repo.UpdateStatus(context.Background(), 4, models.ClassDenied, "too short")
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}
