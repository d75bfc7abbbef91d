package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/pkg/apperrors"
)

func TestClassCreate_ForcesPendingAndOwner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	res, err := f.classes.Create(ctx, "teach@x.io", "Tia", &dto.CreateClassRequest{Name: "Spin", Seats: 12, Price: 15})
	require.NoError(t, err)

	class, err := memClasses{f.store}.GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, models.ClassPending, class.Status)
	assert.Equal(t, "teach@x.io", class.InstructorEmail)
	assert.Equal(t, "Tia", class.InstructorName)

	mine, err := f.classes.ListByInstructor(ctx, "teach@x.io", "teach@x.io")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = f.classes.ListByInstructor(ctx, "other@x.io", "teach@x.io")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestClassCreate_BlankName(t *testing.T) {
	f := newFixture()

	_, err := f.classes.Create(context.Background(), "teach@x.io", "Tia", &dto.CreateClassRequest{Name: "  ", Seats: 12})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "class name cannot be empty")
	assert.Empty(t, f.store.classes)
}

func TestClassUpdateStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	class := f.seedClass("Spin", 15, models.ClassPending)

	res, err := f.classes.UpdateStatus(ctx, class.ID, &dto.UpdateClassStatusRequest{Status: "denied", Feedback: "needs a description"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, "needs a description", class.Feedback)

	_, err = f.classes.UpdateStatus(ctx, class.ID, &dto.UpdateClassStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	res, err = f.classes.UpdateStatus(ctx, 999, &dto.UpdateClassStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)
}

func TestClassList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.seedClass("A", 10, models.ClassApproved)
	f.seedClass("B", 10, models.ClassPending)
	busy := f.seedClass("C", 10, models.ClassApproved)
	busy.Enrolled = 5

	approved, err := f.classes.List(ctx, "approved")
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	all, err := f.classes.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = f.classes.List(ctx, "bogus")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	popular, err := f.classes.ListPopular(ctx, 0)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, busy.ID, popular[0].ID)
}
