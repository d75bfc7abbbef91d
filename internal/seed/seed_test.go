package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockBootstrapper struct {
	mock.Mock
}

func (m *mockBootstrapper) BootstrapAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()

	t.Run("empty email is a no-op", func(t *testing.T) {
		users := new(mockBootstrapper)
		assert.NoError(t, CreateDefaultData(ctx, users, "  ", zerolog.Nop()))
		users.AssertNotCalled(t, "BootstrapAdmin", mock.Anything, mock.Anything)
	})

	t.Run("trims and bootstraps", func(t *testing.T) {
		users := new(mockBootstrapper)
		users.On("BootstrapAdmin", ctx, "root@example.com").Return(true, nil).Once()

		assert.NoError(t, CreateDefaultData(ctx, users, " root@example.com ", zerolog.Nop()))
		users.AssertExpectations(t)
	})

	t.Run("propagates failures", func(t *testing.T) {
		users := new(mockBootstrapper)
		boom := errors.New("db down")
		users.On("BootstrapAdmin", ctx, "root@example.com").Return(false, boom).Once()

		err := CreateDefaultData(ctx, users, "root@example.com", zerolog.Nop())
		assert.ErrorIs(t, err, boom)
	})
}
