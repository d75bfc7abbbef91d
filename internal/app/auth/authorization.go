package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/app/repositories"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/logger"
)

// AuthorizationService answers role and ownership questions about an authenticated identity
type AuthorizationService struct {
	userRepo repositories.UserStore
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.UserStore) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
	}
}

// HasRole reports whether the user registered under email may act with role.
// It performs exactly one store lookup. An unknown email holds no role.
func (s *AuthorizationService) HasRole(ctx context.Context, email string, role models.RoleType) (bool, error) {
	if email == "" {
		return false, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		logger.Error().Err(err).Str("email", email).Msg("Error getting user in HasRole")
		return false, fmt.Errorf("failed to check user role: %w", err)
	}

	return user.Role.HasRole(role), nil
}

// IsAdmin reports whether email belongs to an admin
func (s *AuthorizationService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.HasRole(ctx, email, models.RoleAdmin)
}

// IsInstructor reports whether email holds exactly the instructor role
func (s *AuthorizationService) IsInstructor(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		logger.Error().Err(err).Str("email", email).Msg("Error getting user in IsInstructor")
		return false, fmt.Errorf("failed to check user role: %w", err)
	}

	return user.IsInstructor(), nil
}

// ValidateRole returns a permission error unless email may act with role.
// Store failures are returned as they are, so callers can tell them from a refusal.
func (s *AuthorizationService) ValidateRole(ctx context.Context, email string, role models.RoleType) error {
	ok, err := s.HasRole(ctx, email, role)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	switch role {
	case models.RoleAdmin:
		return apperrors.NewForbiddenError("only admins can perform this action")
	case models.RoleInstructor:
		return apperrors.NewForbiddenError("only instructors can perform this action")
	default:
		return apperrors.ErrPermissionDenied
	}
}

// ValidateSelf checks that the authenticated identity is the owner named by email
func (s *AuthorizationService) ValidateSelf(identity, email string) error {
	if identity == "" {
		return apperrors.ErrUnauthorized
	}
	if identity != email {
		return apperrors.NewForbiddenError("you can only access your own resources")
	}
	return nil
}
