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
)

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetProfile(ctx context.Context, email string) (*models.User, error)
	Register(ctx context.Context, identity string, req *dto.CreateUserRequest) (*dto.InsertResult, error)
	IsAdmin(ctx context.Context, identity, email string) (bool, error)
	IsInstructor(ctx context.Context, email string) (bool, error)
	SetRole(ctx context.Context, id int64, role string) (*dto.UpdateResult, error)
	BootstrapAdmin(ctx context.Context, email string) (created bool, err error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo     repositories.UserStore
	authzService *appAuth.AuthorizationService
	logger       zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.UserStore,
	authzService *appAuth.AuthorizationService,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:     userRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// ListUsers returns every registered user
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// GetProfile returns the user registered under email
func (s *userServiceImpl) GetProfile(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// Register creates the caller's user record unless one already exists. Existing records are
// never modified and a new user always starts with role none.
func (s *userServiceImpl) Register(ctx context.Context, identity string, req *dto.CreateUserRequest) (*dto.InsertResult, error) {
	email := strings.TrimSpace(req.Email)
	if err := s.authzService.ValidateSelf(identity, email); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Name:     strings.TrimSpace(req.Name),
		PhotoURL: strings.TrimSpace(req.PhotoURL),
		Role:     models.RoleNone,
	}

	id, created, err := s.userRepo.CreateIfAbsent(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error registering user: %w", err)
	}
	if !created {
		return nil, apperrors.ErrUserAlreadyExists
	}

	s.logger.Info().Str("email", email).Int64("userID", id).Msg("User registered")
	result := dto.NewInsertResult(id)
	return &result, nil
}

// IsAdmin answers the admin check for email. Only the owner of email may ask.
func (s *userServiceImpl) IsAdmin(ctx context.Context, identity, email string) (bool, error) {
	if err := s.authzService.ValidateSelf(identity, email); err != nil {
		return false, err
	}
	return s.authzService.IsAdmin(ctx, email)
}

// IsInstructor answers the public instructor check for email
func (s *userServiceImpl) IsInstructor(ctx context.Context, email string) (bool, error) {
	return s.authzService.IsInstructor(ctx, email)
}

// SetRole overwrites the role of user id. Unknown ids report zero matches.
func (s *userServiceImpl) SetRole(ctx context.Context, id int64, role string) (*dto.UpdateResult, error) {
	parsed, ok := models.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, role)
	}

	matched, err := s.userRepo.SetRole(ctx, id, parsed)
	if err != nil {
		return nil, fmt.Errorf("error updating role: %w", err)
	}

	s.logger.Info().Int64("userID", id).Str("role", string(parsed)).Int64("matched", matched).Msg("User role updated")
	result := dto.NewUpdateResult(matched, matched)
	return &result, nil
}

// BootstrapAdmin makes email an admin, creating the user first when needed
func (s *userServiceImpl) BootstrapAdmin(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, fmt.Errorf("%w: admin email cannot be empty", apperrors.ErrValidationFailed)
	}

	_, created, err := s.userRepo.CreateIfAbsent(ctx, &models.User{Email: email, Role: models.RoleNone})
	if err != nil {
		return false, fmt.Errorf("error creating admin user: %w", err)
	}

	if _, err := s.userRepo.SetRoleByEmail(ctx, email, models.RoleAdmin); err != nil {
		return created, fmt.Errorf("error granting admin role: %w", err)
	}

	s.logger.Info().Str("email", email).Bool("created", created).Msg("Admin bootstrapped")
	return created, nil
}
