package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/auth"
)

// AuthService handles token issuance
type AuthService struct {
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		jwtService: jwtService,
		logger:     logger,
	}
}

// IssueToken signs a bearer token asserting the identity in req. No credential is checked and
// no user record is required.
func (s *AuthService) IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	token, expiresAt, err := s.jwtService.GenerateToken(email, strings.TrimSpace(req.Name))
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Failed to sign token")
		return nil, err
	}

	s.logger.Debug().Str("email", email).Time("expiresAt", expiresAt).Msg("Token issued")
	return &dto.TokenResponse{Token: token}, nil
}
