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

// Popular listing bounds
const (
	DefaultPopularLimit = 6
	MaxPopularLimit     = 50
)

// ClassService handles class offering operations
type ClassService struct {
	classRepo    repositories.ClassStore
	authzService *appAuth.AuthorizationService
	logger       zerolog.Logger
}

// NewClassService creates a new ClassService
func NewClassService(classRepo repositories.ClassStore, authzService *appAuth.AuthorizationService, logger zerolog.Logger) *ClassService {
	return &ClassService{
		classRepo:    classRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// List returns every class, optionally only those in status
func (s *ClassService) List(ctx context.Context, status string) ([]*models.ClassOffering, error) {
	filter := repositories.ClassFilter{}
	if strings.TrimSpace(status) != "" {
		parsed, ok := models.ParseClassStatus(status)
		if !ok {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
		}
		filter.Status = parsed
	}

	classes, err := s.classRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	return classes, nil
}

// ListPopular returns approved classes by enrollment. Out-of-range limits are clamped.
func (s *ClassService) ListPopular(ctx context.Context, limit int) ([]*models.ClassOffering, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	if limit > MaxPopularLimit {
		limit = MaxPopularLimit
	}

	classes, err := s.classRepo.ListPopular(ctx, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("error listing popular classes: %w", err)
	}
	return classes, nil
}

// ListByInstructor returns the classes submitted by email. Only that instructor may ask.
func (s *ClassService) ListByInstructor(ctx context.Context, identity, email string) ([]*models.ClassOffering, error) {
	if err := s.authzService.ValidateSelf(identity, email); err != nil {
		return nil, err
	}

	classes, err := s.classRepo.List(ctx, repositories.ClassFilter{InstructorEmail: email})
	if err != nil {
		return nil, fmt.Errorf("error listing instructor classes: %w", err)
	}
	return classes, nil
}

// Create stores a class submitted by the instructor identity. New classes always await review.
func (s *ClassService) Create(ctx context.Context, identity, identityName string, req *dto.CreateClassRequest) (*dto.InsertResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("class name cannot be empty")
	}

	instructorName := strings.TrimSpace(req.InstructorName)
	if instructorName == "" {
		instructorName = identityName
	}

	class := &models.ClassOffering{
		Name:            name,
		Image:           strings.TrimSpace(req.Image),
		InstructorName:  instructorName,
		InstructorEmail: identity,
		Seats:           req.Seats,
		Price:           req.Price,
		Status:          models.ClassPending,
	}

	id, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("classID", id).Str("instructor", identity).Msg("Class submitted for review")
	result := dto.NewInsertResult(id)
	return &result, nil
}

// UpdateStatus records an admin review decision. Unknown ids report zero matches.
func (s *ClassService) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateClassStatusRequest) (*dto.UpdateResult, error) {
	status, ok := models.ParseClassStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, req.Status)
	}

	matched, err := s.classRepo.UpdateStatus(ctx, id, status, strings.TrimSpace(req.Feedback))
	if err != nil {
		return nil, fmt.Errorf("error updating class status: %w", err)
	}

	s.logger.Info().Int64("classID", id).Str("status", string(status)).Int64("matched", matched).Msg("Class status updated")
	result := dto.NewUpdateResult(matched, matched)
	return &result, nil
}
