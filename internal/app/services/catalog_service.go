package services

import (
	"context"
	"fmt"

	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/app/repositories"
)

// CatalogService defines the read-only instructor and review listings
type CatalogService interface {
	ListInstructors(ctx context.Context) ([]*models.Instructor, error)
	ListReviews(ctx context.Context) ([]*models.Review, error)
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	catalogRepo repositories.CatalogStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo repositories.CatalogStore) CatalogService {
	return &catalogServiceImpl{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogServiceImpl) ListInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.catalogRepo.ListInstructors(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing instructors: %w", err)
	}
	return instructors, nil
}

func (s *catalogServiceImpl) ListReviews(ctx context.Context) ([]*models.Review, error) {
	reviews, err := s.catalogRepo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	return reviews, nil
}
