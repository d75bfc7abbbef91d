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
)

// CartService manages the authenticated caller's cart
type CartService struct {
	cartRepo     repositories.CartStore
	classRepo    repositories.ClassStore
	authzService *appAuth.AuthorizationService
	logger       zerolog.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	cartRepo repositories.CartStore,
	classRepo repositories.ClassStore,
	authzService *appAuth.AuthorizationService,
	logger zerolog.Logger,
) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		classRepo:    classRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// List returns the cart of email. An empty email yields an empty cart; any other email must be
// the caller's own.
func (s *CartService) List(ctx context.Context, identity, email string) ([]*models.CartItem, error) {
	if strings.TrimSpace(email) == "" {
		return []*models.CartItem{}, nil
	}
	if err := s.authzService.ValidateSelf(identity, email); err != nil {
		return nil, err
	}

	items, err := s.cartRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing cart: %w", err)
	}
	return items, nil
}

// Add stages a class in the caller's cart. The item snapshots the class name, image and, unless
// the request names one, its price.
func (s *CartService) Add(ctx context.Context, identity string, req *dto.AddCartItemRequest) (*dto.InsertResult, error) {
	if req.Email != "" {
		if err := s.authzService.ValidateSelf(identity, req.Email); err != nil {
			return nil, err
		}
	}

	class, err := s.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}

	price := class.Price
	if req.Price != nil {
		price = *req.Price
	}

	item := &models.CartItem{
		Email:   identity,
		ClassID: class.ID,
		Name:    class.Name,
		Image:   class.Image,
		Price:   price,
	}

	id, err := s.cartRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("email", identity).Int64("classID", class.ID).Int64("cartItemID", id).Msg("Cart item added")
	result := dto.NewInsertResult(id)
	return &result, nil
}

// Remove deletes cart item id if the caller owns it. Anything else deletes nothing.
func (s *CartService) Remove(ctx context.Context, identity string, id int64) (*dto.DeleteResult, error) {
	deleted, err := s.cartRepo.DeleteOwned(ctx, id, identity)
	if err != nil {
		return nil, fmt.Errorf("error removing cart item: %w", err)
	}

	result := dto.NewDeleteResult(deleted)
	return &result, nil
}
