package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/app/services"
	"github.com/yigit/classbook/internal/middleware"
)

// CartController handles the caller's cart
type CartController struct {
	cartService *services.CartService
}

// NewCartController creates a new CartController
func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// ListCart returns the caller's cart items
// @Summary List cart
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param email query string false "Cart owner, must be the caller"
// @Success 200 {array} models.CartItem "Cart items"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Email does not match the token"
// @Router /carts [get]
func (c *CartController) ListCart(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	items, err := c.cartService.List(ctx.Request.Context(), identity, ctx.Query("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// AddToCart stages a class in the caller's cart
// @Summary Add to cart
// @Tags carts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddCartItemRequest true "Cart item"
// @Success 200 {object} dto.InsertResult "Cart item created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Email does not match the token"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /carts [post]
func (c *CartController) AddToCart(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.cartService.Add(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// RemoveFromCart deletes one of the caller's cart items
// @Summary Remove from cart
// @Description Deleting an unknown item, or one owned by someone else, reports deletedCount 0.
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart item ID"
// @Success 200 {object} dto.DeleteResult "Delete result"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /carts/{id} [delete]
func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	result, err := c.cartService.Remove(ctx.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

