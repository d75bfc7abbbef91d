package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classbook/internal/app/services"
	"github.com/yigit/classbook/internal/middleware"
)

// CatalogController serves the public instructor and review listings
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListInstructors godoc
// @Summary List instructors
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Instructor "Instructors"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor [get]
func (c *CatalogController) ListInstructors(ctx *gin.Context) {
	instructors, err := c.catalogService.ListInstructors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, instructors)
}

// ListReviews godoc
// @Summary List reviews
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Review "Reviews"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [get]
func (c *CatalogController) ListReviews(ctx *gin.Context) {
	reviews, err := c.catalogService.ListReviews(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}
