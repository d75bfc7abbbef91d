package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/app/services"
	"github.com/yigit/classbook/internal/middleware"
)

// ClassController handles class offering endpoints
type ClassController struct {
	classService *services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService *services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// ListClasses lists classes
// @Summary List classes
// @Tags classes
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, denied)
// @Success 200 {array} models.ClassOffering "Classes"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	classes, err := c.classService.List(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// ListPopularClasses lists approved classes by enrollment
// @Summary Popular classes
// @Tags classes
// @Produce json
// @Param limit query int false "Maximum number of classes" default(6)
// @Success 200 {array} models.ClassOffering "Classes"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Router /classes/popular [get]
func (c *ClassController) ListPopularClasses(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit").WithField("limit")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	classes, err := c.classService.ListPopular(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// ListInstructorClasses lists the caller's submitted classes
// @Summary Instructor's classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param email path string true "Instructor email"
// @Success 200 {array} models.ClassOffering "Classes"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Email does not match the token"
// @Router /classes/instructor/{email} [get]
func (c *ClassController) ListInstructorClasses(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	classes, err := c.classService.ListByInstructor(ctx.Request.Context(), identity, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// CreateClass submits a class for review
// @Summary Submit class
// @Description Stores a class owned by the calling instructor. New classes start pending.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class"
// @Success 201 {object} dto.InsertResult "Class created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Instructor role required"
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	var identityName string
	if claims, ok := middleware.GetClaims(ctx); ok {
		identityName = claims.Name
	}

	result, err := c.classService.Create(ctx.Request.Context(), identity, identityName, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// UpdateClassStatus records an admin review decision
// @Summary Review class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body dto.UpdateClassStatusRequest true "New status and optional feedback"
// @Success 200 {object} dto.UpdateResult "Update result"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or status"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Router /classes/{id}/status [patch]
func (c *ClassController) UpdateClassStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.classService.UpdateStatus(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
