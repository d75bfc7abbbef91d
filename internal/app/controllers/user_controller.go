package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/app/services"
	"github.com/yigit/classbook/internal/middleware"
	"github.com/yigit/classbook/internal/pkg/apperrors"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers returns every user
// @Summary List users
// @Description Returns every registered user. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User "Users"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetMe returns the caller's own user record
// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not registered"
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetProfile(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// CreateUser registers the caller
// @Summary Register user
// @Description Creates the caller's user record with role "none". An existing email is reported, never modified.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User profile"
// @Success 200 {object} dto.InsertResult "User created"
// @Success 200 {object} dto.MessageResponse "User Already Exists"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Email does not match the token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.userService.Register(ctx.Request.Context(), identity, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			ctx.JSON(http.StatusOK, dto.MessageResponse{Message: apperrors.ErrUserAlreadyExists.Error()})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// CheckAdmin reports whether the caller is an admin
// @Summary Admin check
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {object} dto.AdminCheckResponse "Check result"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Email does not match the token"
// @Router /users/admin/{email} [get]
func (c *UserController) CheckAdmin(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	isAdmin, err := c.userService.IsAdmin(ctx.Request.Context(), identity, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminCheckResponse{Admin: isAdmin})
}

// CheckInstructor reports whether email belongs to an instructor
// @Summary Instructor check
// @Tags users
// @Produce json
// @Param email path string true "Email to check"
// @Success 200 {object} dto.InstructorCheckResponse "Check result"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/instructor/{email} [get]
func (c *UserController) CheckInstructor(ctx *gin.Context) {
	isInstructor, err := c.userService.IsInstructor(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InstructorCheckResponse{Instructor: isInstructor})
}

// MakeAdmin grants the admin role to user id
// @Summary Promote to admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.UpdateResult "Update result"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Router /users/admin/{id} [patch]
func (c *UserController) MakeAdmin(ctx *gin.Context) {
	c.setRole(ctx, string(models.RoleAdmin))
}

// MakeInstructor grants the instructor role to user id
// @Summary Promote to instructor
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.UpdateResult "Update result"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Router /users/instructor/{id} [patch]
func (c *UserController) MakeInstructor(ctx *gin.Context) {
	c.setRole(ctx, string(models.RoleInstructor))
}

// SetRole sets the role of user id
// @Summary Set user role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.SetRoleRequest true "New role: none, instructor or admin"
// @Success 200 {object} dto.UpdateResult "Update result"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or role"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Router /users/{id}/role [patch]
func (c *UserController) SetRole(ctx *gin.Context) {
	var req dto.SetRoleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.setRole(ctx, req.Role)
}

func (c *UserController) setRole(ctx *gin.Context, role string) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	result, err := c.userService.SetRole(ctx.Request.Context(), id, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
