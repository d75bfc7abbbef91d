// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/app/services"
	"github.com/yigit/classbook/internal/middleware"
)

// AuthController handles token issuance
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// IssueToken exchanges an identity payload for a bearer token
// @Summary Issue a bearer token
// @Description Signs a one-hour token asserting the given email. Attach it as "Authorization: Bearer <token>".
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Identity payload"
// @Success 200 {object} dto.TokenResponse "Signed token"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jwt [post]
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if !middleware.BindJSON(ctx, &req) {
		c.logger.Debug().Msg("Rejected token request payload")
		return
	}

	resp, err := c.authService.IssueToken(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
