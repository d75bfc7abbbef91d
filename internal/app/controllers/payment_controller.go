package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/app/services"
	"github.com/yigit/classbook/internal/middleware"
)

// PaymentController handles checkout and enrollment endpoints
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreatePaymentIntent creates a processor payment intent
// @Summary Create payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PaymentIntentRequest true "Decimal price"
// @Success 200 {object} dto.PaymentIntentResponse "Client secret"
// @Failure 400 {object} dto.ErrorResponse "Missing or non-positive price"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 502 {object} dto.ErrorResponse "Payment processor unavailable"
// @Router /create-payment-intent [post]
func (c *PaymentController) CreatePaymentIntent(ctx *gin.Context) {
	var req dto.PaymentIntentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.paymentService.CreatePaymentIntent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RecordPayment stores the caller's completed payment
// @Summary Record payment
// @Description Stores the payment, counts the enrollment and removes the paid cart item in one transaction.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} dto.RecordPaymentResponse "Insert and delete results"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Email does not match the token"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /payments [post]
func (c *PaymentController) RecordPayment(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.paymentService.RecordPayment(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListPayments returns the caller's payment history
// @Summary Payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {array} models.Payment "Payments, newest first"
// @Failure 403 {object} dto.ErrorResponse "Email does not match the token"
// @Router /payments/{email} [get]
func (c *PaymentController) ListPayments(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	payments, err := c.paymentService.History(ctx.Request.Context(), identity, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payments)
}

// ListEnrolledClasses resolves the caller's enrollments
// @Summary Enrolled classes
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {array} models.Enrollment "Enrollments, newest payment first"
// @Failure 403 {object} dto.ErrorResponse "Email does not match the token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/enrolled-classes/{email} [get]
func (c *PaymentController) ListEnrolledClasses(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	enrollments, err := c.paymentService.Enrollments(ctx.Request.Context(), identity, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollments)
}
