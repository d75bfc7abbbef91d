package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/classbook/internal/app/controllers"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	systemController *controllers.SystemController,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	classController *controllers.ClassController,
	userController *controllers.UserController,
	cartController *controllers.CartController,
	paymentController *controllers.PaymentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/", systemController.Root)
	router.GET("/health", systemController.Health)

	// --- Public routes ---
	router.POST("/jwt", authController.IssueToken)
	router.GET("/instructor", catalogController.ListInstructors)
	router.GET("/reviews", catalogController.ListReviews)
	router.GET("/classes", classController.ListClasses)
	router.GET("/classes/popular", classController.ListPopularClasses)
	router.GET("/users/instructor/:email", userController.CheckInstructor)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/classes/instructor/:email", classController.ListInstructorClasses)

		authenticated.GET("/users/me", userController.GetMe)
		authenticated.POST("/users", userController.CreateUser)
		authenticated.GET("/users/admin/:email", userController.CheckAdmin)

		carts := authenticated.Group("/carts")
		{
			carts.GET("", cartController.ListCart)
			carts.POST("", cartController.AddToCart)
			carts.DELETE("/:id", cartController.RemoveFromCart)
		}

		authenticated.POST("/create-payment-intent", paymentController.CreatePaymentIntent)
		authenticated.POST("/payments", paymentController.RecordPayment)
		authenticated.GET("/payments/:email", paymentController.ListPayments)
		authenticated.GET("/api/enrolled-classes/:email", paymentController.ListEnrolledClasses)

		// Instructor-only routes
		instructorOnly := authenticated.Group("")
		instructorOnly.Use(authMiddleware.RoleRequired(models.RoleInstructor))
		{
			instructorOnly.POST("/classes", classController.CreateClass)
		}

		// Admin-only routes
		adminOnly := authenticated.Group("")
		adminOnly.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminOnly.GET("/users", userController.ListUsers)
			adminOnly.PATCH("/users/admin/:id", userController.MakeAdmin)
			adminOnly.PATCH("/users/instructor/:id", userController.MakeInstructor)
			adminOnly.PATCH("/users/:id/role", userController.SetRole)
			adminOnly.PATCH("/classes/:id/status", classController.UpdateClassStatus)
			adminOnly.PATCH("/classes/status/:id", classController.UpdateClassStatus)
		}
	}

	router.NoRoute(middleware.NotFound())
}
