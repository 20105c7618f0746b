package routes

import (
	"github.com/gin-gonic/gin"

	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog browsing (no auth needed)
		public.GET("/food-items", handlers.ListFoodItems)
		public.GET("/food-items/:id", handlers.GetFoodItem)
		public.GET("/restaurants", handlers.ListRestaurants)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile", handlers.UpdateProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", handlers.Checkout)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
	}

	// ── Restaurant routes ──────────────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		// Menu management
		restaurant.GET("/menu", handlers.GetMyFoodItems)
		restaurant.POST("/menu", handlers.AddFoodItem)
		restaurant.PUT("/menu/:itemId", handlers.UpdateFoodItem)
		restaurant.DELETE("/menu/:itemId", handlers.DeleteFoodItem)

		// Order fulfillment
		restaurant.GET("/orders", handlers.GetRestaurantOrders)
		restaurant.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		// Payment verification
		restaurant.GET("/payments", handlers.GetRestaurantPayments)
		restaurant.PUT("/payments/:paymentId/verify", handlers.RestaurantVerifyPayment)
		restaurant.PUT("/payments/:paymentId/reject", handlers.RestaurantRejectPayment)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		// Account moderation
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.PUT("/users/:id/approve", handlers.ApproveRestaurant)
		admin.PUT("/users/:id/suspend", handlers.SuspendUser)
		admin.PUT("/users/:id/activate", handlers.ActivateUser)
		admin.DELETE("/users/:id", handlers.AdminDeleteAccount)

		// Oversight
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.GET("/payments", handlers.AdminGetAllPayments)
		admin.PUT("/payments/:paymentId/verify", handlers.AdminVerifyPayment)
		admin.PUT("/payments/:paymentId/reject", handlers.AdminRejectPayment)

		// Two-step deletion for food items and orders
		admin.POST("/deletions", handlers.StageDeletion)
		admin.POST("/deletions/confirm", handlers.ConfirmDeletion)
		admin.DELETE("/deletions", handlers.UndoDeletion)
	}
}
