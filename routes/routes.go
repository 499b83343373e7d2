package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/refresh", handlers.Refresh)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Catalog
		auth.GET("/restaurants", handlers.ListRestaurants)
		auth.GET("/restaurants/:id", handlers.GetRestaurant)
		auth.GET("/restaurants/:id/menu", handlers.GetMenu)

		// Orders
		auth.POST("/orders", handlers.CreateOrder)
		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
	}

	// Status updates are owner-only; the role gate runs before the order
	// is even loaded.
	r.PATCH("/api/orders/:id/status",
		middleware.AuthRequired(),
		middleware.RoleRequired(models.RoleRestaurantOwner),
		handlers.UpdateOrderStatus,
	)

	// ── Restaurant owner routes ────────────────────────────────────
	owner := r.Group("/api/restaurant")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurantOwner))
	{
		owner.POST("", handlers.CreateRestaurant)
		owner.GET("", handlers.GetMyRestaurant)
		owner.PUT("", handlers.UpdateRestaurant)

		owner.POST("/menu", handlers.AddMenuItem)
		owner.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		owner.DELETE("/menu/:itemId", handlers.DeleteMenuItem)
	}
}
