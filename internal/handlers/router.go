package handlers

import (
	"little_lemon/internal/middleware"
	"little_lemon/internal/models"
	"little_lemon/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Users   services.UserService
	Auth    services.AuthService
	Staff   services.StaffService
	Catalog services.CatalogService
	Cart    services.CartService
	Orders  services.OrderService
}

func NewRouter(svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.CORS())

	authHandler := NewAuthHandler(svc.Users, svc.Auth)
	catalogHandler := NewCatalogHandler(svc.Catalog)
	cartHandler := NewCartHandler(svc.Cart)
	orderHandler := NewOrderHandler(svc.Orders)
	managers := NewStaffHandler(models.GroupManager, svc.Staff)
	deliveryCrew := NewStaffHandler(models.GroupDeliveryCrew, svc.Staff)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.Authenticate(svc.Auth))
	{
		api.POST("/users", authHandler.Register)
		api.POST("/token", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireLogin())
	{
		protected.GET("/users/me", authHandler.Me)
		protected.POST("/token/revoke", authHandler.Logout)

		protected.GET("/category", catalogHandler.ListCategories)
		protected.POST("/category", catalogHandler.CreateCategory)
		protected.GET("/category/:id", catalogHandler.GetCategory)
		protected.PUT("/category/:id", catalogHandler.UpdateCategory)
		protected.PATCH("/category/:id", catalogHandler.UpdateCategory)
		protected.DELETE("/category/:id", catalogHandler.DeleteCategory)

		protected.GET("/menu-items", catalogHandler.ListMenuItems)
		protected.POST("/menu-items", catalogHandler.CreateMenuItem)
		protected.GET("/menu-items/:id", catalogHandler.GetMenuItem)
		protected.PUT("/menu-items/:id", catalogHandler.UpdateMenuItem)
		protected.PATCH("/menu-items/:id", catalogHandler.UpdateMenuItem)
		protected.DELETE("/menu-items/:id", catalogHandler.DeleteMenuItem)

		protected.GET("/cart/menu-items", cartHandler.ListCart)
		protected.POST("/cart/menu-items", cartHandler.AddToCart)
		protected.DELETE("/cart/menu-items", cartHandler.ClearCart)

		protected.GET("/orders", orderHandler.ListOrders)
		protected.POST("/orders", orderHandler.CreateOrder)
		protected.GET("/orders/:id", orderHandler.GetOrder)
		protected.PUT("/orders/:id", orderHandler.UpdateOrder)
		protected.PATCH("/orders/:id", orderHandler.UpdateOrder)
		protected.DELETE("/orders/:id", orderHandler.DeleteOrder)

		protected.GET("/groups/manager/users", managers.ListMembers)
		protected.POST("/groups/manager/users", managers.AddMember)
		protected.DELETE("/groups/manager/users/:id", managers.RemoveMember)

		protected.GET("/groups/delivery-crew/users", deliveryCrew.ListMembers)
		protected.POST("/groups/delivery-crew/users", deliveryCrew.AddMember)
		protected.DELETE("/groups/delivery-crew/users/:id", deliveryCrew.RemoveMember)
	}

	return router
}
