package router

import (
	"github.com/gin-gonic/gin"

	"github.com/thenitintundwal/table-tap-sub000/internal/handlers"
	"github.com/thenitintundwal/table-tap-sub000/internal/middleware"
	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

// SetupCafeRoutes sets up the platform cafe directory routes. Creating,
// updating and listing cafes is restricted to platform admins; owners can
// read their own cafe.
func SetupCafeRoutes(authenticatedGroup *gin.RouterGroup, cafeHandler *handlers.CafeHandler) {
	cafeRoutes := authenticatedGroup.Group("/cafes")
	{
		adminOnly := cafeRoutes.Group("")
		adminOnly.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminOnly.POST("", cafeHandler.CreateCafe)
			adminOnly.GET("", cafeHandler.GetCafes)
			adminOnly.PUT("/:id", cafeHandler.UpdateCafe)
			adminOnly.DELETE("/:id", cafeHandler.DeleteCafe)
		}

		readRoutes := cafeRoutes.Group("")
		readRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleOwner))
		{
			readRoutes.GET("/:id", cafeHandler.GetCafeByID)
		}
	}
}

// SetupMenuRoutes sets up the menu category and item routes.
func SetupMenuRoutes(authenticatedGroup *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	categoryRoutes := authenticatedGroup.Group("/menu-categories")
	categoryRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleOwner))
	{
		categoryRoutes.POST("", menuHandler.CreateCategory)
		categoryRoutes.GET("", menuHandler.GetCategories)
		categoryRoutes.DELETE("/:id", menuHandler.DeleteCategory)
	}

	itemRoutes := authenticatedGroup.Group("/menu-items")
	{
		readRoutes := itemRoutes.Group("")
		readRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleOwner, models.RoleStaff))
		{
			readRoutes.GET("", menuHandler.GetItems)
			readRoutes.GET("/:id", menuHandler.GetItemByID)
		}

		writeRoutes := itemRoutes.Group("")
		writeRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleOwner))
		{
			writeRoutes.POST("", menuHandler.CreateItem)
			writeRoutes.PUT("/:id", menuHandler.UpdateItem)
			writeRoutes.DELETE("/:id", menuHandler.DeleteItem)
		}
	}
}

// SetupTableRoutes sets up the cafe table routes.
func SetupTableRoutes(authenticatedGroup *gin.RouterGroup, tableHandler *handlers.TableHandler) {
	tableRoutes := authenticatedGroup.Group("/tables")
	tableRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleOwner, models.RoleStaff))
	{
		tableRoutes.POST("", tableHandler.CreateTable)
		tableRoutes.GET("", tableHandler.GetTables)
		tableRoutes.GET("/:id", tableHandler.GetTableByID)
		tableRoutes.PUT("/:id", tableHandler.UpdateTable)
		tableRoutes.DELETE("/:id", tableHandler.DeleteTable)
	}
}

// SetupOrderRoutes sets up the order routes.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	orderRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleOwner, models.RoleStaff))
	{
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orderRoutes.DELETE("/:id", orderHandler.DeleteOrder)
	}
}

// SetupAnalyticsRoutes sets up the reporting routes. Sales, menu engineering
// and dashboard reports are cafe-scoped; platform revenue is admin only.
func SetupAnalyticsRoutes(authenticatedGroup *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	analyticsRoutes := authenticatedGroup.Group("/analytics")
	{
		cafeReports := analyticsRoutes.Group("")
		cafeReports.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleOwner))
		{
			cafeReports.GET("/sales", analyticsHandler.GetSalesReport)
			cafeReports.GET("/menu-engineering", analyticsHandler.GetMenuEngineering)
			cafeReports.GET("/dashboard", analyticsHandler.GetDashboard)
			cafeReports.GET("/subscription", analyticsHandler.GetCafeSubscription)
		}

		adminReports := analyticsRoutes.Group("")
		adminReports.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminReports.GET("/platform-revenue", analyticsHandler.GetPlatformRevenue)
		}
	}
}
