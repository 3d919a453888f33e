package router

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/thenitintundwal/table-tap-sub000/internal/handlers"
	"github.com/thenitintundwal/table-tap-sub000/internal/middleware"
	"github.com/thenitintundwal/table-tap-sub000/internal/repositories"
	"github.com/thenitintundwal/table-tap-sub000/internal/services"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Repositories
	authRepo := repositories.NewAuthRepository(db)
	cafeRepo := repositories.NewCafeRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	tableRepo := repositories.NewTableRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Services
	authService := services.NewAuthService(authRepo, db)
	cafeService := services.NewCafeService(cafeRepo, db)
	menuService := services.NewMenuService(menuRepo, db)
	tableService := services.NewTableService(tableRepo, db)
	orderService := services.NewOrderService(orderRepo, menuRepo, db)
	analyticsService := services.NewAnalyticsService(orderRepo, menuRepo, cafeRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	cafeHandler := handlers.NewCafeHandler(cafeService)
	menuHandler := handlers.NewMenuHandler(menuService)
	tableHandler := handlers.NewTableHandler(tableService)
	orderHandler := handlers.NewOrderHandler(orderService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	apiV1 := engine.Group("/api/v1")

	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupCafeRoutes(authenticated, cafeHandler)
		SetupMenuRoutes(authenticated, menuHandler)
		SetupTableRoutes(authenticated, tableHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupAnalyticsRoutes(authenticated, analyticsHandler)
	}
}

// SetupPublicAuthRoutes sets up the unauthenticated auth routes.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.RegisterUser)
	group.POST("/login", authHandler.LoginUser)
	group.POST("/refresh-token", authHandler.RefreshToken)
}

// SetupAuthenticatedAuthRoutes sets up auth routes that require a valid token.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
}
