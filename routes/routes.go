package routes

import (
	"foodmarket/configs"
	"foodmarket/controllers"
	"foodmarket/middlewares"
	"foodmarket/repository"
	"foodmarket/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(vendorRepo, catalogRepo)
	menuSvc := services.NewMenuService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo, cfg.CartTaxPct)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	marketCtrl := controllers.NewMarketplaceController(catalogSvc, cartSvc)
	cartCtrl := controllers.NewCartController(cartSvc, authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, vendorRepo)

	optionalAuth := middlewares.OptionalAuthMiddleware(cfg.JWTSecret)
	requireAuth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", requireAuth, authCtrl.Me)
	}

	// Storefront pages
	r.GET("/", marketCtrl.Home)
	r.GET("/marketplace", marketCtrl.Marketplace)
	r.GET("/marketplace/:vendor_slug", optionalAuth, marketCtrl.VendorDetail)
	r.GET("/marketplace/:vendor_slug/filter", optionalAuth, middlewares.RequireAJAX(), marketCtrl.FilterFoods)
	r.GET("/search", marketCtrl.Search)

	// Cart mutations answer login_required themselves, so auth is optional
	// at the middleware level.
	cart := r.Group("/cart", optionalAuth)
	{
		cart.POST("/add/:food_id", cartCtrl.Add)
		cart.POST("/decrease/:food_id", cartCtrl.Decrease)
		cart.POST("/delete/:cart_id", cartCtrl.Delete)
	}
	r.GET("/cart", requireAuth, cartCtrl.List)
	r.GET("/checkout", requireAuth, cartCtrl.Checkout)

	// Partner menu building (vendor owners and admins)
	partner := r.Group("/partner/menu", middlewares.AuthMiddleware(cfg.JWTSecret, "vendor", "admin"))
	{
		partner.POST("/categories", menuCtrl.CreateCategory)
		partner.POST("/foods", menuCtrl.CreateFood)
	}
}
