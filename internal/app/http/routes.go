package routes

import (
	adminapi "vastuguru-api/internal/api/admin"
	cartapi "vastuguru-api/internal/api/cart"
	catalogapi "vastuguru-api/internal/api/catalog"
	contentapi "vastuguru-api/internal/api/content"
	servicesapi "vastuguru-api/internal/api/services"
	"vastuguru-api/internal/app/http/middleware"
	"vastuguru-api/internal/domain/access"
	"vastuguru-api/internal/domain/cart"
	"vastuguru-api/internal/domain/catalog"
	"vastuguru-api/internal/domain/content"
	"vastuguru-api/internal/domain/services"
	"vastuguru-api/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Services services.Repository
	Content  content.Repository
	Cart     cart.Repository

	Builder *catalog.Builder
	Styles  catalog.StyleTable

	Prices          stripe.PriceSource
	StripeProductID string

	JWTSecret string
	Log       *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	servicesH := &servicesapi.Handler{
		Repo:            d.Services,
		Log:             d.Log,
		Prices:          d.Prices,
		StripeProductID: d.StripeProductID,
	}
	catalogH := &catalogapi.Handler{Repo: d.Services, Builder: d.Builder, Styles: d.Styles, Log: d.Log}
	contentH := &contentapi.Handler{Repo: d.Content, Log: d.Log}
	cartH := &cartapi.Handler{Repo: d.Cart, Services: d.Services, Log: d.Log}
	adminH := &adminapi.Handler{Repo: d.Services, Builder: d.Builder, Log: d.Log}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public
	r.GET("/services", servicesH.ListServices)
	r.GET("/services/:id", servicesH.GetService)
	r.GET("/services/slug/:slug", servicesH.GetServiceBySlug)
	r.GET("/catalog", catalogH.GetCatalog)
	r.GET("/tiers", catalogH.GetTiers)
	r.GET("/home-content", contentH.GetHomeContent)
	r.GET("/about", contentH.GetAbout)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(d.JWTSecret), middleware.SanitizeAndCleanInputMiddleware())
	auth.GET("/cart", cartH.GetCart)
	auth.POST("/cart", cartH.AddToCart)
	auth.DELETE("/cart/:id", cartH.RemoveFromCart)
	auth.GET("/cart/contains/:serviceId", cartH.ContainsService)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(d.JWTSecret),
		middleware.RequireAnyRole(access.CatalogManagers...),
		middleware.SanitizeAndCleanInputMiddleware(),
	)
	admin.GET("/dashboard", adminH.AdminDashboard)
	admin.GET("/stats", adminH.GetAdminStats)
	admin.GET("/packages", catalogH.ListAdminPackages)
	admin.POST("/services", servicesH.CreateService)
	admin.PUT("/services/:id", servicesH.UpdateService)
	admin.DELETE("/services/:id", servicesH.DeleteService)
	admin.PUT("/home-content", contentH.UpdateHomeContent)
	admin.PUT("/about", contentH.UpdateAbout)
	admin.POST("/sync-services", servicesH.SyncServicesFromStripe)
}
