package main

import (
	"log"
	"time"

	"vastuguru-api/config"
	"vastuguru-api/database"
	routes "vastuguru-api/internal/app/http"
	"vastuguru-api/internal/app/http/middleware"
	"vastuguru-api/internal/domain/catalog"
	"vastuguru-api/internal/infra/gormstore"
	"vastuguru-api/internal/infra/memstore"
	"vastuguru-api/internal/infra/stripe"
	"vastuguru-api/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	logger, err := logging.New(config.LOG_LEVEL)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	tiers, err := config.LoadTierConfig(config.TIER_CONFIG_PATH)
	if err != nil {
		logger.Fatal("tier config", zap.String("path", config.TIER_CONFIG_PATH), zap.Error(err))
	}
	formatter, err := catalog.NewPriceFormatter(config.CATALOG_LOCALE)
	if err != nil {
		logger.Fatal("catalog locale", zap.Error(err))
	}
	builder, err := catalog.NewBuilder(tiers.Thresholds, formatter)
	if err != nil {
		logger.Fatal("catalog builder", zap.Error(err))
	}

	deps := routes.Deps{
		Builder:         builder,
		Styles:          tiers.Styles,
		StripeProductID: config.STRIPE_CATALOG_PRODUCT_ID,
		JWTSecret:       config.JWT_SECRET,
		Log:             logger,
	}

	if config.STORE == config.StoreMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		mem := memstore.New()
		deps.Services, deps.Content, deps.Cart = mem, mem, mem
	} else {
		database.InitDB(config.DB_URL)
		deps.Services = gormstore.NewServiceRepo(database.DB)
		deps.Content = gormstore.NewContentRepo(database.DB)
		deps.Cart = gormstore.NewCartRepo(database.DB)
	}

	if config.STRIPE_SECRET_KEY != "" {
		deps.Prices = stripe.NewAPISource(config.STRIPE_SECRET_KEY)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, deps)

	logger.Info("listening",
		zap.String("port", config.PORT),
		zap.String("store", config.STORE),
		zap.String("locale", builder.Locale()))
	if err := r.Run(":" + config.PORT); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
