package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/database"
	"storefront-service/logger"
	"storefront-service/middleware"
	"storefront-service/repository"
	"storefront-service/routes"
	"storefront-service/services"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Sync()

	// --- MongoDB setup ---
	// A failed connection does not abort startup: the service runs degraded
	// and /test reports the store as unavailable.
	if err := database.Connect(cfg.DatabaseURL, cfg.DatabaseName); err != nil {
		logger.Log.Warn("MongoDB connection failed, running without store", zap.Error(err))
	} else {
		logger.Log.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))
		defer func() {
			if err := database.Close(); err != nil {
				logger.Log.Warn("MongoDB disconnect failed", zap.Error(err))
			}
		}()
	}

	// --- Service wiring ---
	store := repository.NewStore(database.DB)
	sheetsClient := services.NewSheetsClient(cfg.SheetsSpreadsheetID, cfg.SheetsServiceAccountJSON, cfg.SheetsLeadsRange)
	stripeService := services.NewStripeService(cfg.StripeSecretKey)

	catalogService := services.NewCatalogService(store)
	leadService := services.NewLeadService(store, sheetsClient)
	checkoutService := services.NewCheckoutService(store, catalogService, stripeService, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	diagnosticsService := services.NewDiagnosticsService(store, os.Getenv("DATABASE_URL") != "")

	productController := controllers.NewProductController(catalogService)
	leadController := controllers.NewLeadController(leadService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	diagnosticsController := controllers.NewDiagnosticsController(diagnosticsService)

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.RateLimitMiddleware())

	// Credentials with any origin: echo the caller's origin instead of "*".
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, productController, leadController, checkoutController, diagnosticsController)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		logger.Log.Info("Storefront service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down storefront service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Storefront service stopped gracefully")
}
