package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/plazanorte/directory-api/internal/cache"
	"github.com/plazanorte/directory-api/internal/config"
	"github.com/plazanorte/directory-api/internal/database"
	"github.com/plazanorte/directory-api/internal/handler"
	middlewarepkg "github.com/plazanorte/directory-api/internal/middleware"
	"github.com/plazanorte/directory-api/internal/repository"
	"github.com/plazanorte/directory-api/internal/router"
	"github.com/plazanorte/directory-api/internal/service"
	"github.com/plazanorte/directory-api/internal/sitemap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	ttlCache := cache.New()

	catalogRepo := repository.NewMySQLCatalogRepository(db)
	leadsRepo := repository.NewMySQLLeadsRepository(db)

	catalogService := service.NewCatalogService(catalogRepo, ttlCache, cfg.CategoryCacheTTL)
	contentService := service.NewContentService(catalogRepo)
	leadService := service.NewLeadService(leadsRepo)

	paymentClient := handler.NewHTTPPaymentClient(nil, cfg.PaymentBaseURL, cfg.PaymentAPIKey)
	checkoutService := service.NewCheckoutService(paymentClient)

	sitemapBuilder := sitemap.New(contentService, ttlCache, cfg.SitemapCacheTTL)

	handlers := router.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Content:  handler.NewContentHandler(contentService),
		Leads:    handler.NewLeadsHandler(leadService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Media:    handler.NewMediaHandler(nil, cfg.MediaTimeout),
		Sitemap:  handler.NewSitemapHandler(sitemapBuilder, cfg.SiteBaseURL),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
