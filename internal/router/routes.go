package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plazanorte/directory-api/internal/config"
	"github.com/plazanorte/directory-api/internal/handler"
	middlewarepkg "github.com/plazanorte/directory-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Content  *handler.ContentHandler
	Leads    *handler.LeadsHandler
	Checkout *handler.CheckoutHandler
	Media    *handler.MediaHandler
	Sitemap  *handler.SitemapHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	api := e.Group("/api")
	api.GET("/categories", handlers.Catalog.ListCategories)
	api.GET("/categories/:slug/companies", handlers.Catalog.ListCompanies)
	api.GET("/categories/:slug/companies/:company", handlers.Catalog.GetCompany)

	api.GET("/blog", handlers.Content.List("blog"))
	api.GET("/blog/:slug", handlers.Content.Get("blog"))
	api.GET("/cases", handlers.Content.List("cases"))
	api.GET("/cases/:slug", handlers.Content.Get("cases"))
	api.GET("/templates", handlers.Content.List("templates"))
	api.GET("/templates/:slug", handlers.Content.Get("templates"))

	api.GET("/media", handlers.Media.Proxy)

	submit := middlewarepkg.SubmitRateLimiter(cfg.RateLimitLeads)
	api.POST("/leads", handlers.Leads.SubmitLead, submit)
	api.POST("/contact", handlers.Leads.SubmitContact, submit)

	api.POST("/checkout", handlers.Checkout.Create)

	e.GET("/sitemap.xml", handlers.Sitemap.Serve)
}
