package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courier-admin/internal/handler/api"
	"courier-admin/internal/handler/middleware"
	"courier-admin/internal/metrics"
	"courier-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	accountHandler *api.AccountHandler,
	itemHandler *api.ItemHandler,
	quoteHandler *api.QuoteHandler,
	deliveryHandler *api.DeliveryHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, accountHandler, itemHandler, quoteHandler, deliveryHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	accountHandler *api.AccountHandler,
	itemHandler *api.ItemHandler,
	quoteHandler *api.QuoteHandler,
	deliveryHandler *api.DeliveryHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// The provider authenticates nothing; the endpoint stays outside /api and
	// always acks.
	engine.POST("/webhooks/courier", webhookHandler.Receive)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		accounts := apiGroup.Group("/accounts")
		accounts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(accounts, []route{
				{Method: http.MethodPost, Path: "", Handler: accountHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: accountHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: accountHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: accountHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: accountHandler.Delete},
			})
		}

		items := apiGroup.Group("/items")
		items.Use(authMiddleware.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodPost, Path: "", Handler: itemHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: itemHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: itemHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: itemHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: itemHandler.Delete},
			})
		}

		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodPost, Path: "", Handler: quoteHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: quoteHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: quoteHandler.Get},
				{Method: http.MethodPost, Path: "/:id/provider-quote", Handler: quoteHandler.RequestProviderQuote},
				{Method: http.MethodDelete, Path: "/:id", Handler: quoteHandler.Delete},
			})
		}

		deliveries := apiGroup.Group("/deliveries")
		deliveries.Use(authMiddleware.RequireAuth())
		{
			addRoutes(deliveries, []route{
				{Method: http.MethodPost, Path: "", Handler: deliveryHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: deliveryHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: deliveryHandler.Get},
				{Method: http.MethodPost, Path: "/:id/refresh", Handler: deliveryHandler.RefreshStatus},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: deliveryHandler.Cancel},
				{Method: http.MethodGet, Path: "/:id/events", Handler: deliveryHandler.ListEvents},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
