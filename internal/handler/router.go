package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"opsboard/internal/handler/api"
	"opsboard/internal/handler/middleware"
	"opsboard/internal/pkg/config"
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
	runsHandler *api.RunsHandler,
	webhookHandler *api.WebhookHandler,
	ticketsHandler *api.TicketsHandler,
	reportsHandler *api.ReportsHandler,
	subscriptionsHandler *api.SubscriptionsHandler,
	runLogsHandler *api.RunLogsHandler,
	activityHandler *api.ActivityHandler,
	tokenMiddleware *middleware.TokenMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, runsHandler, webhookHandler, ticketsHandler, reportsHandler, subscriptionsHandler, runLogsHandler, activityHandler, tokenMiddleware)
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
	runsHandler *api.RunsHandler,
	webhookHandler *api.WebhookHandler,
	ticketsHandler *api.TicketsHandler,
	reportsHandler *api.ReportsHandler,
	subscriptionsHandler *api.SubscriptionsHandler,
	runLogsHandler *api.RunLogsHandler,
	activityHandler *api.ActivityHandler,
	tokenMiddleware *middleware.TokenMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// The alert source authenticates per subscription, not with the ops
		// token, so the webhook endpoint stays outside the guarded group.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/webhooks/zabbix", Handler: webhookHandler.ReceiveZabbix},
		})

		guarded := apiGroup.Group("")
		guarded.Use(tokenMiddleware.RequireToken())
		{
			jobs := guarded.Group("/jobs")
			addRoutes(jobs, []route{
				{Method: http.MethodPost, Path: "/tickets/run", Handler: runsHandler.RunTickets},
				{Method: http.MethodPost, Path: "/reports/run", Handler: runsHandler.RunReports},
			})

			tickets := guarded.Group("/scheduled-tickets")
			addRoutes(tickets, []route{
				{Method: http.MethodPost, Path: "", Handler: ticketsHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: ticketsHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: ticketsHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: ticketsHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: ticketsHandler.Delete},
			})

			reports := guarded.Group("/scheduled-reports")
			addRoutes(reports, []route{
				{Method: http.MethodPost, Path: "", Handler: reportsHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reportsHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: reportsHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: reportsHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: reportsHandler.Delete},
			})

			subscriptions := guarded.Group("/webhook-subscriptions")
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "", Handler: subscriptionsHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: subscriptionsHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: subscriptionsHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: subscriptionsHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: subscriptionsHandler.Delete},
			})

			addRoutes(guarded, []route{
				{Method: http.MethodGet, Path: "/run-logs", Handler: runLogsHandler.List},
				{Method: http.MethodGet, Path: "/activity", Handler: activityHandler.List},
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
