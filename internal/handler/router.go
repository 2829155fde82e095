package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cosme-store/internal/handler/api"
	"cosme-store/internal/handler/middleware"
	"cosme-store/internal/pkg/config"
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
	cartHandler *api.CartHandler,
	orderHandler *api.OrderHandler,
	campaignHandler *api.CampaignHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cartHandler, orderHandler, campaignHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cartHandler *api.CartHandler,
	orderHandler *api.OrderHandler,
	campaignHandler *api.CampaignHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: cartHandler.QuoteCart},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(middleware.RequireUser())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.PlaceOrder},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
			})
		}

		campaigns := apiGroup.Group("/campaigns")
		{
			addRoutes(campaigns, []route{
				{Method: http.MethodGet, Path: "/active", Handler: campaignHandler.ListActive},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(middleware.RequireUser())
		{
			adminCampaigns := admin.Group("/campaigns")
			addRoutes(adminCampaigns, []route{
				{Method: http.MethodGet, Path: "", Handler: campaignHandler.List},
				{Method: http.MethodPost, Path: "", Handler: campaignHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: campaignHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: campaignHandler.Update},
				{Method: http.MethodPost, Path: "/:id/activate", Handler: campaignHandler.Activate},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: campaignHandler.Deactivate},
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
