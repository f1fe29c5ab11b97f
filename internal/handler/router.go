package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spot-booking/internal/handler/api"
	"spot-booking/internal/handler/middleware"
	"spot-booking/internal/handler/validation"
	"spot-booking/internal/pkg/config"
	"spot-booking/internal/pkg/metrics"
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
	logger *middleware.Logger,
	m *metrics.Metrics,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.ActorRateLimiter,
) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, bookingHandler, authMiddleware, rateLimiter)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.RequestMetrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	m *metrics.Metrics,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.ActorRateLimiter,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{rateLimiter.Limit()}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		spots := apiGroup.Group("/spots/:spotId/bookings")
		addRoutes(spots, []route{
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListForSpot},
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create, Mw: limited},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/current", Handler: bookingHandler.ListForUser},
			{Method: http.MethodPut, Path: "/:id", Handler: bookingHandler.Edit, Mw: limited},
			{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel, Mw: limited},
		})
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
