package middleware

import (
	"log/slog"
	"slices"

	"spot-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware treats an origin list of "*" as allow-all. Credentials
// are never combined with a wildcard origin.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowAll := slices.Contains(cfg.AllowOrigins, "*")

	corsCfg := cors.Config{
		AllowAllOrigins:  allowAll,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append(slices.Clone(cfg.ExposeHeaders), headerRequestID),
		AllowCredentials: cfg.AllowCredentials && !allowAll,
		MaxAge:           cfg.MaxAge,
	}
	if !allowAll {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_all", allowAll)
	return cors.New(corsCfg)
}
