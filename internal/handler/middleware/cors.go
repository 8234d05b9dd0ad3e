package middleware

import (
	"log/slog"

	"market-admin/internal/pkg/config"
	"market-admin/internal/pkg/requestid"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows the dashboard origins to send the session cookies and read
// the request id and export headers.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append(append([]string(nil), cfg.AllowHeaders...), requestid.Header),
		ExposeHeaders:    append(append([]string(nil), cfg.ExposeHeaders...), requestid.Header),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "credentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}
