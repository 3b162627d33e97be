// Package rest exposes the notification service over HTTP with gin.
package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"notification-hub/auth"
	"notification-hub/contract"
	"notification-hub/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type RouterOptions struct {
	AllowedOrigins []string
	// Websocket, when set, is mounted at WebsocketPath outside the API group.
	Websocket     http.Handler
	WebsocketPath string
}

// NewRouter wires every route. The websocket endpoint shares the router so a
// single listener serves both.
func NewRouter(log *slog.Logger, service contract.INotificationService, registry contract.IRegistry, tokens *auth.TokenManager, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	if config, ok := corsConfig(log, opts.AllowedOrigins); ok {
		r.Use(cors.New(config))
	}
	if opts.Websocket != nil {
		r.GET(opts.WebsocketPath, gin.WrapH(opts.Websocket))
	}

	handler := NewNotificationHandler(log, service, registry)
	api := r.Group("/api/v1")
	{
		api.GET("/health", handler.Health)

		notifications := api.Group("/notifications", RequireIdentity(tokens))
		notifications.GET("", handler.List)
		notifications.GET("/stats", handler.Stats)
		notifications.PUT("/read-all", handler.MarkAllAsRead)
		notifications.PUT("/:id/read", handler.MarkAsRead)
		notifications.DELETE("/:id", handler.Delete)
		notifications.POST("/test", handler.SendTest)

		admin := notifications.Group("", RequireRole(domain.RoleAdmin))
		admin.POST("", handler.Create)
		admin.POST("/bulk", handler.Bulk)
		admin.POST("/announcement", handler.Announcement)
		admin.POST("/role/:role", handler.NotifyRole)
	}
	return r
}

// corsConfig allows the configured origins. Entries that are not full
// http(s) origins are skipped since cors rejects them.
func corsConfig(log *slog.Logger, origins []string) (cors.Config, bool) {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	if lo.Contains(origins, "*") {
		config.AllowAllOrigins = true
		return config, true
	}
	valid, invalid := lo.FilterReject(origins, func(o string, _ int) bool {
		return strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://")
	})
	if len(invalid) > 0 {
		log.Warn("Ignoring malformed CORS origins", "origins", invalid)
	}
	if len(valid) == 0 {
		return config, false
	}
	config.AllowOrigins = valid
	config.AllowCredentials = true
	return config, true
}
