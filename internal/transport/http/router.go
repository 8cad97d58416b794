package httptransport

import (
	"log/slog"

	"github.com/ErlanBelekov/jobboard/internal/transport/http/handler"
	"github.com/ErlanBelekov/jobboard/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	authenticator middleware.Authenticator,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.NewWithConfig(logger, sloggin.Config{
		WithRequestID: false,
		Filters:       []sloggin.Filter{sloggin.IgnorePath("/favicon.ico")},
	}))
	r.Use(middleware.Metrics())

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// Protected profile routes
	users := api.Group("/users", middleware.Auth(authenticator, logger))
	users.POST("/profile/create", profileHandler.Create)
	users.GET("/profile", profileHandler.Get)

	return r
}
