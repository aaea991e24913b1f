package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pawcare/pawcare-api/internal/container"
	handlers "github.com/pawcare/pawcare-api/internal/interface/http"
	"github.com/pawcare/pawcare-api/internal/interface/middleware"
)

// AuthModule wires authentication routes.
// Public: POST /api/auth/register, /api/auth/login, /api/auth/logout
// Protected: GET /api/auth/profile
type AuthModule struct {
	Handler *handlers.AuthHandler
	AuthMW  gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, authMW gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, AuthMW: authMW}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Tight per-IP windows on the credential endpoints
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	auth := rg.Group("/auth")
	auth.POST("/register", limiter, m.Handler.Register)
	auth.POST("/login", limiter, m.Handler.Login)
	auth.POST("/logout", m.Handler.Logout)
	auth.GET("/profile", m.AuthMW, m.Handler.Profile)
}
