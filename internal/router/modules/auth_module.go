package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/travelog/backend/internal/interface/http"
	"github.com/travelog/backend/internal/interface/middleware"
	"github.com/travelog/backend/pkg/helpers"
)

// AuthModule wires registration, login, logout and current-user routes.
// Public: POST /api/auth/register, POST /api/auth/login, POST /api/auth/logout
// Protected: GET /api/auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Cookies *helpers.CookieManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, cookies *helpers.CookieManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Cookies: cookies}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)
	// Logout works with or without a live session; it only clears the cookie.
	rg.POST("/auth/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Cookies))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
