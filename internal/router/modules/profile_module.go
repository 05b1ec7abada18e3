package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/travelog/backend/internal/interface/http"
	"github.com/travelog/backend/internal/interface/middleware"
	"github.com/travelog/backend/pkg/helpers"
)

// ProfileModule wires profile read/update and avatar upload.
// All routes require a session.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
	Cookies *helpers.CookieManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager, cookies *helpers.CookieManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt, Cookies: cookies}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Cookies))
	{
		auth.GET("/profile", m.Handler.Get)
		auth.PUT("/profile", m.Handler.Update)
		auth.POST("/profile/avatar", m.Handler.UploadAvatar)
	}
}
