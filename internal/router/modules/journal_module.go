package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/travelog/backend/internal/interface/http"
	"github.com/travelog/backend/internal/interface/middleware"
	"github.com/travelog/backend/pkg/helpers"
)

// JournalModule wires the ownership-scoped journal CRUD plus reverse
// geocoding. All routes require a session.
type JournalModule struct {
	Journal *handlers.JournalHandler
	Geocode *handlers.GeocodeHandler
	JWT     *helpers.JWTManager
	Cookies *helpers.CookieManager
}

func NewJournalModule(j *handlers.JournalHandler, g *handlers.GeocodeHandler, jwt *helpers.JWTManager, cookies *helpers.CookieManager) *JournalModule {
	return &JournalModule{Journal: j, Geocode: g, JWT: jwt, Cookies: cookies}
}

func (m *JournalModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Cookies))
	{
		auth.GET("/journal", m.Journal.List)
		auth.POST("/journal", m.Journal.Create)
		auth.PUT("/journal/:id", m.Journal.Update)
		auth.DELETE("/journal/:id", m.Journal.Delete)

		auth.GET("/geocode", m.Geocode.Reverse)
	}
}
