package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelog/backend/internal/application"
	"github.com/travelog/backend/internal/container"
	pginfra "github.com/travelog/backend/internal/infrastructure/postgres"
	handlers "github.com/travelog/backend/internal/interface/http"
	"github.com/travelog/backend/internal/router/modules"
	"github.com/travelog/backend/pkg/helpers"
	"github.com/travelog/backend/pkg/response"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container is filled.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	journalRepo := pginfra.NewJournalRepository(container.GetPGPool())

	authSvc := application.NewAuthService(userRepo, container.GetGCS(), cfg.GCSBucket, container.GetRedis(), logger)
	journalSvc := application.NewJournalService(journalRepo, logger)

	authHandler := handlers.NewAuthHandler(authSvc, jwt, logger, cfg.CookieDomain, cfg.CookieSecure)
	profileHandler := handlers.NewProfileHandler(authSvc, logger)
	journalHandler := handlers.NewJournalHandler(journalSvc, logger)
	geocodeHandler := handlers.NewGeocodeHandler(container.GetGeocoder(), logger)

	r.API.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
	})

	r.Add(modules.NewAuthModule(authHandler, jwt, cookies))
	r.Add(modules.NewProfileModule(profileHandler, jwt, cookies))
	r.Add(modules.NewJournalModule(journalHandler, geocodeHandler, jwt, cookies))
}
