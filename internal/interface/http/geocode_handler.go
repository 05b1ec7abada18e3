package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/travelog/backend/pkg/geocode"
	"github.com/travelog/backend/pkg/helpers"
	"github.com/travelog/backend/pkg/response"
)

// GeocodeHandler exposes reverse geocoding for map clicks. The resolver is an
// injected capability so the handler is testable without network access.
type GeocodeHandler struct {
	Resolver geocode.Resolver
	Logger   *logrus.Logger
}

func NewGeocodeHandler(resolver geocode.Resolver, logger *logrus.Logger) *GeocodeHandler {
	return &GeocodeHandler{Resolver: resolver, Logger: logger}
}

// Reverse GET /api/geocode?lat=..&lng=..
func (h *GeocodeHandler) Reverse(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		response.Error(c, http.StatusBadRequest, "lat and lng must be valid coordinates", nil)
		return
	}

	place, err := h.Resolver.Reverse(c.Request.Context(), lat, lng)
	if err != nil {
		helpers.LogError(h.Logger, "reverse geocode failed", err, logrus.Fields{"lat": lat, "lng": lng})
		response.Error(c, http.StatusBadGateway, "geocoding service unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"city":    place.City,
		"country": place.Country,
	}, "reverse geocode")
}
