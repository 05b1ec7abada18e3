package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/travelog/backend/internal/application"
	"github.com/travelog/backend/internal/domain/entity"
	"github.com/travelog/backend/internal/domain/repository"
	"github.com/travelog/backend/internal/interface/middleware"
	"github.com/travelog/backend/pkg/helpers"
	"github.com/travelog/backend/pkg/response"
	"github.com/travelog/backend/pkg/validation"
)

type JournalHandler struct {
	Svc    *application.JournalService
	Logger *logrus.Logger
}

func NewJournalHandler(svc *application.JournalService, logger *logrus.Logger) *JournalHandler {
	return &JournalHandler{Svc: svc, Logger: logger}
}

type createEntryRequest struct {
	City        string   `json:"city" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required,latitude"`
	Longitude   *float64 `json:"longitude" binding:"required,longitude"`
	VisitedDate string   `json:"visitedDate" binding:"required,visitdate"`
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Companions  *string  `json:"companions"`
	Rating      *string  `json:"rating"`
}

type updateEntryRequest struct {
	City        *string  `json:"city" binding:"omitempty,min=1"`
	Country     *string  `json:"country" binding:"omitempty,min=1"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,longitude"`
	VisitedDate *string  `json:"visitedDate" binding:"omitempty,visitdate"`
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Companions  *string  `json:"companions"`
	Rating      *string  `json:"rating"`
}

// List GET /api/journal
func (h *JournalHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	entries, countries, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		helpers.LogError(h.Logger, "journal list failed", err, logrus.Fields{"user_id": uid})
		response.Error(c, http.StatusInternalServerError, "failed to load entries", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"entries":   entriesJSON(entries),
		"countries": countries,
	}, "journal entries")
}

// Create POST /api/journal
func (h *JournalHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	visited, err := time.Parse(dateLayout, req.VisitedDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"visitedDate": "must be a date in YYYY-MM-DD format"})
		return
	}

	e, err := h.Svc.Create(c.Request.Context(), uid, application.CreateEntryInput{
		City:        req.City,
		Country:     req.Country,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		VisitedDate: visited,
		Title:       req.Title,
		Description: req.Description,
		Companions:  req.Companions,
		Rating:      req.Rating,
	})
	if err != nil {
		helpers.LogError(h.Logger, "journal create failed", err, logrus.Fields{"user_id": uid})
		response.Error(c, http.StatusInternalServerError, "failed to create entry", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"entry": entryJSON(e)}, "entry created")
}

// Update PUT /api/journal/:id
func (h *JournalHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, ok := entryID(c)
	if !ok {
		return
	}
	var req updateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	patch := entity.JournalEntryPatch{
		City:        req.City,
		Country:     req.Country,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Title:       req.Title,
		Description: req.Description,
		Companions:  req.Companions,
		Rating:      req.Rating,
	}
	if req.VisitedDate != nil {
		visited, err := time.Parse(dateLayout, *req.VisitedDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"visitedDate": "must be a date in YYYY-MM-DD format"})
			return
		}
		patch.VisitedDate = &visited
	}

	e, err := h.Svc.Update(c.Request.Context(), uid, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "entry not found", nil)
			return
		}
		helpers.LogError(h.Logger, "journal update failed", err, logrus.Fields{"user_id": uid, "entry_id": id})
		response.Error(c, http.StatusInternalServerError, "failed to update entry", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entry": entryJSON(e)}, "entry updated")
}

// Delete DELETE /api/journal/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, ok := entryID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), uid, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "entry not found", nil)
			return
		}
		helpers.LogError(h.Logger, "journal delete failed", err, logrus.Fields{"user_id": uid, "entry_id": id})
		response.Error(c, http.StatusInternalServerError, "failed to delete entry", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid entry id", nil)
		return 0, false
	}
	return id, true
}
