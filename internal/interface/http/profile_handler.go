package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/travelog/backend/internal/application"
	"github.com/travelog/backend/internal/interface/middleware"
	"github.com/travelog/backend/pkg/helpers"
	"github.com/travelog/backend/pkg/response"
	"github.com/travelog/backend/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.AuthService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	FullName  string `json:"fullName" binding:"required,fullname"`
	Bio       string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL string `json:"avatarUrl" binding:"omitempty,url"`
}

// Get GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": profileJSON(u)}, "profile")
}

// Update PUT /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		FullName:  req.FullName,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		helpers.LogError(h.Logger, "profile update failed", err, logrus.Fields{"user_id": uid})
		response.Error(c, http.StatusInternalServerError, "failed to update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": profileJSON(u)}, "profile updated")
}

// UploadAvatar POST /api/profile/avatar (multipart form, field "avatar")
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	defer file.Close()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrStorageUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "avatar storage not configured", nil)
		default:
			helpers.LogError(h.Logger, "avatar upload failed", err, logrus.Fields{"user_id": uid})
			response.Error(c, http.StatusInternalServerError, "failed to upload avatar", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatarUrl": url}, "avatar uploaded")
}
