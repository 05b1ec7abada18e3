package handlers

import (
	"errors"
	"net/http"

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

type AuthHandler struct {
	Svc     *application.AuthService
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, JWT: jwt, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	FullName string `json:"fullName" binding:"required,fullname"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "an account with this email already exists", nil)
			return
		}
		helpers.LogError(h.Logger, "register failed", err, logrus.Fields{"email": req.Email})
		response.Error(c, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	if !h.issueSession(c, u) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": registeredUserJSON(u)}, "account created")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}

	if !h.issueSession(c, u) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": profileJSON(u)}, "login successful")
}

// Logout POST /api/auth/logout
// Clearing the cookie is all logout does: an unexpired token presented again
// stays cryptographically valid until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	c.Status(http.StatusNoContent)
}

// Me GET /api/auth/me (session required)
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		// The session names a user that no longer exists; treat as unauthenticated.
		h.Cookies.Clear(c)
		response.Error(c, http.StatusUnauthorized, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": profileJSON(u)}, "current user")
}

func (h *AuthHandler) issueSession(c *gin.Context, u *entity.User) bool {
	token, exp, err := h.JWT.Generate(u.ID)
	if err != nil {
		helpers.LogError(h.Logger, "session token generation failed", err, logrus.Fields{"user_id": u.ID})
		response.Error(c, http.StatusInternalServerError, "could not create session", nil)
		return false
	}
	h.Cookies.SetSession(c, token, exp)
	return true
}
