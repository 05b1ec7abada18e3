package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the single credential carrier between client and server.
const SessionCookieName = "token"

type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

// SetSession stores the session token in an HTTP-only, SameSite=Lax cookie
// whose lifetime matches the token expiry.
func (m *CookieManager) SetSession(c *gin.Context, token string, exp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAgeFrom(exp), "/", m.Domain, m.Secure, true)
}

// Clear removes the session cookie so the client stops presenting a dead token.
func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.Secure, true)
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
