package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelog/backend/pkg/helpers"
	"github.com/travelog/backend/pkg/response"
)

// CtxUserIDKey is the gin context key carrying the resolved user id.
// Handlers read only this; a user id supplied in a request body is ignored.
const CtxUserIDKey = "userID"

// Auth reads the session cookie, verifies the token and injects the user id
// into the request context. A missing cookie and a bad token are both 401; a
// bad token additionally clears the cookie so the client stops retrying it.
func Auth(jwt *helpers.JWTManager, cookies *helpers.CookieManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			cookies.Clear(c)
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
