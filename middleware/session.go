package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the shopper's session id.
const SessionCookie = "modave_session"

// SessionKey is the Gin context key the cart handlers read.
const SessionKey = "sessionID"

const sessionMaxAge = 30 * 60 // seconds, matches the cart TTL

// CartSession guarantees every request carries a valid session id,
// issuing a fresh uuid cookie when the shopper has none. The cookie is
// HttpOnly; the cart itself lives server-side.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
		}
		// Refresh on every request so active shoppers never lose a cart.
		c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		c.Set(SessionKey, sid)
		c.Next()
	}
}
