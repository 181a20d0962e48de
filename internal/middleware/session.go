package middleware

import (
	"fire_planner_backend/internal/config"
	"fire_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware is the gate in front of the questionnaire flow and the
// results API. The cookie carries a plain JSON session object; validity is
// structural (parseable, both IDs present). There is no signature to verify:
// membership validity is established at OAuth-callback time, not per
// request.
func SessionMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(cfg.Session.CookieName)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		session, err := util.DecodeSession(value)
		if err != nil || !session.Valid() {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Next()
	}
}
