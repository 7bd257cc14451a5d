package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/readyiolab/GDL-BACKEND/internal/session"
)

const sessionKey = "session"

// Session attaches the visitor's session to the echo context. Visitors
// without a valid cookie get a new session and a Set-Cookie header.
func Session(manager *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := manager.Load(c.Request())
			if sess.IsNew {
				cookie, err := manager.Cookie(sess)
				if err != nil {
					log.Error().Err(err).Msg("Error issuing session cookie")
				} else {
					c.SetCookie(cookie)
				}
			}
			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the session set by Session, or nil.
func SessionFrom(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionKey).(*session.Session)
	return sess
}
