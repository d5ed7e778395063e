package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionIDHeader carries the conversation's search session.
	SessionIDHeader = "X-Session-ID"
	// sessionIDKey is the context key for storing the session ID.
	sessionIDKey = "session_id"
)

// SessionID returns middleware that reads the caller's session ID from the
// X-Session-ID header, or starts a new session with a fresh UUID.
// The ID is stored in the context and echoed back in the response header.
func SessionID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get(SessionIDHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			c.Set(sessionIDKey, sessionID)
			c.Response().Header().Set(SessionIDHeader, sessionID)

			return next(c)
		}
	}
}

// GetSessionID retrieves the session ID from the echo context.
// Returns an empty string if no session ID is set.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
