package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/session"
	"carmarket-bff/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request-id"

// RequestIDMiddleware keeps an incoming X-Request-ID when it is a valid id, otherwise assigns one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if !utils.IsID(id) {
		id = utils.GenerateID()
	}
	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	}
	if s, ok := session.FromGin(c); ok && s.Authenticated() {
		fields["user_id"] = s.UserID
	}
	utils.Info("HTTP Request", fields)
}

// SessionMiddleware attaches the visitor's session to every request.
// A missing, unknown or expired cookie starts a fresh anonymous session.
func SessionMiddleware(sessions *session.Manager, cookie session.Cookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sess *session.Session
		if id, err := c.Cookie(cookie.Name); err == nil {
			sess, err = sessions.Resolve(ctx, id)
			if err != nil && !errors.Is(err, marketerrors.ErrSessionNotFound) {
				utils.Error("SessionMiddleware: session store unavailable", map[string]any{"error": err.Error()})
				utils.JSONError(c, http.StatusServiceUnavailable, err, "session store unavailable")
				c.Abort()
				return
			}
		}

		if sess == nil {
			created, err := sessions.Anonymous(ctx)
			if err != nil {
				utils.Error("SessionMiddleware: cannot start session", map[string]any{"error": err.Error()})
				utils.JSONError(c, http.StatusServiceUnavailable, fmt.Errorf("start session: %w", err), "session store unavailable")
				c.Abort()
				return
			}
			sess = created
			cookie.Write(c, sess)
			utils.Debug("SessionMiddleware: anonymous session started", map[string]any{"session_id": sess.ID})
		}

		c.Set(session.ContextKey, sess)
		c.Request = c.Request.WithContext(session.NewContext(ctx, sess))
		c.Next()
	}
}
