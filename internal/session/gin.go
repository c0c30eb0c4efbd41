package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ContextKey is where the session middleware stores the resolved session
const ContextKey = "carmarket-session"

// FromGin returns the session attached to the request, if any
func FromGin(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok && s != nil
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by NewContext
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}

// Cookie describes the session cookie
type Cookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Write sets the cookie for s on the response
func (ck Cookie) Write(c *gin.Context, s *Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, s.ID, int(ck.TTL/time.Second), "/", "", ck.Secure, true)
}

// Clear expires the cookie
func (ck Cookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, "", -1, "/", "", ck.Secure, true)
}
