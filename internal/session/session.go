package session

import (
	"net/http"
	"time"
)

// Theme is the light/dark display preference carried by a session
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps anything unknown to the light theme
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Session is the per-browser state the gateway keeps: the bearer token handed out by the
// marketplace API, the user id decoded from it, and the theme flag.
// A session without a token is anonymous but still carries a theme.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	Theme     Theme     `json:"theme"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Authenticated reports whether the session holds a token
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Authorize attaches the bearer token to an outgoing request. Anonymous sessions leave it untouched.
func (s *Session) Authorize(req *http.Request) {
	if !s.Authenticated() {
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
}

// ToggleTheme flips between light and dark and returns the new theme
func (s *Session) ToggleTheme() Theme {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
	return s.Theme
}

// Expired reports whether the session is past its lifetime at now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
