// Package theme handles the light/dark preference. The browser keeps it in
// localStorage; the server mirrors it in a cookie so the first paint
// already has the right colors.
package theme

import (
	"net/http"
	"strings"
	"time"
)

// Mode is a color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Key is the storage key (cookie name and localStorage key).
const Key = "theme"

// Default is used when no preference has been stored.
const Default = Dark

// Parse converts a stored value to a Mode. Anything unrecognized is the
// default.
func Parse(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light
	case Dark:
		return Dark
	default:
		return Default
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Icon is the glyph shown on the toggle button for m.
func (m Mode) Icon() string {
	if m == Light {
		return "☀"
	}
	return "☾"
}

// FromRequest reads the stored preference from r.
func FromRequest(r *http.Request) Mode {
	c, err := r.Cookie(Key)
	if err != nil {
		return Default
	}
	return Parse(c.Value)
}

// Write stores m on the response.
func Write(w http.ResponseWriter, m Mode) {
	http.SetCookie(w, &http.Cookie{
		Name:     Key,
		Value:    string(m),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
