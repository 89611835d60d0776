// Package sessioncookie centralizes questionnaire session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"
)

// Name is the canonical questionnaire session cookie name.
const Name = "sl_session"

// LastResultName caches the most recently submitted result id so the
// results page works without a query parameter.
const LastResultName = "sl_last_result"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	return read(r, Name)
}

// ReadLastResult returns the cached last-result id when present.
func ReadLastResult(r *http.Request) (string, bool) {
	return read(r, LastResultName)
}

func read(r *http.Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie.
func Write(w http.ResponseWriter, sessionID string) {
	write(w, Name, sessionID)
}

// WriteLastResult caches the submitted result id.
func WriteLastResult(w http.ResponseWriter, resultID string) {
	write(w, LastResultName, resultID)
}

func write(w http.ResponseWriter, name, value string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
