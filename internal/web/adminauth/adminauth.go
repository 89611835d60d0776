// Package adminauth gates the operator dashboard behind a single shared
// password and a signed browser-session cookie.
//
// This is deliberately not a real authentication system: one static secret,
// no accounts, no authorization model.
package adminauth

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName carries the signed admin session token.
const CookieName = "sl_admin"

const tokenSubject = "securelups-admin"

// Gate checks the shared password and issues/verifies session tokens.
type Gate struct {
	password string
	key      []byte
	now      func() time.Time
}

// NewGate builds a gate for the configured password and signing key.
func NewGate(password string, key []byte) Gate {
	return Gate{password: password, key: key, now: time.Now}
}

// Enabled reports whether an admin password is configured at all.
func (g Gate) Enabled() bool {
	return g.password != ""
}

// Check compares the submitted password against the configured secret.
func (g Gate) Check(candidate string) bool {
	if !g.Enabled() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(g.password)) == 1
}

// IssueToken mints a signed session token for a passed check.
func (g Gate) IssueToken() (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  tokenSubject,
		IssuedAt: jwt.NewNumericDate(g.now().UTC()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.key)
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

// VerifyToken reports whether a presented token was issued by this gate.
func (g Gate) VerifyToken(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || !g.Enabled() {
		return false
	}
	token, err := jwt.ParseWithClaims(
		value,
		&jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return g.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(tokenSubject),
	)
	if err != nil {
		return false
	}
	return token.Valid
}

// Authenticated reports whether the request carries a valid admin session.
func (g Gate) Authenticated(r *http.Request) bool {
	if r == nil {
		return false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return false
	}
	return g.VerifyToken(cookie.Value)
}

// WriteSession stores the session token as a browser-session cookie.
func WriteSession(w http.ResponseWriter, token string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession expires the admin session cookie.
func ClearSession(w http.ResponseWriter) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
