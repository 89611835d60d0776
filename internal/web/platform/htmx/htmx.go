// Package htmx detects HTMX-initiated requests so handlers can respond
// with fragments instead of full pages.
package htmx

import "net/http"

// IsRequest reports whether the request was issued by HTMX.
func IsRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.Header.Get("HX-Request") == "true"
}
