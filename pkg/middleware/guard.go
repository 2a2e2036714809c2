package middleware

import (
	"net/http"
	"strings"

	"github.com/cardstore/console/pkg/auth"
	"github.com/cardstore/console/pkg/session"
)

// SessionTokenKey is where the login handler stores the admin JWT.
const SessionTokenKey = "admin_token"

// Guard protects console pages: requests without a valid admin token in the
// session are redirected to the login page. Non-HTML clients (the websocket
// endpoint, fragment fetches from scripts) get a plain 401 instead of a
// redirect, decided by the Accept header.
func Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)

		token, ok := sess.GetString(SessionTokenKey)
		if !ok || token == "" {
			deny(w, r)
			return
		}

		if _, err := auth.ValidateToken(token); err != nil {
			deny(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func deny(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
