package http

import (
	"net"
	"net/http"

	rl "github.com/farmatech/farmatech-client/internal/http/rate_limiter"
	"github.com/farmatech/farmatech-client/internal/session"
)

var sessionStore session.Store

func SetSessionStore(s session.Store) {
	sessionStore = s
}

// RequireSession rejects requests when no token pair is stored. Token
// validity itself is the backend's call; an expired access token is handled
// by the gateway's refresh-retry cycle.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionStore == nil || !session.Authenticated(sessionStore) {
			http.Error(w, "não autenticado, faça login", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit throttles the auth routes per client IP.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "muitas tentativas, aguarde", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
