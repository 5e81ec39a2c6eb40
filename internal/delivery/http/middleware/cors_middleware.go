package middleware

import "net/http"

type CORSMiddleware struct {
	allowOrigin string
}

// NewCORSMiddleware configures cross-origin access for the dashboard app.
// An empty origin falls back to allowing any caller, matching development
// setups where the frontend runs on a random port.
func NewCORSMiddleware(allowOrigin string) *CORSMiddleware {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return &CORSMiddleware{allowOrigin: allowOrigin}
}

func (c *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", c.allowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.allowOrigin != "*" {
			// Cookies only travel cross-origin when credentials are allowed
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
