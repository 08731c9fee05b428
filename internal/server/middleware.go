package server

import (
	"net/http"
	"strings"
	"time"

	"spaceexplorer/internal/views"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// accessLog logs one line per request with the chi request ID
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      status,
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  chiMiddleware.GetReqID(r.Context()),
		}
		if r.URL.Path == "/health" {
			s.log.Debug("Request served", fields)
			return
		}
		s.log.Info("Request served", fields)
	})
}

// limitChat rejects chat requests once the shared token bucket is empty
func (s *Server) limitChat(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.chatLimiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}

		s.log.Warn("Chat rate limit exceeded", map[string]interface{}{
			"path":       r.URL.Path,
			"request_id": chiMiddleware.GetReqID(r.Context()),
		})
		w.Header().Set("Retry-After", "60")
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusTooManyRequests, errRateLimited, msgRateLimited)
			return
		}
		s.renderPage(w, r, http.StatusTooManyRequests, views.PageChat, pageDataWithError(msgRateLimited))
	})
}
