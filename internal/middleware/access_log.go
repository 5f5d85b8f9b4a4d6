package middleware

import (
	"net/http"
	"time"

	"pet-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog escribe una línea por request. Va después de RequestID.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := map[string]any{
				"request_id":  GetRequestID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": r.RemoteAddr,
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Error("http request", fields)
			case status >= http.StatusBadRequest:
				log.Warn("http request", fields)
			default:
				log.Info("http request", fields)
			}
		})
	}
}
