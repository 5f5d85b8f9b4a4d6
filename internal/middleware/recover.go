package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-api/internal/platform/httpjson"
	"pet-api/internal/platform/logger"
)

// Recover convierte un panic en un 500 JSON y lo deja en el log con el stack.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"request_id": GetRequestID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      fmt.Sprint(rec),
					"stack":      string(debug.Stack()),
				})
				httpjson.WriteInternalError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
