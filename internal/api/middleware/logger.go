package middleware

import (
	"net/http"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/logger"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logger writes one structured line per request. Server errors log at error
// level, client errors at warn.
func Logger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			kv := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"route", routePattern(r),
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if reqID := chimw.GetReqID(r.Context()); reqID != "" {
				kv = append(kv, "request_id", reqID)
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Error("request completed", kv...)
			case status >= http.StatusBadRequest:
				log.Warn("request completed", kv...)
			default:
				log.Info("request completed", kv...)
			}
		})
	}
}
