package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/destiny-matrix/internal/platform/logger"
	"github.com/phrazzld/destiny-matrix/internal/redact"
)

// RequestLogger logs one structured line per request through the context
// logger. Paths are redacted because GET /api/matrix/{birthdate} carries a
// birth date.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.FromContext(r.Context()).LogAttrs(r.Context(), slog.LevelInfo, "request completed",
				slog.String("method", r.Method),
				slog.String("path", redact.String(r.URL.Path)),
				slog.String("request_id", chimiddleware.GetReqID(r.Context())),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)))
		}()

		next.ServeHTTP(ww, r)
	})
}
