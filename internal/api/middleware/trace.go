package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/destiny-matrix/internal/api/shared"
	"github.com/phrazzld/destiny-matrix/internal/platform/logger"
	"github.com/phrazzld/destiny-matrix/internal/redact"
)

// TraceMiddleware adds a trace ID to the request context and a logger carrying
// it. A valid incoming X-Trace-ID header is reused; otherwise a new ID is
// generated. The ID is echoed in the response header.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(shared.TraceIDHeader)
		if !shared.ValidTraceID(traceID) {
			traceID = shared.NewTraceID()
		}

		log := logger.FromContext(r.Context()).With(slog.String("trace_id", traceID))
		ctx := logger.WithLogger(shared.WithTraceID(r.Context(), traceID), log)

		w.Header().Set(shared.TraceIDHeader, traceID)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", redact.String(r.URL.Path)),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
