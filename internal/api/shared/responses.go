package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phrazzld/destiny-matrix/internal/platform/logger"
	"github.com/phrazzld/destiny-matrix/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithYAML writes a YAML response with the given status code and data.
func RespondWithYAML(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	body, err := yaml.Marshal(data)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to encode YAML response", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.FromContext(r.Context()).Debug("failed to write YAML response", "error", err)
	}
}

// Respond writes data as YAML when the client asks for it through the Accept
// header or a format=yaml query parameter, and as JSON otherwise. Errors are
// always JSON.
func Respond(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if WantsYAML(r) {
		RespondWithYAML(w, r, status, data)
		return
	}
	RespondWithJSON(w, r, status, data)
}

// WantsYAML reports whether the request negotiates a YAML body.
func WantsYAML(r *http.Request) bool {
	if strings.EqualFold(r.URL.Query().Get("format"), "yaml") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/yaml") || strings.Contains(accept, "text/yaml")
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrorAndLog(w, r, status, message, nil)
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// The client only ever sees userMessage; err is redacted and goes to the log.
//
// Log level strategy:
// - 5xx errors: logged at ERROR level
// - everything else: logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", redact.String(r.URL.Path)),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
	})
}
