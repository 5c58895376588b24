// Package logger sets up the JSON slog logger shared by the server and the
// CLI, and carries request-scoped loggers (tagged with a trace ID) through
// context.Context.
package logger
