// Package service contains the application use cases built on the domain
// packages. MatrixService turns birth dates, or previously derived matrices,
// into complete readings.
//
// The service layer adds the cross-cutting concerns the pure domain code does
// not carry:
//
//   - structured logging with personal data redacted
//   - Prometheus metrics for outcomes, latency and emitted insights
//   - OpenTelemetry spans around every operation
//   - bounded concurrent fan-out for batch calculations
//
// Domain errors are wrapped in MatrixServiceError and remain reachable through
// errors.Is, which is how the API layer picks status codes.
package service
