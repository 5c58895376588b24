// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and MatrixService, translating HTTP concerns to matrix operations and
// domain errors back to status codes.
package api
