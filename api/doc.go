// Package api exposes image discovery over HTTP.
//
// The server offers a single discovery endpoint plus operational surfaces:
//
//   - POST /v1/discover          run discovery for one article
//   - GET  /v1/discoveries/recent list recent journal entries (journal required)
//   - GET  /health               liveness probe
//   - GET  /metrics              Prometheus metrics
//
// Discovery failures map onto the HTTP status space: validation errors are
// 400, exhausted escalation is 502, and timeouts are 504. The metrics
// endpoint serves a private registry so tests can run servers side by side.
package api
