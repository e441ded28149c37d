// Package server exposes the planner over HTTP with gin.
//
// Routes:
//
//	GET  /                      HTML overview of terrain classes
//	GET  /healthz               liveness probe
//	GET  /metrics               Prometheus metrics
//	GET  /api/v1/terrain        classes, prices and impassable flags
//	POST /api/v1/costmap        labels + costs -> grid summary and per-class stats
//	POST /api/v1/surface        labels + costs + source -> accumulated-cost raster
//	POST /api/v1/routes         labels + costs + start/goal -> path and statistics
//	POST /api/v1/routes/batch   many start/goal pairs over one grid, planned concurrently
//
// Middleware, outermost first: request ID (X-Request-ID), structured access
// log (log/slog), token-bucket rate limiting (golang.org/x/time/rate, 429),
// and brotli decoding of request bodies (Content-Encoding: br) and encoding
// of responses (Accept-Encoding: br).
//
// Error mapping: malformed input, invalid costs, unknown classes and
// out-of-bounds cells -> 400; oversized grids or batches -> 413; no path ->
// 422; exhausted search budget -> 504.
package server
