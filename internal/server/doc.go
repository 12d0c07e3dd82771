// Package server exposes the HTTP surface: event ingestion, content and
// profile registration, score reads, the live score WebSocket and the
// observability endpoints.
package server
