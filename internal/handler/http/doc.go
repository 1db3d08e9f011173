// Package http implements the HTTP transport layer of the relay.
//
// It exposes the session endpoints called by the host page, the WebSocket
// channel used by the embedded application and the health endpoints.
// Request tracing, access logging, host token extraction, session lookup and
// CORS are handled in this package before requests reach the relay.
package http
