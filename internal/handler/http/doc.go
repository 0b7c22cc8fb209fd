// Package http implements the HTTP surface the sync service exposes in
// serve mode.
//
// It wires the deletion webhook, the manual sync trigger, and the sync
// history endpoints, plus the middleware handling authentication, request
// tracing, and access logging before requests reach the sync engine.
package http
