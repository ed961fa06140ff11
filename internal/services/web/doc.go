// Package web owns the browser-facing informational pages of Foodgram.
//
// It composes the public page module, embedded stylesheets and operational
// endpoints behind one middleware chain, and runs the HTTP server with
// graceful shutdown.
package web
