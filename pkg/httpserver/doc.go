// Package httpserver provides an http.Server wrapper with graceful
// shutdown on context cancellation or OS signals, functional options,
// and env-driven configuration.
package httpserver
