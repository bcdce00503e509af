// Package binder decodes HTTP request bodies into typed values with
// strict JSON handling: content-type enforcement, a body size cap,
// unknown-field rejection, and trailing-data detection.
package binder
