// Package backend is the registry of rendering backends.
//
// Backends register a Factory from an init() function and are selected at
// runtime by name or by priority. The software backend registers itself
// when its package is imported:
//
//	import _ "github.com/gogpu/ggres/backend/soft"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b, err := backend.Get(backend.BackendRecord)
//
// The manager in package ggres calls Default() when no backend is passed
// with ggres.WithBackend.
package backend
