// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the contract between ggres and a rendering library.
//
// ggres never draws anything itself. It asks a Backend for windows, charts
// and primitives, keeps them in its caches, and destroys them in dependency
// order. Everything a backend hands out is an opaque capability handle
// described by the interfaces in this package.
//
// # Key Principle
//
// Primitives and charts hold resources that belong to a window's rendering
// context. A backend may assume that every Resource it created is destroyed
// before the window whose context was current at creation time.
//
// # Core Interfaces
//
//   - Window: a rendering surface with its own context and chart grid layout
//   - Chart: a 2D or 3D container with a draw list of primitives
//   - Image, Plot, Histogram, Surface, VectorField: drawable primitives
//   - Font: the session typeface used for titles and labels
//   - Backend: the factory producing all of the above
//
// # Parameters
//
// ChartKind, ChannelFormat, DType, PlotType and MarkerType are small enums.
// Their numeric values fit in four bits so the key package can pack them
// into cache keys.
//
// # Thread Safety
//
// Rendering contexts are thread-affine. Backends are not required to be
// safe for concurrent use; ggres serializes every call it makes.
package render
