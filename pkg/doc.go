// Package pkg provides the core libraries for Gridboard dashboard layout.
//
// # Overview
//
// Gridboard models a dashboard as widgets on a mixed-unit canvas: horizontal
// positions and widths are percentages of the container, vertical positions
// and heights are pixels. The pkg directory is organized into three areas:
//
//  1. Layout engine - grid geometry, the board store, gestures, auto-arrange
//  2. Persistence - the record codec, storage backends, and the gateway
//  3. Supporting libraries - config, errors, observability, sketch export
//
// # Architecture
//
// The typical data flow through Gridboard:
//
//	Storage Backend (memory / file / redis / mongo)
//	         ↓ load (forgiving: falls back to the default catalogue)
//	Board Store (items, selection, edit mode)
//	         ↓ gestures (drag / resize via grid cell deltas)
//	Gesture Controller → Auto-Arrange (row packing)
//	         ↓ commit
//	Storage Backend / SVG sketch / HTTP board service
//
// # Packages
//
//   - [grid] - coordinate model, cell quantization, resize handles
//   - [board] - widget types, the item store, visibility rules
//   - [gesture] - the drag/resize state machine
//   - [arrange] - deterministic row packing
//   - [storage] - record codec, backends, and the load/save gateway
//   - [sketch] - SVG wireframe export
//   - [config] - TOML configuration
//   - [errors] - structured error codes
//   - [observability] - gesture, arrange, and storage hooks
//   - [buildinfo] - version metadata injected at build time
package pkg
