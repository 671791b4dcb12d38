// Package geom defines the shared geometric data model for the bridge
// drawing engine: 2D polylines in local shape coordinates, 3D quad faces
// in (station, offset, elevation) coordinates, and the error taxonomy
// used by every component. All types are plain values; nothing in this
// package holds mutable state.
package geom
