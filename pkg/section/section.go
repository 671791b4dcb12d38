// Package section generates 2D cross-section profiles for girder and
// barrier-rail shapes. Profiles are keyed by typed shape codes through a
// registry, so new girder or rail families can be added without touching
// existing generators. Girder profiles compose straight segments with
// circular fillet arcs; rail profiles come from fixed per-code templates
// parametrized by overall rail height.
package section

import (
	"github.com/dlawry/bridgegeom/pkg/geom"
)

// DefaultArcSamples is the number of points used to sample each fillet
// arc unless overridden with WithArcSamples.
const DefaultArcSamples = 50

// girderEntry pairs the resolved dimensions with the profile routine.
type girderEntry struct {
	dims  BeamGeometry
	build func(BeamGeometry, int) geom.Polyline
}

// railEntry pairs the rail footprint with the template routine.
type railEntry struct {
	dims  RailGeometry
	build railTemplate
}

// Generator is the cross-section profile registry. It is constructed
// once with the builtin shape families and is safe for concurrent use
// after construction as long as no further registrations happen.
type Generator struct {
	arcSamples int
	girders    map[GirderShape]girderEntry
	rails      map[RailShape]railEntry
}

// Option configures a Generator.
type Option func(*Generator)

// WithArcSamples overrides the per-fillet-arc sample count.
func WithArcSamples(n int) Option {
	return func(g *Generator) {
		if n >= 2 {
			g.arcSamples = n
		}
	}
}

// NewGenerator builds a Generator with the NU girder series and the
// standard rail table registered.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		arcSamples: DefaultArcSamples,
		girders:    make(map[GirderShape]girderEntry),
		rails:      make(map[RailShape]railEntry),
	}
	for _, opt := range opts {
		opt(g)
	}

	for shape, height := range nuHeights {
		g.RegisterGirder(nuGeometry(shape, height), nuProfile)
	}

	for _, r := range []struct {
		dims  RailGeometry
		build railTemplate
	}{
		{RailGeometry{Rail39SSCR, 39, 10, 2}, rail39SSCR},
		{RailGeometry{Rail39OCR, 39, 10, 2}, rail39OCR},
		{RailGeometry{Rail42NUO, 42, 10.5, 2}, rail42NUOpen},
		{RailGeometry{Rail42NUC, 42, 10.5, 2}, rail42NUClosed},
		{RailGeometry{Rail42NUM, 42, 17, 2}, rail42NUMedian},
		{RailGeometry{Rail34NUO, 34, 10.5, 2}, rail34NUOpen},
		{RailGeometry{Rail34NUC, 34, 10.5, 2}, rail34NUClosed},
		{RailGeometry{Rail29NEO, 29, 9.5, 2}, rail29NEOpen},
		{RailGeometry{Rail29NEC, 29, 9.5, 2}, rail29NEClosed},
		{RailGeometry{Rail42NJ, 42, 16, 2}, rail42NJ},
		{RailGeometry{Rail32NJ, 32, 16, 2}, rail32NJ},
	} {
		g.RegisterRail(r.dims, r.build)
	}
	return g
}

// RegisterGirder installs (or replaces) a girder shape code.
func (g *Generator) RegisterGirder(dims BeamGeometry, build func(BeamGeometry, int) geom.Polyline) {
	g.girders[dims.Shape] = girderEntry{dims: dims, build: build}
}

// RegisterRail installs (or replaces) a rail shape code.
func (g *Generator) RegisterRail(dims RailGeometry, build railTemplate) {
	g.rails[dims.Shape] = railEntry{dims: dims, build: build}
}

// BeamDims resolves the immutable dimensions for a girder shape code.
func (g *Generator) BeamDims(shape GirderShape) (BeamGeometry, error) {
	e, ok := g.girders[shape]
	if !ok {
		return BeamGeometry{}, &geom.UnsupportedShapeError{Shape: string(shape)}
	}
	return e.dims, nil
}

// GirderProfile builds the closed cross-section polyline for a girder
// shape code, in local inches. Unregistered codes fail rather than
// returning degenerate geometry.
func (g *Generator) GirderProfile(shape GirderShape) (geom.Polyline, error) {
	e, ok := g.girders[shape]
	if !ok {
		return nil, &geom.UnsupportedShapeError{Shape: string(shape)}
	}
	return e.build(e.dims, g.arcSamples), nil
}

// RailDims resolves the footprint for a rail shape code.
func (g *Generator) RailDims(shape RailShape) (RailGeometry, error) {
	e, ok := g.rails[shape]
	if !ok {
		return RailGeometry{}, &geom.UnsupportedShapeError{Shape: string(shape)}
	}
	return e.dims, nil
}

// RailProfile builds the rail template polyline for a shape code. A
// non-positive height selects the code's standard height.
func (g *Generator) RailProfile(shape RailShape, height float64) (geom.Polyline, error) {
	e, ok := g.rails[shape]
	if !ok {
		return nil, &geom.UnsupportedShapeError{Shape: string(shape)}
	}
	if height <= 0 {
		height = e.dims.Height
	}
	return e.build(height), nil
}
