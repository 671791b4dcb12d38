// Package haunch builds 3D face sets for the concrete haunch volumes
// between the girder top flanges and the deck slab. Each girder
// contributes two stacked bands, the constant minimum-haunch layer and
// the variable buildup below it, meshed as quad faces in (station,
// offset, elevation) coordinates. Where a flange pair straddles the
// alignment centerline the top face is split along the crown ridge so
// the mesh carries the true break instead of a flat approximation.
package haunch

import (
	"github.com/dlawry/bridgegeom/pkg/geom"
)

// FlangeLine is the longitudinal sample series along one flange edge of
// a girder. All slices must have the same length; stations and
// elevations are in feet, offsets are signed feet from the alignment
// centerline.
type FlangeLine struct {
	Station     []float64
	Offset      []float64
	DeckBottom  []float64 // deck-bottom reference elevation
	MinHaunch   []float64 // minimum-haunch boundary elevation
	BearingSeat []float64 // top of the minimum-haunch layer
	TopOfGirder []float64
}

func (l FlangeLine) check(side string, girder int) error {
	n := len(l.Station)
	if n == 0 {
		return geom.Configf("girder %d %s flange line has no samples", girder, side)
	}
	for _, s := range []struct {
		name string
		len  int
	}{
		{"offset", len(l.Offset)},
		{"deck bottom", len(l.DeckBottom)},
		{"min haunch", len(l.MinHaunch)},
		{"bearing seat", len(l.BearingSeat)},
		{"top of girder", len(l.TopOfGirder)},
	} {
		if s.len != n {
			return geom.Configf("girder %d %s flange line: %s series has %d samples, station has %d",
				girder, side, s.name, s.len, n)
		}
	}
	return nil
}

// Girder pairs the left and right flange lines of one girder.
type Girder struct {
	Left, Right FlangeLine
}

// Span holds the girders of one structural span. Every flange line in a
// span must carry the same number of samples.
type Span struct {
	Girders []Girder
}

// GirderSeries is the full per-span, per-girder elevation dataset.
type GirderSeries struct {
	Spans []Span
}

func (s GirderSeries) validate() error {
	if len(s.Spans) == 0 {
		return geom.Configf("girder series has no spans")
	}
	for si, span := range s.Spans {
		if len(span.Girders) == 0 {
			return geom.Configf("span %d has no girders", si)
		}
		n := len(span.Girders[0].Left.Station)
		for gi, g := range span.Girders {
			if err := g.Left.check("left", gi); err != nil {
				return err
			}
			if err := g.Right.check("right", gi); err != nil {
				return err
			}
			if len(g.Left.Station) != n || len(g.Right.Station) != n {
				return geom.Configf("span %d: girder %d has %d/%d samples, girder 0 has %d",
					si, gi, len(g.Left.Station), len(g.Right.Station), n)
			}
		}
	}
	return nil
}
