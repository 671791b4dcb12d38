// Package deck builds the transverse deck cross-section profile: the
// crowned top surface, the deck-bottom run with a flat relief notch
// under each girder flange, and the flat shelves that carry the barrier
// rails. Horizontal and vertical coordinates are local inches with x = 0
// at the left deck edge and y = 0 at the deck bottom over that edge.
package deck

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/dlawry/bridgegeom/pkg/geom"
)

// DefaultNotchDepth is the flange relief depth in inches: girders sit
// with their top flange this far below the deck-bottom surface.
const DefaultNotchDepth = 1.0

// Params holds the deck cross-section scalars. Lengths tagged ft are in
// feet, the rest in inches.
type Params struct {
	DeckWidth        float64 // ft, overall out-to-out
	CantileverLength float64 // ft, left deck edge to first girder centerline
	BeamSpacing      float64 // ft
	BeamCount        int
	PGLOffset        float64 // ft, grade-line offset from the left deck edge
	RoadwaySlope     float64 // ft/ft, magnitude of the crown slope
	FlangeWidth      float64 // ft, girder top flange width
	RailBottomWidth  float64 // in
	RailEdgeDistance float64 // in
	DeckThickness    float64 // in, structural deck thickness
	NotchDepth       float64 // in, zero selects DefaultNotchDepth
}

func (p Params) validate() error {
	if p.DeckWidth <= 0 {
		return geom.Configf("deck width %g must be positive", p.DeckWidth)
	}
	if p.BeamCount < 1 {
		return geom.Configf("beam count %d must be at least 1", p.BeamCount)
	}
	if p.BeamCount > 1 && p.BeamSpacing <= 0 {
		return geom.Configf("beam spacing %g must be positive", p.BeamSpacing)
	}
	if p.FlangeWidth <= 0 {
		return geom.Configf("flange width %g must be positive", p.FlangeWidth)
	}
	return nil
}

func (p Params) notchDepth() float64 {
	if p.NotchDepth > 0 {
		return p.NotchDepth
	}
	return DefaultNotchDepth
}

// Surface returns the deck-bottom surface elevation at x inches from
// the left deck edge. The surface rises at RoadwaySlope toward the
// grade line and falls at the same rate beyond it; the slope sign
// switches exactly at the PGL. Every other elevation in the package
// derives from this one formula.
func (p Params) Surface(x float64) float64 {
	pgl := p.PGLOffset * 12
	if x <= pgl {
		return p.RoadwaySlope * x
	}
	return p.RoadwaySlope * (2*pgl - x)
}

// SurfaceTop returns the deck top surface at x inches: the bottom
// surface raised by the deck thickness.
func (p Params) SurfaceTop(x float64) float64 {
	return p.Surface(x) + p.DeckThickness
}

// flangeEdges returns the left and right flange edge positions of
// girder i, in inches.
func (p Params) flangeEdges(i int) (fl, fr float64) {
	fl = (p.CantileverLength + float64(i)*p.BeamSpacing - p.FlangeWidth/2) * 12
	fr = fl + p.FlangeWidth*12
	return fl, fr
}

// SeatElevation returns the top-of-flange elevation for girder i: the
// notch depth below the bottom surface at the girder's lower flange
// edge. For a flange straddling the PGL both edges mirror through the
// crown, so the PGL-side slope governs on both sides of the clip.
func (p Params) SeatElevation(i int) float64 {
	fl, fr := p.flangeEdges(i)
	return math.Min(p.Surface(fl), p.Surface(fr)) - p.notchDepth()
}

// BeamSeats returns the seat elevation of every girder, left to right.
// Girder profiles are placed with their top flange at these elevations.
func BeamSeats(p Params) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	seats := make([]float64, p.BeamCount)
	for i := range seats {
		seats[i] = p.SeatElevation(i)
	}
	return seats, nil
}

// Profile builds the closed deck outline: the bottom run left to right
// with a notch under each flange, the right edge riser, the crowned top
// surface with flat shelves under both rails, and the left edge riser.
func Profile(p Params) (geom.Polyline, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	w := p.DeckWidth * 12
	pgl := p.PGLOffset * 12
	clear := (p.BeamSpacing - p.FlangeWidth) * 12

	pts := geom.Polyline{{X: 0, Y: 0}}

	for i := 0; i < p.BeamCount; i++ {
		fl, fr := p.flangeEdges(i)
		notch := p.SeatElevation(i)

		if fl < pgl {
			pts = append(pts,
				v2.Vec{X: fl, Y: p.Surface(fl)},
				v2.Vec{X: fl, Y: notch},
				v2.Vec{X: fr, Y: notch},
				v2.Vec{X: fr, Y: p.Surface(fr)},
			)
			if fr <= pgl {
				// Follow the surface to the PGL crossing or the next
				// flange, whichever is nearer. Ending at the crossing
				// places the slope break exactly at the PGL.
				run := math.Min(pgl-fr, clear)
				if run > 0 {
					pts = append(pts, v2.Vec{X: fr + run, Y: p.Surface(fr + run)})
				}
			}
		} else {
			// Approach from the crown side: walk the surface down from
			// the PGL crossing (or the previous flange) to this flange.
			run := math.Min(fl-pgl, clear)
			if run > 0 {
				pts = append(pts, v2.Vec{X: fl - run, Y: p.Surface(fl - run)})
			}
			pts = append(pts,
				v2.Vec{X: fl, Y: p.Surface(fl)},
				v2.Vec{X: fl, Y: notch},
				v2.Vec{X: fr, Y: notch},
				v2.Vec{X: fr, Y: p.Surface(fr)},
			)
		}
	}

	shelf := p.RailBottomWidth + p.RailEdgeDistance
	pts = append(pts,
		// Bottom-right corner and right edge riser.
		v2.Vec{X: w, Y: p.Surface(w)},
		v2.Vec{X: w, Y: p.SurfaceTop(w - shelf)},
		// Flat shelf under the right rail.
		v2.Vec{X: w - shelf, Y: p.SurfaceTop(w - shelf)},
		// Crowned top surface.
		v2.Vec{X: pgl, Y: p.SurfaceTop(pgl)},
		v2.Vec{X: shelf, Y: p.SurfaceTop(shelf)},
		// Flat shelf under the left rail and left edge riser.
		v2.Vec{X: 0, Y: p.SurfaceTop(shelf)},
		v2.Vec{X: 0, Y: 0},
	)
	return dedupe(pts), nil
}

// dedupe drops consecutive coincident vertices. Adjacent surface runs
// meeting at the crown would otherwise emit the break point twice.
func dedupe(pts geom.Polyline) geom.Polyline {
	out := pts[:1]
	for _, pt := range pts[1:] {
		last := out[len(out)-1]
		if pt.X == last.X && pt.Y == last.Y {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// StageCut is one vertical staged-construction cut line through the
// deck, clipped between the deck top and either the deck bottom or, when
// the cut lands over a girder flange, the top of that flange.
type StageCut struct {
	X      float64 // in
	Top    float64
	Bottom float64
}

// StagingCuts locates the staged-pour cut lines. Offsets are in feet
// from the left deck edge.
func StagingCuts(p Params, offsets ...float64) ([]StageCut, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	cuts := make([]StageCut, 0, len(offsets))
	for _, off := range offsets {
		x := off * 12
		cut := StageCut{X: x, Top: p.SurfaceTop(x), Bottom: p.Surface(x)}
		for i := 0; i < p.BeamCount; i++ {
			fl, fr := p.flangeEdges(i)
			if x >= fl && x <= fr {
				cut.Bottom = p.SeatElevation(i)
				break
			}
		}
		cuts = append(cuts, cut)
	}
	return cuts, nil
}
