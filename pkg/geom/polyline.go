package geom

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Polyline is an ordered sequence of 2D points. Units depend on context:
// cross-section shapes use local inches, deck and drawing profiles use
// feet. For closed shapes the implicit closing edge connects the last
// point to the first.
type Polyline []v2.Vec

// Bounds returns the axis-aligned bounding box of the polyline.
// An empty polyline returns two zero vectors.
func (p Polyline) Bounds() (min, max v2.Vec) {
	if len(p) == 0 {
		return v2.Vec{}, v2.Vec{}
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max
}

// Closed reports whether the first and last points coincide within tol.
func (p Polyline) Closed(tol float64) bool {
	if len(p) < 3 {
		return false
	}
	first, last := p[0], p[len(p)-1]
	return math.Abs(first.X-last.X) <= tol && math.Abs(first.Y-last.Y) <= tol
}

// SymmetricAbout reports whether every point (x, y) has a mirror partner
// (2*axis - x, y) in the polyline within tol. Cross-section profiles are
// required to satisfy this about their local vertical centerline.
func (p Polyline) SymmetricAbout(axis, tol float64) bool {
	for _, pt := range p {
		mx := 2*axis - pt.X
		found := false
		for _, q := range p {
			if math.Abs(q.X-mx) <= tol && math.Abs(q.Y-pt.Y) <= tol {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Translate returns a copy of the polyline shifted by (dx, dy).
func (p Polyline) Translate(dx, dy float64) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = v2.Vec{X: pt.X + dx, Y: pt.Y + dy}
	}
	return out
}

// Scale returns a copy of the polyline with both coordinates multiplied
// by k. Used for inch/foot unit conversion of shape templates.
func (p Polyline) Scale(k float64) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = v2.Vec{X: pt.X * k, Y: pt.Y * k}
	}
	return out
}
