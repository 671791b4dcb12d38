package section

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/dlawry/bridgegeom/pkg/geom"
)

// tangentOffset returns the distance along each edge from the nominal
// corner to the fillet tangent points, for a taper edge inclined theta
// radians from horizontal meeting a vertical edge:
//
//	d = R * tan(pi/4 - theta/2)
func tangentOffset(radius, theta float64) float64 {
	return radius * math.Tan(math.Pi/4-theta/2)
}

// arcSide selects the lower or upper semicircle of a fillet circle.
type arcSide int

const (
	arcUpper arcSide = iota
	arcLower
)

// filletArc samples n points on the circle of the given radius centered
// at (cx, cy), with x varying linearly from x0 to x1 inclusive and
// y = cy ± sqrt(r² − (x−cx)²) per the chosen side. Every sample lies
// exactly on the circle, so downstream consumers may rely on the arc
// radius to floating tolerance.
func filletArc(cx, cy, radius, x0, x1 float64, n int, side arcSide) geom.Polyline {
	if n < 2 {
		n = 2
	}
	pts := make(geom.Polyline, 0, n)
	for i := 0; i < n; i++ {
		x := x0 + (x1-x0)*float64(i)/float64(n-1)
		dx := x - cx
		dy := math.Sqrt(math.Max(0, radius*radius-dx*dx))
		if side == arcLower {
			dy = -dy
		}
		pts = append(pts, v2.Vec{X: x, Y: cy + dy})
	}
	return pts
}

// appendArc appends arc points to a polyline, dropping the leading arc
// sample when it coincides with the current endpoint. Fillet arcs start
// exactly at the tangent point the straight segment already reached.
func appendArc(p geom.Polyline, arc geom.Polyline) geom.Polyline {
	for i, pt := range arc {
		if i == 0 && len(p) > 0 {
			last := p[len(p)-1]
			if math.Abs(last.X-pt.X) < 1e-12 && math.Abs(last.Y-pt.Y) < 1e-12 {
				continue
			}
		}
		p = append(p, pt)
	}
	return p
}
