// Package alignment evaluates the parabolic vertical road-profile curve
// that carries the profile grade line. A curve is constructed once per
// report run from the five design scalars and is immutable afterwards.
package alignment

import (
	"github.com/dlawry/bridgegeom/pkg/geom"
)

// VerticalCurve is a symmetric parabolic crest/sag curve defined by its
// VPI (vertical point of intersection), approach and departure grades in
// percent, and curve length in feet. Outside [VPC, VPT] the profile
// follows the grade tangents, so elevation and slope are continuous at
// both curve boundaries.
type VerticalCurve struct {
	staVPI  float64
	elevVPI float64
	grade1  float64 // percent
	grade2  float64 // percent
	length  float64

	staVPC  float64
	staVPT  float64
	elevVPC float64
	elevVPT float64
	rate    float64 // curvature rate r = (g2 - g1) / (100 L), 1/ft
}

// NewVerticalCurve derives the curve constants from the design scalars.
// The curve length must be positive.
func NewVerticalCurve(staVPI, elevVPI, grade1, grade2, length float64) (*VerticalCurve, error) {
	if length <= 0 {
		return nil, geom.Configf("vertical curve length %g must be positive", length)
	}
	vc := &VerticalCurve{
		staVPI:  staVPI,
		elevVPI: elevVPI,
		grade1:  grade1,
		grade2:  grade2,
		length:  length,
	}
	half := length / 2
	vc.staVPC = staVPI - half
	vc.staVPT = staVPI + half
	vc.elevVPC = elevVPI - grade1/100*half
	vc.rate = (grade2 - grade1) / (100 * length)
	vc.elevVPT = vc.elevVPC + grade1/100*length + vc.rate/2*length*length
	return vc, nil
}

// VPC returns the station of the vertical point of curvature.
func (vc *VerticalCurve) VPC() float64 { return vc.staVPC }

// VPT returns the station of the vertical point of tangency.
func (vc *VerticalCurve) VPT() float64 { return vc.staVPT }

// ElevVPC returns the elevation at the VPC.
func (vc *VerticalCurve) ElevVPC() float64 { return vc.elevVPC }

// ElevVPT returns the elevation at the VPT.
func (vc *VerticalCurve) ElevVPT() float64 { return vc.elevVPT }

// Elev returns the profile grade elevation at a station. Stations before
// the VPC lie on the grade-1 tangent, stations past the VPT lie on the
// grade-2 tangent, and stations in between lie on the parabola.
func (vc *VerticalCurve) Elev(station float64) float64 {
	switch {
	case station <= vc.staVPC:
		return vc.elevVPC + vc.grade1/100*(station-vc.staVPC)
	case station >= vc.staVPT:
		return vc.elevVPT + vc.grade2/100*(station-vc.staVPT)
	default:
		x := station - vc.staVPC
		return vc.elevVPC + vc.grade1/100*x + vc.rate/2*x*x
	}
}

// ElevSeries evaluates Elev over a station series, preserving order.
func (vc *VerticalCurve) ElevSeries(stations []float64) []float64 {
	out := make([]float64, len(stations))
	for i, s := range stations {
		out[i] = vc.Elev(s)
	}
	return out
}

// Grade returns the profile slope at a station in ft/ft. The slope is
// grade1/100 before the VPC, grade2/100 past the VPT, and varies
// linearly through the curve.
func (vc *VerticalCurve) Grade(station float64) float64 {
	switch {
	case station <= vc.staVPC:
		return vc.grade1 / 100
	case station >= vc.staVPT:
		return vc.grade2 / 100
	default:
		return vc.grade1/100 + vc.rate*(station-vc.staVPC)
	}
}
