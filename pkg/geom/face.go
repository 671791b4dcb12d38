package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Band labels which haunch volume a face belongs to.
type Band int

const (
	BandMinimumHaunch Band = iota
	BandVariableHaunch
)

func (b Band) String() string {
	switch b {
	case BandMinimumHaunch:
		return "MinimumHaunch"
	case BandVariableHaunch:
		return "VariableHaunch"
	}
	return "unknown"
}

// FaceKind labels the orientation of a face within a haunch band.
type FaceKind int

const (
	FaceBottom FaceKind = iota
	FaceTop
	FaceLeft
	FaceRight
	FaceCap
)

func (k FaceKind) String() string {
	switch k {
	case FaceBottom:
		return "bottom"
	case FaceTop:
		return "top"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceCap:
		return "cap"
	}
	return "unknown"
}

// Face is an ordered 4-point loop in (station, offset, elevation)
// coordinates. X is station, Y is transverse offset, Z is elevation,
// all in feet. Vertices are ordered consistently around the loop;
// winding is not required for numeric correctness.
type Face struct {
	V    [4]v3.Vec
	Band Band
	Kind FaceKind
}

// Finite reports whether every coordinate of the face is a finite number.
func (f Face) Finite() bool {
	for _, v := range f.V {
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
	}
	return true
}
