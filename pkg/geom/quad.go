package geom

import v3 "github.com/deadsy/sdfx/vec/v3"

// SplitQuadAtCenterline splits a longitudinal quad at the vertical plane
// offset = 0. The input quad must be ordered
//
//	V[0] = left edge, near station
//	V[1] = right edge, near station
//	V[2] = right edge, far station
//	V[3] = left edge, far station
//
// and the caller supplies the two ridge vertices where the plane meets
// the near and far station lines (both with Y = 0). The two halves share
// the ridge vertices exactly, so the crown line is preserved instead of
// being flattened into a single planar quad.
func SplitQuadAtCenterline(q Face, ridgeNear, ridgeFar v3.Vec) (left, right Face) {
	left = Face{
		V:    [4]v3.Vec{q.V[0], ridgeNear, ridgeFar, q.V[3]},
		Band: q.Band,
		Kind: q.Kind,
	}
	right = Face{
		V:    [4]v3.Vec{ridgeNear, q.V[1], q.V[2], ridgeFar},
		Band: q.Band,
		Kind: q.Kind,
	}
	return left, right
}

// StraddlesCenterline reports whether two transverse offsets lie on
// opposite sides of the alignment centerline. Samples exactly on the
// centerline do not straddle it.
func StraddlesCenterline(leftOff, rightOff float64) bool {
	return (leftOff > 0 && rightOff < 0) || (leftOff < 0 && rightOff > 0)
}
