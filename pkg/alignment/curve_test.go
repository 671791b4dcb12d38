package alignment

import (
	"errors"
	"math"
	"testing"

	"github.com/dlawry/bridgegeom/pkg/geom"
)

// Design values from a real two-span NU girder structure.
const (
	tStaVPI  = 11510.0
	tElevVPI = 2242.50
	tGrade1  = 4.92
	tGrade2  = -5.18
	tLength  = 845.0
)

func newTestCurve(t *testing.T) *VerticalCurve {
	t.Helper()
	vc, err := NewVerticalCurve(tStaVPI, tElevVPI, tGrade1, tGrade2, tLength)
	if err != nil {
		t.Fatalf("NewVerticalCurve failed: %v", err)
	}
	return vc
}

func TestDerivedConstants(t *testing.T) {
	vc := newTestCurve(t)

	if got := vc.VPC(); got != 11087.5 {
		t.Errorf("VPC = %v, want 11087.5", got)
	}
	if got := vc.VPT(); got != 11932.5 {
		t.Errorf("VPT = %v, want 11932.5", got)
	}
	wantElevVPC := tElevVPI - tGrade1/100*(tLength/2) // 2242.50 - 0.0492*422.5
	if got := vc.ElevVPC(); math.Abs(got-wantElevVPC) > 1e-9 {
		t.Errorf("ElevVPC = %v, want %v", got, wantElevVPC)
	}
	if got := vc.Elev(vc.VPC()); math.Abs(got-2221.713) > 1e-2 {
		t.Errorf("Elev(VPC) = %v, want ~2221.71", got)
	}
}

func TestNonPositiveLength(t *testing.T) {
	for _, l := range []float64{0, -845} {
		_, err := NewVerticalCurve(tStaVPI, tElevVPI, tGrade1, tGrade2, l)
		if err == nil {
			t.Fatalf("NewVerticalCurve(length=%v) succeeded, want error", l)
		}
		var cfg *geom.ConfigurationError
		if !errors.As(err, &cfg) {
			t.Errorf("length=%v: error %T, want *geom.ConfigurationError", l, err)
		}
	}
}

func TestTangentsOutsideCurve(t *testing.T) {
	vc := newTestCurve(t)

	// Before the VPC the profile is the grade-1 tangent through the VPI.
	for _, s := range []float64{10500, 10900, 11087.5} {
		want := tElevVPI + tGrade1/100*(s-tStaVPI)
		if got := vc.Elev(s); math.Abs(got-want) > 1e-9 {
			t.Errorf("Elev(%v) = %v, want tangent %v", s, got, want)
		}
	}
	// Past the VPT the profile is the grade-2 tangent through the VPI.
	for _, s := range []float64{11932.5, 12100, 12600} {
		want := tElevVPI + tGrade2/100*(s-tStaVPI)
		if got := vc.Elev(s); math.Abs(got-want) > 1e-9 {
			t.Errorf("Elev(%v) = %v, want tangent %v", s, got, want)
		}
	}
}

func TestContinuityAtCurveEnds(t *testing.T) {
	vc := newTestCurve(t)
	const h = 1e-6

	for _, boundary := range []float64{vc.VPC(), vc.VPT()} {
		below := vc.Elev(boundary - h)
		at := vc.Elev(boundary)
		above := vc.Elev(boundary + h)

		// Value continuity.
		if math.Abs(at-below) > 1e-6 || math.Abs(above-at) > 1e-6 {
			t.Errorf("value discontinuity at %v: %v / %v / %v", boundary, below, at, above)
		}
		// Slope continuity: one-sided finite differences must agree.
		slopeBelow := (at - below) / h
		slopeAbove := (above - at) / h
		if math.Abs(slopeBelow-slopeAbove) > 1e-4 {
			t.Errorf("slope discontinuity at %v: %v vs %v", boundary, slopeBelow, slopeAbove)
		}
		// And both must match the analytic grade.
		if g := vc.Grade(boundary); math.Abs(slopeAbove-g) > 1e-4 {
			t.Errorf("Grade(%v) = %v, finite difference %v", boundary, g, slopeAbove)
		}
	}
}

func TestElevSeries(t *testing.T) {
	vc := newTestCurve(t)
	stations := []float64{11000, 11200, 11510, 11800, 12000}
	elevs := vc.ElevSeries(stations)
	if len(elevs) != len(stations) {
		t.Fatalf("ElevSeries returned %d values for %d stations", len(elevs), len(stations))
	}
	for i, s := range stations {
		if elevs[i] != vc.Elev(s) {
			t.Errorf("ElevSeries[%d] = %v, Elev(%v) = %v", i, elevs[i], s, vc.Elev(s))
		}
	}
}

func TestCrestShape(t *testing.T) {
	vc := newTestCurve(t)

	// Crest curve: the high point lies strictly inside the curve and
	// every interior elevation stays below both tangents extended.
	high := vc.VPC() + tGrade1/100/(-vc.rate) // station where grade = 0
	if high <= vc.VPC() || high >= vc.VPT() {
		t.Fatalf("high point %v outside curve [%v, %v]", high, vc.VPC(), vc.VPT())
	}
	for s := vc.VPC() + 10; s < vc.VPT(); s += 50 {
		tan1 := tElevVPI + tGrade1/100*(s-tStaVPI)
		if vc.Elev(s) > tan1+1e-9 {
			t.Errorf("Elev(%v) = %v above grade-1 tangent %v", s, vc.Elev(s), tan1)
		}
	}
}
