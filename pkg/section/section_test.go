package section

import (
	"errors"
	"math"
	"testing"

	"github.com/dlawry/bridgegeom/pkg/geom"
)

func TestFilletArcPointsOnCircle(t *testing.T) {
	cases := []struct {
		name      string
		cx, cy, r float64
		x0, x1    float64
		side      arcSide
	}{
		{"flange upper", 6.9375, 4.5, 2.0, 4.9375, 6.8, arcUpper},
		{"web lower", 13.28, 16.3, 7.875, 19.5, 21.15, arcLower},
		{"reversed span", 2.0, 40.0, 2.0, 1.6, 0, arcLower},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			arc := filletArc(tc.cx, tc.cy, tc.r, tc.x0, tc.x1, 50, tc.side)
			if len(arc) != 50 {
				t.Fatalf("sample count = %d, want 50", len(arc))
			}
			for i, p := range arc {
				d := math.Hypot(p.X-tc.cx, p.Y-tc.cy)
				if math.Abs(d-tc.r) > 1e-9 {
					t.Errorf("sample %d at (%v, %v): distance %v from center, want %v", i, p.X, p.Y, d, tc.r)
				}
			}
			// Endpoints land exactly on the requested x range.
			if arc[0].X != tc.x0 || arc[len(arc)-1].X != tc.x1 {
				t.Errorf("arc spans [%v, %v], want [%v, %v]", arc[0].X, arc[len(arc)-1].X, tc.x0, tc.x1)
			}
		})
	}
}

func TestTangentOffset(t *testing.T) {
	// theta = 0 degenerates to the square-corner offset d = R.
	if d := tangentOffset(2, 0); math.Abs(d-2) > 1e-12 {
		t.Errorf("tangentOffset(2, 0) = %v, want 2", d)
	}
	// Offsets shrink as the edges open up.
	if tangentOffset(2, 0.3) >= tangentOffset(2, 0.1) {
		t.Error("tangentOffset should decrease with increasing theta")
	}
}

func TestGirderProfileSymmetry(t *testing.T) {
	g := NewGenerator()
	for _, shape := range []GirderShape{GirderNU900, GirderNU1100, GirderNU1350, GirderNU1600, GirderNU1800, GirderNU2000} {
		p, err := g.GirderProfile(shape)
		if err != nil {
			t.Fatalf("GirderProfile(%s): %v", shape, err)
		}
		dims, err := g.BeamDims(shape)
		if err != nil {
			t.Fatalf("BeamDims(%s): %v", shape, err)
		}
		if !p.SymmetricAbout(dims.TopFlangeWidth/2, 1e-6) {
			t.Errorf("%s profile not symmetric about x = %v", shape, dims.TopFlangeWidth/2)
		}
		if !p.Closed(1e-12) {
			t.Errorf("%s profile not closed", shape)
		}
		min, max := p.Bounds()
		if min.Y != 0 || math.Abs(max.Y-dims.Height) > 1e-9 {
			t.Errorf("%s profile height [%v, %v], want [0, %v]", shape, min.Y, max.Y, dims.Height)
		}
		if min.X < -1e-9 || max.X > dims.TopFlangeWidth+1e-9 {
			t.Errorf("%s profile width [%v, %v] exceeds top flange %v", shape, min.X, max.X, dims.TopFlangeWidth)
		}
	}
}

func TestGirderProfileFilletRegions(t *testing.T) {
	// With n samples per arc, the NU profile carries 4 fillet regions per
	// side. The polyline must be substantially larger than the handful of
	// straight-segment vertices.
	g := NewGenerator(WithArcSamples(10))
	p, err := g.GirderProfile(GirderNU1100)
	if err != nil {
		t.Fatalf("GirderProfile: %v", err)
	}
	coarse := len(p)

	g50 := NewGenerator()
	p50, err := g50.GirderProfile(GirderNU1100)
	if err != nil {
		t.Fatalf("GirderProfile: %v", err)
	}
	if len(p50) <= coarse {
		t.Errorf("arc sample override had no effect: %d vs %d points", len(p50), coarse)
	}
	// 8 arcs at 50 samples dominate the point count.
	if len(p50) < 8*50 {
		t.Errorf("profile has %d points, want at least %d arc samples", len(p50), 8*50)
	}
}

func TestUnsupportedShapes(t *testing.T) {
	g := NewGenerator()

	_, err := g.GirderProfile(GirderShape("IT700"))
	var unsup *geom.UnsupportedShapeError
	if !errors.As(err, &unsup) {
		t.Fatalf("GirderProfile(IT700) error = %v, want UnsupportedShapeError", err)
	}
	if unsup.Shape != "IT700" {
		t.Errorf("error shape = %q, want IT700", unsup.Shape)
	}

	if _, err := g.RailProfile(RailShape("99_XX"), 0); !errors.As(err, &unsup) {
		t.Fatalf("RailProfile(99_XX) error = %v, want UnsupportedShapeError", err)
	}
	if _, err := g.BeamDims(GirderShape("BT72")); !errors.As(err, &unsup) {
		t.Fatalf("BeamDims(BT72) error = %v, want UnsupportedShapeError", err)
	}
}

func TestRailTable(t *testing.T) {
	g := NewGenerator()
	shapes := []RailShape{
		Rail39SSCR, Rail39OCR, Rail42NUO, Rail42NUC, Rail42NUM,
		Rail34NUO, Rail34NUC, Rail29NEO, Rail29NEC, Rail42NJ, Rail32NJ,
	}
	for _, shape := range shapes {
		dims, err := g.RailDims(shape)
		if err != nil {
			t.Fatalf("RailDims(%s): %v", shape, err)
		}
		p, err := g.RailProfile(shape, 0)
		if err != nil {
			t.Fatalf("RailProfile(%s): %v", shape, err)
		}
		if len(p) < 6 {
			t.Errorf("%s template has only %d points", shape, len(p))
		}
		min, max := p.Bounds()
		if math.Abs(max.Y-dims.Height) > 1e-9 {
			t.Errorf("%s template top %v, want height %v", shape, max.Y, dims.Height)
		}
		// The base span (points at y of the deck surface) matches the
		// registered bottom width.
		var baseMin, baseMax = math.Inf(1), math.Inf(-1)
		for _, pt := range p {
			if pt.Y == 0 {
				baseMin = math.Min(baseMin, pt.X)
				baseMax = math.Max(baseMax, pt.X)
			}
		}
		if got := baseMax - baseMin; math.Abs(got-dims.BottomWidth) > 1e-9 {
			t.Errorf("%s base width %v, want %v", shape, got, dims.BottomWidth)
		}
		_ = min
	}
}

func TestRailHeightParametrization(t *testing.T) {
	g := NewGenerator()
	p, err := g.RailProfile(Rail42NUC, 45)
	if err != nil {
		t.Fatalf("RailProfile: %v", err)
	}
	_, max := p.Bounds()
	if math.Abs(max.Y-45) > 1e-9 {
		t.Errorf("template top %v, want 45", max.Y)
	}
}
