package drawing

import (
	"errors"
	"math"
	"testing"

	"github.com/dlawry/bridgegeom/pkg/geom"
)

func TestFillModeRoundTrip(t *testing.T) {
	f := Frame{
		DomainX: Axis{Min: 11376, Max: 11624}, // stations
		DomainY: Axis{Min: -24, Max: 24},      // offsets
		Page:    Rect{X: 54, Y: 36, Width: 504, Height: 180},
	}
	m, err := NewMapper(f, ModeFill)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}

	// Corners land on the page rectangle.
	if got := m.X(11376); math.Abs(got-54) > 1e-9 {
		t.Errorf("X(min) = %v, want 54", got)
	}
	if got := m.X(11624); math.Abs(got-558) > 1e-9 {
		t.Errorf("X(max) = %v, want 558", got)
	}
	if got := m.Y(24); math.Abs(got-216) > 1e-9 {
		t.Errorf("Y(max) = %v, want 216", got)
	}

	// Forward then inverse recovers the original.
	for _, s := range []float64{11376, 11413.73, 11500, 11619.001, 11624} {
		if got := m.InvX(m.X(s)); math.Abs(got-s) > 1e-9 {
			t.Errorf("InvX(X(%v)) = %v", s, got)
		}
	}
	for _, o := range []float64{-24, -3.25, 0, 17.6, 24} {
		if got := m.InvY(m.Y(o)); math.Abs(got-o) > 1e-9 {
			t.Errorf("InvY(Y(%v)) = %v", o, got)
		}
	}
}

func TestUniformModePicksSmallerScale(t *testing.T) {
	// A wide domain on a squarish page: x is the limiting axis, y has
	// slack and must be centered.
	f := Frame{
		DomainX: Axis{Min: 0, Max: 504}, // deck width in inches
		DomainY: Axis{Min: 0, Max: 60},
		Page:    Rect{X: 41, Y: 41, Width: 522, Height: 150},
	}
	m, err := NewMapper(f, ModeUniform)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}

	scale := (m.X(1) - m.X(0))
	wantScale := 522.0 / 504.0
	if math.Abs(scale-wantScale) > 1e-9 {
		t.Errorf("uniform scale = %v, want %v", scale, wantScale)
	}
	if sy := m.Y(1) - m.Y(0); math.Abs(sy-scale) > 1e-9 {
		t.Errorf("y scale %v differs from x scale %v", sy, scale)
	}

	// Slack axis centered: domain midpoint maps to the page midpoint.
	midPage := 41 + 150.0/2
	if got := m.Y(30); math.Abs(got-midPage) > 1e-9 {
		t.Errorf("Y(mid) = %v, want centered at %v", got, midPage)
	}
	// The limiting axis still fills its span.
	if got := m.X(504); math.Abs(got-(41+522)) > 1e-9 {
		t.Errorf("X(max) = %v, want %v", got, 41+522.0)
	}
}

func TestUniformModeCentersX(t *testing.T) {
	// Tall domain: y limits, x has slack.
	f := Frame{
		DomainX: Axis{Min: -10, Max: 10},
		DomainY: Axis{Min: 2200, Max: 2300},
		Page:    Rect{X: 0, Y: 0, Width: 400, Height: 100},
	}
	m, err := NewMapper(f, ModeUniform)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if got := m.X(0); math.Abs(got-200) > 1e-9 {
		t.Errorf("X(mid) = %v, want 200", got)
	}
	if got := m.Y(2200); math.Abs(got-0) > 1e-9 {
		t.Errorf("Y(min) = %v, want 0", got)
	}
	if got := m.Y(2300); math.Abs(got-100) > 1e-9 {
		t.Errorf("Y(max) = %v, want 100", got)
	}
}

func TestDegenerateDomain(t *testing.T) {
	page := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	cases := []struct {
		name string
		f    Frame
		axis string
	}{
		{"zero x", Frame{DomainX: Axis{Min: 5, Max: 5}, DomainY: Axis{Min: 0, Max: 1}, Page: page}, "x"},
		{"zero y", Frame{DomainX: Axis{Min: 0, Max: 1}, DomainY: Axis{Min: -2, Max: -2}, Page: page}, "y"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMapper(tc.f, ModeFill)
			var deg *geom.DegenerateDomainError
			if !errors.As(err, &deg) {
				t.Fatalf("error = %v, want DegenerateDomainError", err)
			}
			if deg.Axis != tc.axis {
				t.Errorf("axis = %q, want %q", deg.Axis, tc.axis)
			}
		})
	}
}

func TestDescendingDomain(t *testing.T) {
	// Inverted domains are legal and produce negative scales.
	f := Frame{
		DomainX: Axis{Min: 100, Max: 0},
		DomainY: Axis{Min: 0, Max: 10},
		Page:    Rect{X: 0, Y: 0, Width: 50, Height: 10},
	}
	m, err := NewMapper(f, ModeFill)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if got := m.X(100); math.Abs(got) > 1e-9 {
		t.Errorf("X(100) = %v, want 0", got)
	}
	if got := m.X(0); math.Abs(got-50) > 1e-9 {
		t.Errorf("X(0) = %v, want 50", got)
	}
	if got := m.InvX(m.X(37.5)); math.Abs(got-37.5) > 1e-9 {
		t.Errorf("round trip = %v, want 37.5", got)
	}
}
