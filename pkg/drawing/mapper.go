// Package drawing maps model-space coordinates onto fixed-size drawing
// sheets. A Frame pairs two independent domain ranges (station/offset,
// offset/elevation) with a destination rectangle; NewMapper turns it
// into a pair of per-axis affine functions for the renderer. The mapper
// is a pure value and keeps page state out of the geometry core.
package drawing

import (
	"math"

	"github.com/dlawry/bridgegeom/pkg/geom"
)

// Axis is one domain range of a mapping frame.
type Axis struct {
	Min, Max float64
}

// Width returns the signed extent of the axis.
func (a Axis) Width() float64 { return a.Max - a.Min }

// Rect is the destination rectangle on the drawing sheet, in page units.
type Rect struct {
	X, Y          float64 // origin (lower-left)
	Width, Height float64
}

// Frame defines one affine mapping instance: a domain rectangle given as
// two independent axis ranges and a destination rectangle.
type Frame struct {
	DomainX Axis
	DomainY Axis
	Page    Rect
}

// Mode selects how the two axis scales are chosen.
type Mode int

const (
	// ModeFill scales each axis independently so the domain fills the
	// destination rectangle exactly.
	ModeFill Mode = iota
	// ModeUniform applies the smaller of the two per-axis scales to both
	// axes and centers the slack axis within its available span, so the
	// drawing keeps its aspect ratio.
	ModeUniform
)

// MapFunc maps one domain coordinate to one page coordinate.
type MapFunc func(float64) float64

// Mapper holds the forward and inverse affine functions for a frame.
type Mapper struct {
	X, Y       MapFunc
	InvX, InvY MapFunc
}

// NewMapper derives the per-axis affine functions for a frame. Either
// domain axis having zero width is a DegenerateDomainError.
func NewMapper(f Frame, mode Mode) (*Mapper, error) {
	if f.DomainX.Width() == 0 {
		return nil, &geom.DegenerateDomainError{Axis: "x", Min: f.DomainX.Min, Max: f.DomainX.Max}
	}
	if f.DomainY.Width() == 0 {
		return nil, &geom.DegenerateDomainError{Axis: "y", Min: f.DomainY.Min, Max: f.DomainY.Max}
	}

	sx := f.Page.Width / f.DomainX.Width()
	sy := f.Page.Height / f.DomainY.Width()
	ox := f.Page.X
	oy := f.Page.Y

	if mode == ModeUniform {
		s := math.Min(math.Abs(sx), math.Abs(sy))
		// Center the slack axis within its available span.
		if math.Abs(sx) > s {
			ox += (f.Page.Width - s*math.Abs(f.DomainX.Width())) / 2
		} else if math.Abs(sy) > s {
			oy += (f.Page.Height - s*math.Abs(f.DomainY.Width())) / 2
		}
		sx = math.Copysign(s, sx)
		sy = math.Copysign(s, sy)
	}

	return &Mapper{
		X:    affine(f.DomainX.Min, sx, ox),
		Y:    affine(f.DomainY.Min, sy, oy),
		InvX: inverse(f.DomainX.Min, sx, ox),
		InvY: inverse(f.DomainY.Min, sy, oy),
	}, nil
}

func affine(min, scale, origin float64) MapFunc {
	return func(v float64) float64 { return origin + (v-min)*scale }
}

func inverse(min, scale, origin float64) MapFunc {
	return func(p float64) float64 { return min + (p-origin)/scale }
}
