package haunch

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/dlawry/bridgegeom/pkg/alignment"
	"github.com/dlawry/bridgegeom/pkg/geom"
)

// BandSeparation is the vertical gap in feet left between the two bands
// so their shared boundary never produces coincident faces.
const BandSeparation = 0.0005

// DefaultBearingTrim is the number of samples dropped at each span end.
// The end samples sit at the bearing centerlines and duplicate the cap
// geometry.
const DefaultBearingTrim = 1

// Builder turns a GirderSeries into haunch band faces.
type Builder struct {
	vc            *alignment.VerticalCurve
	deckThickness float64 // in
	trim          int
}

// Option configures a Builder.
type Option func(*Builder)

// WithBearingTrim overrides how many samples are dropped at each span
// end before meshing. Zero keeps the bearing samples.
func WithBearingTrim(n int) Option {
	return func(b *Builder) {
		if n >= 0 {
			b.trim = n
		}
	}
}

// NewBuilder constructs a haunch face builder. The vertical curve
// supplies centerline elevations for the crown ridge; deckThickness is
// the structural deck thickness in inches.
func NewBuilder(vc *alignment.VerticalCurve, deckThickness float64, opts ...Option) (*Builder, error) {
	if vc == nil {
		return nil, geom.Configf("vertical curve is required")
	}
	if deckThickness < 0 {
		return nil, geom.Configf("deck thickness %g must not be negative", deckThickness)
	}
	b := &Builder{vc: vc, deckThickness: deckThickness, trim: DefaultBearingTrim}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// band carries one flange line's sample columns for a single band.
type band struct {
	sta, off, top, bot []float64
}

func (l FlangeLine) slice(b geom.Band, lo, hi int) band {
	out := band{sta: l.Station[lo:hi], off: l.Offset[lo:hi]}
	switch b {
	case geom.BandMinimumHaunch:
		out.top = l.BearingSeat[lo:hi]
		out.bot = make([]float64, hi-lo)
		for i, z := range l.MinHaunch[lo:hi] {
			out.bot[i] = z + BandSeparation
		}
	case geom.BandVariableHaunch:
		out.bot = l.TopOfGirder[lo:hi]
		out.top = make([]float64, hi-lo)
		for i, z := range l.MinHaunch[lo:hi] {
			out.top[i] = z - BandSeparation
		}
	}
	return out
}

// Faces builds the quad faces for both haunch bands of every girder in
// every span. Per retained sample interval each band contributes a
// bottom, top, left and right face, plus one cap face at each retained
// span end. Variable-haunch top faces whose flange offsets straddle the
// centerline are split along the crown ridge.
func (b *Builder) Faces(series GirderSeries) ([]geom.Face, error) {
	if err := series.validate(); err != nil {
		return nil, err
	}

	var faces []geom.Face
	for si, span := range series.Spans {
		n := len(span.Girders[0].Left.Station)
		lo, hi := b.trim, n-b.trim
		if hi-lo < 2 {
			return nil, geom.Configf("span %d: %d samples leave fewer than 2 after trimming %d per end",
				si, n, b.trim)
		}
		for _, g := range span.Girders {
			for _, bd := range []geom.Band{geom.BandMinimumHaunch, geom.BandVariableHaunch} {
				lt := g.Left.slice(bd, lo, hi)
				rt := g.Right.slice(bd, lo, hi)
				faces = b.girderBand(faces, bd, lt, rt)
			}
		}
	}
	return faces, nil
}

func (b *Builder) girderBand(faces []geom.Face, bd geom.Band, lt, rt band) []geom.Face {
	n := len(lt.sta)
	for i := 0; i < n-1; i++ {
		faces = append(faces, geom.Face{
			Band: bd,
			Kind: geom.FaceBottom,
			V: [4]v3.Vec{
				{X: lt.sta[i], Y: lt.off[i], Z: lt.bot[i]},
				{X: rt.sta[i], Y: rt.off[i], Z: rt.bot[i]},
				{X: rt.sta[i+1], Y: rt.off[i+1], Z: rt.bot[i+1]},
				{X: lt.sta[i+1], Y: lt.off[i+1], Z: lt.bot[i+1]},
			},
		})

		top := geom.Face{
			Band: bd,
			Kind: geom.FaceTop,
			V: [4]v3.Vec{
				{X: lt.sta[i], Y: lt.off[i], Z: lt.top[i]},
				{X: rt.sta[i], Y: rt.off[i], Z: rt.top[i]},
				{X: rt.sta[i+1], Y: rt.off[i+1], Z: rt.top[i+1]},
				{X: lt.sta[i+1], Y: lt.off[i+1], Z: lt.top[i+1]},
			},
		}
		if bd == geom.BandVariableHaunch && geom.StraddlesCenterline(lt.off[i], rt.off[i]) {
			left, right := geom.SplitQuadAtCenterline(top, b.ridge(lt.sta[i], rt.sta[i]), b.ridge(lt.sta[i+1], rt.sta[i+1]))
			faces = append(faces, left, right)
		} else {
			faces = append(faces, top)
		}

		faces = append(faces,
			geom.Face{
				Band: bd,
				Kind: geom.FaceLeft,
				V: [4]v3.Vec{
					{X: lt.sta[i], Y: lt.off[i], Z: lt.bot[i]},
					{X: lt.sta[i], Y: lt.off[i], Z: lt.top[i]},
					{X: lt.sta[i+1], Y: lt.off[i+1], Z: lt.top[i+1]},
					{X: lt.sta[i+1], Y: lt.off[i+1], Z: lt.bot[i+1]},
				},
			},
			geom.Face{
				Band: bd,
				Kind: geom.FaceRight,
				V: [4]v3.Vec{
					{X: rt.sta[i], Y: rt.off[i], Z: rt.bot[i]},
					{X: rt.sta[i], Y: rt.off[i], Z: rt.top[i]},
					{X: rt.sta[i+1], Y: rt.off[i+1], Z: rt.top[i+1]},
					{X: rt.sta[i+1], Y: rt.off[i+1], Z: rt.bot[i+1]},
				},
			},
		)
	}

	for _, i := range []int{0, n - 1} {
		faces = append(faces, geom.Face{
			Band: bd,
			Kind: geom.FaceCap,
			V: [4]v3.Vec{
				{X: lt.sta[i], Y: lt.off[i], Z: lt.bot[i]},
				{X: lt.sta[i], Y: lt.off[i], Z: lt.top[i]},
				{X: rt.sta[i], Y: rt.off[i], Z: rt.top[i]},
				{X: rt.sta[i], Y: rt.off[i], Z: rt.bot[i]},
			},
		})
	}
	return faces
}

// ridge returns the crown vertex at a sample station: on the alignment
// centerline, a deck thickness below the profile grade elevation. The
// two flange stations differ under skew, so the ridge sits at their
// midpoint.
func (b *Builder) ridge(ltSta, rtSta float64) v3.Vec {
	sta := (ltSta + rtSta) / 2
	return v3.Vec{X: sta, Y: 0, Z: b.vc.Elev(sta) - b.deckThickness/12}
}
