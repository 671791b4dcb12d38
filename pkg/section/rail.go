package section

import (
	"github.com/dlawry/bridgegeom/pkg/geom"
)

// RailShape is a typed barrier-rail shape code. Codes follow the state
// standard drawing names: leading digits are the overall height in
// inches, the suffix distinguishes open (O), closed (C), and median (M)
// variants.
type RailShape string

const (
	Rail39SSCR RailShape = "39_SSCR"
	Rail39OCR  RailShape = "39_OCR"
	Rail42NUO  RailShape = "42_NU_O"
	Rail42NUC  RailShape = "42_NU_C"
	Rail42NUM  RailShape = "42_NU_M"
	Rail34NUO  RailShape = "34_NU_O"
	Rail34NUC  RailShape = "34_NU_C"
	Rail29NEO  RailShape = "29_NE_O"
	Rail29NEC  RailShape = "29_NE_C"
	Rail42NJ   RailShape = "42_NJ"
	Rail32NJ   RailShape = "32_NJ"
)

// RailGeometry holds the resolved footprint of a rail shape code, in
// inches. BottomWidth is the rail seat width on the deck; EdgeDistance
// is the gap between the deck edge and the rail face. Both feed the
// deck-profile flat shelves under the rails.
type RailGeometry struct {
	Shape        RailShape
	Height       float64
	BottomWidth  float64
	EdgeDistance float64
}

// railTemplate builds a rail profile polyline for a given overall
// height. Templates use local inches with x = 0 at the roadway face and
// y = 0 at the deck surface.
type railTemplate func(ht float64) geom.Polyline

// chamfered corner drop used throughout the standard rail drawings.
const railChamfer = 0.75

func rail39SSCR(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 0, Y: 0},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 8 - railChamfer, Y: ht},
		{X: 8, Y: ht - railChamfer},
		{X: 10, Y: 0},
	}
}

func rail39OCR(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 0, Y: 0},
		{X: 0, Y: 12 - railChamfer},
		{X: railChamfer, Y: 12},
		{X: 0, Y: 12 + railChamfer},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 14 - railChamfer, Y: ht},
		{X: 14, Y: ht - railChamfer},
		{X: 14, Y: 12 + railChamfer},
		{X: 14 - railChamfer, Y: 12},
		{X: railChamfer, Y: 12},
		{X: 10, Y: 12},
		{X: 10, Y: 0},
	}
}

func rail42NUOpen(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 0, Y: 0},
		{X: 0, Y: 11 - railChamfer},
		{X: railChamfer, Y: 11},
		{X: 0, Y: 11 + railChamfer},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 8.5 - railChamfer, Y: ht},
		{X: 8.5, Y: ht - railChamfer},
		{X: 9.5, Y: ht - 8},
		{X: 14, Y: ht - 10},
		{X: 14, Y: 12},
		{X: 10.5, Y: 11},
		{X: railChamfer, Y: 11},
		{X: 10.5, Y: 11},
		{X: 10.5, Y: 0},
	}
}

func rail42NUClosed(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 0, Y: 0},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 8.5 - railChamfer, Y: ht},
		{X: 8.5, Y: ht - railChamfer},
		{X: 9.5, Y: ht - 8},
		{X: 14, Y: ht - 10},
		{X: 14, Y: 12},
		{X: 10.5, Y: 11},
		{X: 10.5, Y: 0},
	}
}

func rail42NUMedian(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 3.5, Y: 0},
		{X: 3.5, Y: 11},
		{X: 0, Y: 12},
		{X: 0, Y: ht - 10},
		{X: 4.5, Y: ht - 8},
		{X: 5.5, Y: ht - railChamfer},
		{X: 5.5 + railChamfer, Y: ht},
		{X: 18.5 - railChamfer, Y: ht},
		{X: 18.5, Y: ht - railChamfer},
		{X: 19.5, Y: ht - 8},
		{X: 24, Y: ht - 10},
		{X: 24, Y: 12},
		{X: 20.5, Y: 11},
		{X: 20.5, Y: 0},
	}
}

func rail34NUOpen(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 0, Y: 0},
		{X: 0, Y: 11 - railChamfer},
		{X: railChamfer, Y: 11},
		{X: 0, Y: 11 + railChamfer},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 14 - railChamfer, Y: ht},
		{X: 14, Y: ht - railChamfer},
		{X: 14, Y: 11 + railChamfer},
		{X: 14 - railChamfer, Y: 11},
		{X: railChamfer, Y: 11},
		{X: 10.5, Y: 11},
		{X: 10.5, Y: 0},
	}
}

func rail34NUClosed(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 0, Y: 0},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 14 - railChamfer, Y: ht},
		{X: 14, Y: ht - railChamfer},
		{X: 14, Y: 11 + railChamfer},
		{X: 14 - railChamfer, Y: 11},
		{X: 10.5, Y: 11},
		{X: 10.5, Y: 0},
	}
}

func rail29NEOpen(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 1, Y: 0},
		{X: 1, Y: 13},
		{X: railChamfer, Y: 13},
		{X: 0, Y: 13 + railChamfer},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 14 - railChamfer, Y: ht},
		{X: 14, Y: ht - railChamfer},
		{X: 14, Y: 13 + railChamfer},
		{X: 14 - railChamfer, Y: 13},
		{X: railChamfer, Y: 13},
		{X: 10.5, Y: 13},
		{X: 10.5, Y: 0},
	}
}

func rail29NEClosed(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 1, Y: 0},
		{X: 1, Y: 13},
		{X: railChamfer, Y: 13},
		{X: 0, Y: 13 + railChamfer},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 14 - railChamfer, Y: ht},
		{X: 14, Y: ht - railChamfer},
		{X: 14, Y: 13 + railChamfer},
		{X: 14 - railChamfer, Y: 13},
		{X: 10.5, Y: 13},
		{X: 10.5, Y: 0},
	}
}

func rail42NJ(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 0, Y: 0},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 7 - railChamfer, Y: ht},
		{X: 7, Y: ht - railChamfer},
		{X: 7, Y: ht - 10},
		{X: 9, Y: 13},
		{X: 16, Y: 3},
		{X: 16, Y: 0},
	}
}

func rail32NJ(ht float64) geom.Polyline {
	return geom.Polyline{
		{X: 0, Y: 0},
		{X: 0, Y: ht - railChamfer},
		{X: railChamfer, Y: ht},
		{X: 7 - railChamfer, Y: ht},
		{X: 7, Y: ht - railChamfer},
		{X: 9, Y: 13},
		{X: 16, Y: 3},
		{X: 16, Y: 0},
	}
}
