package section

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/dlawry/bridgegeom/pkg/geom"
)

// GirderShape is a typed girder shape code.
type GirderShape string

// NU girder series. The code encodes the nominal depth in millimeters;
// resolved dimensions are in inches.
const (
	GirderNU900  GirderShape = "NU900"
	GirderNU1100 GirderShape = "NU1100"
	GirderNU1350 GirderShape = "NU1350"
	GirderNU1600 GirderShape = "NU1600"
	GirderNU1800 GirderShape = "NU1800"
	GirderNU2000 GirderShape = "NU2000"
)

// BeamGeometry holds the resolved dimensions for a girder shape code,
// in inches. It is derived once from fixed per-code constants and is
// read-only thereafter.
type BeamGeometry struct {
	Shape             GirderShape
	Height            float64
	TopFlangeWidth    float64
	BottomFlangeWidth float64
	WebThickness      float64
	FlangeFillet      float64 // radius at flange edge transitions
	WebFillet         float64 // radius at web/flange transitions
}

// NU family section constants, inches. Shared by every depth in the
// series; only the overall height varies per code.
const (
	nuTopFlangeWidth    = 48.25
	nuBottomFlangeWidth = 38.375
	nuWebThickness      = 5.0 + 15.0/16.0
	nuBottomEdgeDepth   = 5.0 + 5.0/16.0 // vertical bottom-flange edge above the chamfer
	nuBottomTaper       = 5.5            // bottom-flange taper rise to the web
	nuTopEdgeDepth      = 2.0 + 9.0/16.0 // vertical top-flange edge below the top
	nuTopTaper          = 1.75           // top-flange taper drop to the web
	nuFlangeFillet      = 2.0
	nuWebFillet         = 7.875
	nuChamfer           = 0.75
)

// nuHeights maps each NU code to its overall height in inches.
var nuHeights = map[GirderShape]float64{
	GirderNU900:  35.43,
	GirderNU1100: 43.31,
	GirderNU1350: 53.15,
	GirderNU1600: 62.99,
	GirderNU1800: 70.87,
	GirderNU2000: 78.74,
}

// nuGeometry resolves the BeamGeometry for an NU code.
func nuGeometry(shape GirderShape, height float64) BeamGeometry {
	return BeamGeometry{
		Shape:             shape,
		Height:            height,
		TopFlangeWidth:    nuTopFlangeWidth,
		BottomFlangeWidth: nuBottomFlangeWidth,
		WebThickness:      nuWebThickness,
		FlangeFillet:      nuFlangeFillet,
		WebFillet:         nuWebFillet,
	}
}

// nuProfile builds the closed NU girder cross-section polyline in local
// inches, x in [0, TopFlangeWidth], y in [0, Height]. The left half runs
// bottom to top through the four fillet regions (bottom-flange edge,
// bottom web transition, top web transition, top-flange edge); the right
// half is its exact mirror, so the profile is symmetric about
// x = TopFlangeWidth/2 by construction.
func nuProfile(bg BeamGeometry, samples int) geom.Polyline {
	tf := bg.TopFlangeWidth
	bf := bg.BottomFlangeWidth
	web := bg.WebThickness
	ht := bg.Height

	// Taper inclinations measured from horizontal.
	thetaBot := math.Atan(nuBottomTaper / (bf/2 - web/2))
	thetaTop := math.Atan(nuTopTaper / (tf/2 - web/2))

	dBotFlange := tangentOffset(bg.FlangeFillet, thetaBot)
	dTopFlange := tangentOffset(bg.FlangeFillet, thetaTop)
	dBotWeb := tangentOffset(bg.WebFillet, thetaBot)
	dTopWeb := tangentOffset(bg.WebFillet, thetaTop)

	edge := (tf - bf) / 2 // x of the bottom-flange left edge
	xWeb := tf/2 - web/2  // x of the web left face

	left := geom.Polyline{
		{X: edge + nuChamfer, Y: 0},
		{X: edge, Y: nuChamfer},
		{X: edge, Y: nuBottomEdgeDepth - dBotFlange},
	}

	// Bottom-flange edge fillet, curving into the bottom taper.
	left = appendArc(left, filletArc(
		edge+bg.FlangeFillet, nuBottomEdgeDepth-dBotFlange, bg.FlangeFillet,
		edge, edge+dBotFlange*math.Cos(thetaBot), samples, arcUpper))

	// Bottom web transition: taper meets the vertical web face.
	yBotWeb := nuBottomEdgeDepth + nuBottomTaper + dBotWeb
	left = appendArc(left, filletArc(
		xWeb-bg.WebFillet, yBotWeb, bg.WebFillet,
		xWeb-dBotWeb*math.Cos(thetaBot), xWeb, samples, arcLower))

	// Top web transition: vertical web face meets the top taper.
	yTopWeb := ht - nuTopEdgeDepth - nuTopTaper - dTopWeb
	left = appendArc(left, filletArc(
		xWeb-bg.WebFillet, yTopWeb, bg.WebFillet,
		xWeb, xWeb-dTopWeb*math.Cos(thetaTop), samples, arcUpper))

	// Top-flange edge fillet, curving into the vertical flange edge.
	yTopFlange := ht - nuTopEdgeDepth + dTopFlange
	left = appendArc(left, filletArc(
		bg.FlangeFillet, yTopFlange, bg.FlangeFillet,
		dTopFlange*math.Cos(thetaTop), 0, samples, arcLower))

	left = append(left, v2.Vec{X: 0, Y: ht})

	// Mirror the left half about the section centerline and close.
	out := make(geom.Polyline, 0, 2*len(left)+1)
	out = append(out, left...)
	for i := len(left) - 1; i >= 0; i-- {
		out = append(out, v2.Vec{X: tf - left[i].X, Y: left[i].Y})
	}
	out = append(out, left[0])
	return out
}
