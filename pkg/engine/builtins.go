package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/dlawry/bridgegeom/pkg/alignment"
	"github.com/dlawry/bridgegeom/pkg/deck"
	"github.com/dlawry/bridgegeom/pkg/drawing"
	"github.com/dlawry/bridgegeom/pkg/geom"
	"github.com/dlawry/bridgegeom/pkg/haunch"
	"github.com/dlawry/bridgegeom/pkg/section"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: girder-profile -> girder_profile
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpCurve wraps a vertical curve so it can be passed between builtins.
type sexpCurve struct {
	vc *alignment.VerticalCurve
}

func (c *sexpCurve) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vertical-curve %g..%g)", c.vc.VPC(), c.vc.VPT())
}
func (c *sexpCurve) Type() *zygo.RegisteredType { return nil }

// sexpProfile wraps a 2D profile polyline.
type sexpProfile struct {
	name string
	pts  geom.Polyline
}

func (p *sexpProfile) SexpString(ps *zygo.PrintState) string {
	if p.name != "" {
		return fmt.Sprintf("(profile %q %d points)", p.name, len(p.pts))
	}
	return fmt.Sprintf("(profile %d points)", len(p.pts))
}
func (p *sexpProfile) Type() *zygo.RegisteredType { return nil }

// sexpMapper wraps a drawing coordinate mapper.
type sexpMapper struct {
	m *drawing.Mapper
}

func (m *sexpMapper) SexpString(ps *zygo.PrintState) string { return "(mapper)" }
func (m *sexpMapper) Type() *zygo.RegisteredType            { return nil }

// sexpFlangeLine wraps one haunch flange line sample series.
type sexpFlangeLine struct {
	line haunch.FlangeLine
}

func (l *sexpFlangeLine) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(flange-line %d samples)", len(l.line.Station))
}
func (l *sexpFlangeLine) Type() *zygo.RegisteredType { return nil }

// sexpGirder pairs two flange lines.
type sexpGirder struct {
	g haunch.Girder
}

func (g *sexpGirder) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(haunch-girder %d samples)", len(g.g.Left.Station))
}
func (g *sexpGirder) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_fill) and plain strings ("fill").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// toFloatSlice converts a Lisp list of numbers to a []float64.
func toFloatSlice(s zygo.Sexp) ([]float64, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, err := toFloat64(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// kwFloat reads an optional numeric keyword argument into dst.
func kwFloat(pa kwArgs, name, fn string, dst *float64) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	*dst = f
	return nil
}

// kwFloats reads an optional numeric-list keyword argument into dst.
func kwFloats(pa kwArgs, name, fn string, dst *[]float64) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	fs, err := toFloatSlice(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	*dst = fs
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the geometry builtins into a zygomys
// environment. The builtins populate the provided Session during
// evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable
// string literals.
func registerBuiltins(env *zygo.Zlisp, session *Session) {
	gen := section.NewGenerator()

	// -----------------------------------------------------------------------
	// (vertical-curve :sta-vpi 11510 :elev-vpi 2242.5
	//                 :grade-in 4.92 :grade-out -5.18 :length 845)
	// -----------------------------------------------------------------------
	env.AddFunction("vertical_curve", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var staVPI, elevVPI, gradeIn, gradeOut, length float64
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{"sta-vpi", &staVPI},
			{"elev-vpi", &elevVPI},
			{"grade-in", &gradeIn},
			{"grade-out", &gradeOut},
			{"length", &length},
		} {
			if err := kwFloat(pa, f.name, "vertical-curve", f.dst); err != nil {
				return zygo.SexpNull, err
			}
		}

		vc, err := alignment.NewVerticalCurve(staVPI, elevVPI, gradeIn, gradeOut, length)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vertical-curve: %w", err)
		}
		session.Curve = vc
		return &sexpCurve{vc: vc}, nil
	})

	// -----------------------------------------------------------------------
	// (elev 11500) or (elev curve 11500)
	// -----------------------------------------------------------------------
	env.AddFunction("elev", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		vc := session.Curve
		rest := args
		if len(args) > 0 {
			if c, ok := args[0].(*sexpCurve); ok {
				vc = c.vc
				rest = args[1:]
			}
		}
		if vc == nil {
			return zygo.SexpNull, fmt.Errorf("elev: no vertical curve defined")
		}
		if len(rest) != 1 {
			return zygo.SexpNull, fmt.Errorf("elev requires a station argument")
		}
		sta, err := toFloat64(rest[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("elev: station: %w", err)
		}
		return &zygo.SexpFloat{Val: vc.Elev(sta)}, nil
	})

	// -----------------------------------------------------------------------
	// (grade 11500) or (grade curve 11500)
	// -----------------------------------------------------------------------
	env.AddFunction("grade", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		vc := session.Curve
		rest := args
		if len(args) > 0 {
			if c, ok := args[0].(*sexpCurve); ok {
				vc = c.vc
				rest = args[1:]
			}
		}
		if vc == nil {
			return zygo.SexpNull, fmt.Errorf("grade: no vertical curve defined")
		}
		if len(rest) != 1 {
			return zygo.SexpNull, fmt.Errorf("grade requires a station argument")
		}
		sta, err := toFloat64(rest[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("grade: station: %w", err)
		}
		return &zygo.SexpFloat{Val: vc.Grade(sta)}, nil
	})

	// -----------------------------------------------------------------------
	// (girder-profile :shape "NU1100")
	// -----------------------------------------------------------------------
	env.AddFunction("girder_profile", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		v, ok := pa.kw["shape"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("girder-profile: :shape is required")
		}
		shape, err := toString(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("girder-profile: shape: %w", err)
		}
		p, err := gen.GirderProfile(section.GirderShape(shape))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("girder-profile: %w", err)
		}
		return &sexpProfile{pts: p}, nil
	})

	// -----------------------------------------------------------------------
	// (rail-profile :shape "42_NU_O" :height 42)
	// -----------------------------------------------------------------------
	env.AddFunction("rail_profile", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		v, ok := pa.kw["shape"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("rail-profile: :shape is required")
		}
		shape, err := toString(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rail-profile: shape: %w", err)
		}
		var height float64
		if err := kwFloat(pa, "height", "rail-profile", &height); err != nil {
			return zygo.SexpNull, err
		}
		p, err := gen.RailProfile(section.RailShape(shape), height)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rail-profile: %w", err)
		}
		return &sexpProfile{pts: p}, nil
	})

	// -----------------------------------------------------------------------
	// (deck-profile :width 44 :cantilever 3.5 :spacing 7.4 :beams 6
	//               :pgl 22 :slope 0.02 :flange 4.02
	//               :rail-width 10.5 :edge-distance 2 :thickness 8)
	// -----------------------------------------------------------------------
	env.AddFunction("deck_profile", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var p deck.Params
		var beams float64
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{"width", &p.DeckWidth},
			{"cantilever", &p.CantileverLength},
			{"spacing", &p.BeamSpacing},
			{"beams", &beams},
			{"pgl", &p.PGLOffset},
			{"slope", &p.RoadwaySlope},
			{"flange", &p.FlangeWidth},
			{"rail-width", &p.RailBottomWidth},
			{"edge-distance", &p.RailEdgeDistance},
			{"thickness", &p.DeckThickness},
			{"notch", &p.NotchDepth},
		} {
			if err := kwFloat(pa, f.name, "deck-profile", f.dst); err != nil {
				return zygo.SexpNull, err
			}
		}
		p.BeamCount = int(beams)

		outline, err := deck.Profile(p)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("deck-profile: %w", err)
		}
		return &sexpProfile{pts: outline}, nil
	})

	// -----------------------------------------------------------------------
	// (defprofile "girder" (girder-profile :shape "NU1100"))
	// -----------------------------------------------------------------------
	env.AddFunction("defprofile", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("defprofile requires a name and a profile expression")
		}
		profName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defprofile: name: %w", err)
		}
		prof, ok := args[1].(*sexpProfile)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("defprofile: expected profile expression, got %T", args[1])
		}
		session.Profiles[profName] = append(geom.Polyline(nil), prof.pts...)
		return &sexpProfile{name: profName, pts: prof.pts}, nil
	})

	// -----------------------------------------------------------------------
	// (profile "girder")
	// -----------------------------------------------------------------------
	env.AddFunction("profile", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("profile requires a name argument")
		}
		profName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("profile: name: %w", err)
		}
		p, ok := session.Profiles[profName]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("profile: no profile named %q", profName)
		}
		return &sexpProfile{name: profName, pts: p}, nil
	})

	// -----------------------------------------------------------------------
	// (mapper :domain-x (list 0 504) :domain-y (list 0 60)
	//         :page (list 41 41 522 150) :mode :uniform)
	// -----------------------------------------------------------------------
	env.AddFunction("mapper", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var dx, dy, page []float64
		if err := kwFloats(pa, "domain-x", "mapper", &dx); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloats(pa, "domain-y", "mapper", &dy); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloats(pa, "page", "mapper", &page); err != nil {
			return zygo.SexpNull, err
		}
		if len(dx) != 2 || len(dy) != 2 {
			return zygo.SexpNull, fmt.Errorf("mapper: :domain-x and :domain-y need (min max)")
		}
		if len(page) != 4 {
			return zygo.SexpNull, fmt.Errorf("mapper: :page needs (x y width height)")
		}

		mode := drawing.ModeFill
		if v, ok := pa.kw["mode"]; ok {
			s, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("mapper: mode: %w", err)
			}
			switch s {
			case "fill":
				mode = drawing.ModeFill
			case "uniform":
				mode = drawing.ModeUniform
			default:
				return zygo.SexpNull, fmt.Errorf("mapper: invalid mode %q, expected fill or uniform", s)
			}
		}

		m, err := drawing.NewMapper(drawing.Frame{
			DomainX: drawing.Axis{Min: dx[0], Max: dx[1]},
			DomainY: drawing.Axis{Min: dy[0], Max: dy[1]},
			Page:    drawing.Rect{X: page[0], Y: page[1], Width: page[2], Height: page[3]},
		}, mode)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mapper: %w", err)
		}
		return &sexpMapper{m: m}, nil
	})

	// -----------------------------------------------------------------------
	// (map-x m 252) / (map-y m 30)
	// -----------------------------------------------------------------------
	mapAxis := func(fn string, pick func(*drawing.Mapper) drawing.MapFunc) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires a mapper and a value", fn)
			}
			m, ok := args[0].(*sexpMapper)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("%s: expected mapper, got %T", fn, args[0])
			}
			v, err := toFloat64(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: value: %w", fn, err)
			}
			return &zygo.SexpFloat{Val: pick(m.m)(v)}, nil
		}
	}
	env.AddFunction("map_x", mapAxis("map-x", func(m *drawing.Mapper) drawing.MapFunc { return m.X }))
	env.AddFunction("map_y", mapAxis("map-y", func(m *drawing.Mapper) drawing.MapFunc { return m.Y }))

	// -----------------------------------------------------------------------
	// (flange-line :offset -2 :stations (list ...) :deck-bottom (list ...)
	//              :min-haunch (list ...) :bearing-seat (list ...)
	//              :top-of-girder (list ...))
	// -----------------------------------------------------------------------
	env.AddFunction("flange_line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var line haunch.FlangeLine
		for _, f := range []struct {
			name string
			dst  *[]float64
		}{
			{"stations", &line.Station},
			{"offsets", &line.Offset},
			{"deck-bottom", &line.DeckBottom},
			{"min-haunch", &line.MinHaunch},
			{"bearing-seat", &line.BearingSeat},
			{"top-of-girder", &line.TopOfGirder},
		} {
			if err := kwFloats(pa, f.name, "flange-line", f.dst); err != nil {
				return zygo.SexpNull, err
			}
		}
		// A scalar :offset broadcasts across all stations.
		if v, ok := pa.kw["offset"]; ok {
			off, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("flange-line: offset: %w", err)
			}
			line.Offset = make([]float64, len(line.Station))
			for i := range line.Offset {
				line.Offset[i] = off
			}
		}
		return &sexpFlangeLine{line: line}, nil
	})

	// -----------------------------------------------------------------------
	// (haunch-girder left right)
	// -----------------------------------------------------------------------
	env.AddFunction("haunch_girder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("haunch-girder requires left and right flange lines")
		}
		lt, ok := args[0].(*sexpFlangeLine)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("haunch-girder: left: expected flange line, got %T", args[0])
		}
		rt, ok := args[1].(*sexpFlangeLine)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("haunch-girder: right: expected flange line, got %T", args[1])
		}
		return &sexpGirder{g: haunch.Girder{Left: lt.line, Right: rt.line}}, nil
	})

	// -----------------------------------------------------------------------
	// (haunch-faces :deck-thickness 8 :girders (list g1 g2) :trim 1)
	// -----------------------------------------------------------------------
	env.AddFunction("haunch_faces", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if session.Curve == nil {
			return zygo.SexpNull, fmt.Errorf("haunch-faces: no vertical curve defined")
		}
		pa := parseArgs(args)
		var thickness float64
		if err := kwFloat(pa, "deck-thickness", "haunch-faces", &thickness); err != nil {
			return zygo.SexpNull, err
		}
		opts := []haunch.Option{}
		if v, ok := pa.kw["trim"]; ok {
			trim, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("haunch-faces: trim: %w", err)
			}
			opts = append(opts, haunch.WithBearingTrim(int(trim)))
		}

		v, ok := pa.kw["girders"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("haunch-faces: :girders is required")
		}
		items, err := sexpListToSlice(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("haunch-faces: girders: %w", err)
		}
		span := haunch.Span{}
		for i, item := range items {
			g, ok := item.(*sexpGirder)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("haunch-faces: girder %d: expected haunch-girder, got %T", i, item)
			}
			span.Girders = append(span.Girders, g.g)
		}

		b, err := haunch.NewBuilder(session.Curve, thickness, opts...)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("haunch-faces: %w", err)
		}
		faces, err := b.Faces(haunch.GirderSeries{Spans: []haunch.Span{span}})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("haunch-faces: %w", err)
		}
		session.Faces = append(session.Faces, faces...)
		return &zygo.SexpInt{Val: int64(len(faces))}, nil
	})
}
