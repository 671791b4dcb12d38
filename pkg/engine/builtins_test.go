package engine

import (
	"strings"
	"testing"
)

func TestPreprocessSource(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"keyword", `(foo :bar 1)`, `(foo "__kw_bar" 1)`},
		{"kebab keyword", `(foo :sta-vpi 1)`, `(foo "__kw_sta-vpi" 1)`},
		{"assignment preserved", `(x := 3)`, `(x := 3)`},
		{"kebab identifier", `(girder-profile)`, `(girder_profile)`},
		{"minus untouched", `(- 5 2)`, `(- 5 2)`},
		{"string untouched", `(foo "a-b :c")`, `(foo "a-b :c")`},
		{"semicolon comment", "(+ 1 2) ; note\n", "(+ 1 2) // note\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := preprocessSource(tc.in); got != tc.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func evalOK(t *testing.T, source string) *Session {
	t.Helper()
	eng := NewEngine()
	s, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if s == nil {
		t.Fatal("nil session")
	}
	return s
}

func evalFails(t *testing.T, source string) []EvalError {
	t.Helper()
	eng := NewEngine()
	s, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if s != nil {
		t.Fatal("expected nil session")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors")
	}
	return evalErrs
}

func TestVerticalCurveBuiltin(t *testing.T) {
	s := evalOK(t, `
(vertical-curve :sta-vpi 11510 :elev-vpi 2242.5 :grade-in 4.92 :grade-out -5.18 :length 845)
(elev 11500)
(grade 11000)
`)
	if s.Curve == nil {
		t.Fatal("session has no curve")
	}
	if got := s.Curve.VPC(); got != 11087.5 {
		t.Errorf("VPC = %v, want 11087.5", got)
	}
}

func TestElevWithoutCurve(t *testing.T) {
	errs := evalFails(t, `(elev 100)`)
	if !strings.Contains(errs[0].Message, "no vertical curve") {
		t.Errorf("error = %q, want mention of missing curve", errs[0].Message)
	}
}

func TestGirderProfileBuiltin(t *testing.T) {
	s := evalOK(t, `(defprofile "girder" (girder-profile :shape "NU1100"))`)
	p, ok := s.Profiles["girder"]
	if !ok {
		t.Fatal("profile not stored in session")
	}
	if len(p) < 100 {
		t.Errorf("girder profile has %d points, expected arc-sampled outline", len(p))
	}
	if !p.Closed(1e-12) {
		t.Error("girder profile not closed")
	}
}

func TestProfileLookup(t *testing.T) {
	s := evalOK(t, `
(defprofile "rail" (rail-profile :shape "42_NU_O" :height 0))
(profile "rail")
`)
	if _, ok := s.Profiles["rail"]; !ok {
		t.Fatal("profile not stored")
	}

	errs := evalFails(t, `(profile "missing")`)
	if !strings.Contains(errs[0].Message, "missing") {
		t.Errorf("error = %q", errs[0].Message)
	}
}

func TestUnsupportedShapeSurfacesAsEvalError(t *testing.T) {
	errs := evalFails(t, `(girder-profile :shape "IT700")`)
	if !strings.Contains(errs[0].Message, "IT700") {
		t.Errorf("error = %q, want the shape code named", errs[0].Message)
	}
}

func TestDeckProfileBuiltin(t *testing.T) {
	s := evalOK(t, `
(defprofile "deck"
  (deck-profile :width 44 :cantilever 3.5 :spacing 7.4 :beams 6
                :pgl 22 :slope 0.02 :flange 4.02
                :rail-width 10.5 :edge-distance 2 :thickness 8))
`)
	p, ok := s.Profiles["deck"]
	if !ok {
		t.Fatal("deck profile not stored")
	}
	if !p.Closed(1e-12) {
		t.Error("deck profile not closed")
	}
}

func TestMapperBuiltin(t *testing.T) {
	evalOK(t, `
(def m (mapper :domain-x (list 0 504) :domain-y (list 0 60)
               :page (list 41 41 522 150) :mode :uniform))
(map-x m 252)
(map-y m 30)
`)

	errs := evalFails(t, `(mapper :domain-x (list 5 5) :domain-y (list 0 1) :page (list 0 0 10 10))`)
	if !strings.Contains(errs[0].Message, "degenerate") {
		t.Errorf("error = %q, want degenerate domain", errs[0].Message)
	}
}

func TestHaunchFacesBuiltin(t *testing.T) {
	s := evalOK(t, `
(vertical-curve :sta-vpi 100 :elev-vpi 100 :grade-in 2 :grade-out -2 :length 100)
(def lt (flange-line :offset -2
                     :stations (list 60 70 80 90 100 110)
                     :deck-bottom (list 99 99 99 99 99 99)
                     :min-haunch (list 98 98 98 98 98 98)
                     :bearing-seat (list 98.5 98.5 98.5 98.5 98.5 98.5)
                     :top-of-girder (list 95 95 95 95 95 95)))
(def rt (flange-line :offset 2
                     :stations (list 60 70 80 90 100 110)
                     :deck-bottom (list 99 99 99 99 99 99)
                     :min-haunch (list 98 98 98 98 98 98)
                     :bearing-seat (list 98.5 98.5 98.5 98.5 98.5 98.5)
                     :top-of-girder (list 95 95 95 95 95 95)))
(haunch-faces :deck-thickness 8 :girders (list (haunch-girder lt rt)))
`)
	// 6 samples trim to 3 intervals. The minimum band contributes 14
	// faces; the flange lines straddle the centerline, so the variable
	// band's 3 top faces split into 6 for a band total of 17.
	if len(s.Faces) != 31 {
		t.Errorf("session has %d faces, want 31", len(s.Faces))
	}
}

func TestHaunchFacesRequiresCurve(t *testing.T) {
	errs := evalFails(t, `(haunch-faces :deck-thickness 8 :girders (list))`)
	if !strings.Contains(errs[0].Message, "no vertical curve") {
		t.Errorf("error = %q", errs[0].Message)
	}
}
