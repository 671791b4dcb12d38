// Command bridgegeom evaluates a geometry script and reports what it
// built. Scripts use the Lisp dialect from pkg/engine; the resulting
// haunch faces can be exported to STL.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dlawry/bridgegeom/pkg/engine"
	"github.com/dlawry/bridgegeom/pkg/haunch"
)

func main() {
	stlPath := flag.String("stl", "", "write haunch faces to this STL file")
	flag.Parse()

	source, err := readSource(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	eng := engine.NewEngine()
	session, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		log.Fatal(err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}

	if session.Curve != nil {
		fmt.Printf("vertical curve: VPC %0.2f, VPT %0.2f\n", session.Curve.VPC(), session.Curve.VPT())
	}
	for name, p := range session.Profiles {
		fmt.Printf("profile %q: %d points\n", name, len(p))
	}
	fmt.Printf("haunch faces: %d\n", len(session.Faces))

	if *stlPath != "" {
		if len(session.Faces) == 0 {
			log.Fatal("no haunch faces to export")
		}
		if err := haunch.SaveSTL(*stlPath, session.Faces); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *stlPath)
	}
}

// readSource loads the script from a file argument, or stdin when no
// argument is given.
func readSource(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(b), nil
}
