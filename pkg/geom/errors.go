package geom

import "fmt"

// ConfigurationError reports malformed scalar inputs or mismatched
// input arrays. It is fail-fast and non-recoverable at the call site;
// the report layer attaches span/girder context and surfaces it.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// Configf builds a ConfigurationError from a format string.
func Configf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedShapeError reports a girder or rail shape code with no
// registered profile generator.
type UnsupportedShapeError struct {
	Shape string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape code %q", e.Shape)
}

// DegenerateDomainError reports a zero-width mapping domain on one axis.
type DegenerateDomainError struct {
	Axis     string
	Min, Max float64
}

func (e *DegenerateDomainError) Error() string {
	return fmt.Sprintf("degenerate %s domain [%g, %g]", e.Axis, e.Min, e.Max)
}
