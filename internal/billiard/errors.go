package billiard

import "fmt"

// Kind classifies the error kinds named in spec.md §7. The teacher has no
// typed errors of its own (NewHyperSphere/NewLight return plain
// fmt.Errorf/errors.New); this is the smallest extension of that style that
// lets callers distinguish the three named kinds without a third-party
// errors package.
type Kind int

const (
	// InvalidArgument: t <= 0 passed to evolve, a RaySplitter's oidx not a
	// subset of affect, two splitters sharing an obstacle, or an
	// out-of-range obstacle index.
	InvalidArgument Kind = iota
	// UnsupportedObstacle: a ray-splitter references an obstacle kind that
	// does not carry a pflag.
	UnsupportedObstacle
	// NumericWarning: non-fatal diagnostic (pinned particle, escape to
	// infinity). Never returned as an error from evolve; surfaced only
	// through the Warn callback when enabled.
	NumericWarning
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case UnsupportedObstacle:
		return "UnsupportedObstacle"
	case NumericWarning:
		return "NumericWarning"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with a message, so callers can switch on Kind via
// errors.As without string matching.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("billiard: %s: %s", e.Kind, e.Msg) }

func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
