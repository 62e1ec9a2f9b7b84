// Package diagcode is a small, closed registry of verifier diagnostic
// codes: one per error kind in spec.md §7 except a disproven goal (a result,
// not an error), plus one for an unavailable SMT backend. It gives the host compiler's
// diagnostic layer something to switch on besides free-text messages,
// without pulling in a logging framework — the verifier core does no I/O
// (spec.md §5) and never logs anything itself.
//
// Modeled on the teacher pack's internal/errors code registry (phase +
// category + description per code, looked up by a constant string), scaled
// down to this verifier's narrower error taxonomy.
package diagcode

// Code is one of the fixed verifier diagnostic codes.
type Code string

const (
	// UnsupportedConstruct covers float literals, f32/f64 parameters,
	// user function calls, nested arrays, unsupported string ops, and
	// declared types outside the primitive set.
	UnsupportedConstruct Code = "VER001"

	// TypeMismatch covers operator/operand kind mismatches (e.g. bool +
	// int).
	TypeMismatch Code = "VER002"

	// UnknownVariable covers references to undeclared identifiers.
	UnknownVariable Code = "VER003"

	// SolverTimeout covers a solver Check() that returned UNKNOWN because
	// the configured timeout elapsed.
	SolverTimeout Code = "VER004"

	// SolverInternal covers any exception/panic recovered from the SMT
	// backend.
	SolverInternal Code = "VER005"

	// SolverUnavailable covers the SMT Context Factory's is_available
	// probe returning false.
	SolverUnavailable Code = "VER006"
)

// Info describes one diagnostic code.
type Info struct {
	Code        Code
	Category    string
	Description string
}

// Registry maps each code to its descriptive metadata.
var Registry = map[Code]Info{
	UnsupportedConstruct: {UnsupportedConstruct, "translation", "Unsupported construct"},
	TypeMismatch:         {TypeMismatch, "translation", "Type mismatch in contract expression"},
	UnknownVariable:      {UnknownVariable, "translation", "Unknown variable"},
	SolverTimeout:        {SolverTimeout, "solver", "Solver timeout"},
	SolverInternal:       {SolverInternal, "solver", "Solver backend exception"},
	SolverUnavailable:    {SolverUnavailable, "solver", "SMT backend unavailable"},
}

// Lookup returns the metadata for a code.
func Lookup(c Code) (Info, bool) {
	info, ok := Registry[c]
	return info, ok
}
