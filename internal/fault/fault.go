// Package fault defines the two fatal failure kinds of the description pipeline.
//
// A grammar fault means the shorthand description is malformed. An integrity
// fault means the generator found a class model that violates an invariant the
// parser guarantees, which points at a defect rather than at bad input. Neither
// is recovered locally; callers test for them with errors.Is.
package fault

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrGrammar marks errors caused by input that does not match the shorthand grammar.
	ErrGrammar = errors.New("grammar fault")

	// ErrIntegrity marks invariant violations detected while generating code.
	ErrIntegrity = errors.New("integrity fault")
)

const grammarHint = "descriptions look like Name[<Spec>][+Parent|=?Parent|-Parent...][:[g|s|gs]<count><type>...]"

// Grammarf creates a grammar fault with a formatted message and a usage hint.
func Grammarf(format string, args ...any) error {
	err := errors.Newf(format, args...)
	err = errors.WithHint(err, grammarHint)
	return errors.Mark(err, ErrGrammar)
}

// Integrityf creates an integrity fault wrapping an assertion failure. The
// mark is the outermost layer, so test for the assertion with
// errors.HasAssertionFailure rather than errors.IsAssertionFailure.
func Integrityf(format string, args ...any) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrIntegrity)
}

// IsGrammar reports whether err is or wraps a grammar fault.
func IsGrammar(err error) bool {
	return err != nil && errors.Is(err, ErrGrammar)
}

// IsIntegrity reports whether err is or wraps an integrity fault.
func IsIntegrity(err error) bool {
	return err != nil && errors.Is(err, ErrIntegrity)
}
