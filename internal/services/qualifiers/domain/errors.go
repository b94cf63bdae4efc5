package domain

import (
	"qualifiers/internal/core/qualifier"
	perr "qualifiers/internal/platform/errors"
)

// FromParseError lifts a decoder failure into a project error. Bad lines are
// validation errors carrying the column and line; read failures are unavailable.
// Anything that is not a ParseError is returned unchanged.
func FromParseError(err error) error {
	pe, ok := qualifier.AsParseError(err)
	if !ok {
		return err
	}
	code := perr.ErrorCodeValidation
	if pe.Kind == qualifier.KindIO {
		code = perr.ErrorCodeUnavailable
	}
	out := perr.Wrap(pe, code, pe.Kind.Message())
	if f := pe.Kind.Field(); f != "" {
		out = perr.WithField(out, f)
	}
	return perr.WithLine(out, pe.Line)
}

// Fatal reports whether a decoder failure ends the run whatever the policy.
// A read error or a saturated line counter leaves nothing sensible to continue with.
func Fatal(err error) bool {
	k, ok := qualifier.KindOf(err)
	return ok && (k == qualifier.KindIO || k == qualifier.KindTooBig)
}
