package contacts

import (
	"errors"
	"fmt"

	"github.com/npillmayer/contacts/result"
)

// Reason classifies why a raw input was rejected by a validating factory.
// Reasons are stable identifiers, intended for machine dispatch; the
// human-readable part of a rejection is ValidationError.Error.
type Reason string

const (
	ReasonEmptyName      Reason = "empty-name"
	ReasonBadInitial     Reason = "middle-initial-not-a-single-character"
	ReasonMalformedEmail Reason = "malformed-email"
	ReasonMalformedZip   Reason = "malformed-zip"
	ReasonUnknownState   Reason = "unknown-state"
	ReasonMalformedPhone Reason = "malformed-phone"
)

// ValidationError is the single error kind of this package, produced only
// by the validating factory functions. It carries the offending input
// verbatim, so callers never lose the reason for a rejection.
type ValidationError struct {
	Reason Reason
	Input  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

// AsValidationError unwraps err to a ValidationError, if it carries one.
func AsValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return ValidationError{}, false
}

// invalid is the common rejection path of the factory functions.
func invalid[T any](reason Reason, input string) result.Result[T] {
	tracer().Debugf("rejecting %q: %s", input, reason)
	return result.Err[T](ValidationError{Reason: reason, Input: input})
}
