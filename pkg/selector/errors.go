package selector

import "errors"

// The error messages below are part of the public contract: callers
// (and course test suites) match on the exact text, so they keep their
// original sentence form instead of Go's lowercase error convention.
var (
	// ErrDuplicateSlot is returned when a one-shot fragment kind
	// (element, id or pseudo-element) is appended a second time on the
	// same chain.
	ErrDuplicateSlot = errors.New("Element, id and pseudo-element should not occur more than one time inside the selector.")

	// ErrOrderViolation is returned when a fragment is appended after a
	// later-stage fragment was already appended. Repeating the current
	// kind (class, attribute, pseudo-class) is not a violation.
	ErrOrderViolation = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element.")
)
