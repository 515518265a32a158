package selector

// stage records the highest-priority ordering-relevant fragment kind
// appended so far. Each successful append reassigns the stage to its
// own ordinal rather than raising a ceiling, which is what keeps
// same-kind repetition (".a.b.c") legal: the ordering check is
// "current stage must not exceed the new kind's ordinal".
type stage int

const (
	stageNone stage = iota // nothing ordering-relevant appended yet
	stageID
	stageClass
	stageAttr
	stagePseudoClass
	stagePseudoElement
)

// Selector is an immutable compound-selector value under construction.
// Every method returns a new Selector and never mutates its receiver,
// so chains can branch from any intermediate value without the
// continuations affecting each other.
//
// The zero value is an empty selector ready for use; the package-level
// constructors ([Element], [ID], [Class], [Attr], [PseudoClass],
// [PseudoElement], [Combine]) are equivalent shorthands for starting
// a chain.
//
// Validation failures are sticky: once a chain hits [ErrDuplicateSlot]
// or [ErrOrderViolation], every later append returns the failed value
// unchanged and [Selector.Stringify] reports the first error.
type Selector struct {
	text             string
	hasElement       bool
	hasID            bool
	hasPseudoElement bool
	stage            stage
	err              error
}

// Element starts a new chain with an element fragment.
func Element(value string) Selector { return Selector{}.Element(value) }

// ID starts a new chain with an id fragment.
func ID(value string) Selector { return Selector{}.ID(value) }

// Class starts a new chain with a class fragment.
func Class(value string) Selector { return Selector{}.Class(value) }

// Attr starts a new chain with an attribute fragment.
func Attr(value string) Selector { return Selector{}.Attr(value) }

// PseudoClass starts a new chain with a pseudo-class fragment.
func PseudoClass(value string) Selector { return Selector{}.PseudoClass(value) }

// PseudoElement starts a new chain with a pseudo-element fragment.
func PseudoElement(value string) Selector { return Selector{}.PseudoElement(value) }

// Element appends an element fragment verbatim.
// Allowed at most once per selector, and only as the first fragment.
// Returns a failed Selector carrying ErrDuplicateSlot or
// ErrOrderViolation when either rule is violated.
func (s Selector) Element(value string) Selector {
	if s.err != nil {
		return s
	}
	if s.hasElement {
		return s.fail(ErrDuplicateSlot)
	}
	if s.stage > stageNone {
		return s.fail(ErrOrderViolation)
	}
	s.text += value
	s.hasElement = true
	return s
}

// ID appends an id fragment as "#value".
// Allowed at most once per selector, and only before any class,
// attribute, pseudo-class or pseudo-element fragment.
func (s Selector) ID(value string) Selector {
	if s.err != nil {
		return s
	}
	if s.hasID {
		return s.fail(ErrDuplicateSlot)
	}
	if s.stage > stageID {
		return s.fail(ErrOrderViolation)
	}
	s.text += "#" + value
	s.stage = stageID
	return s
}

// Class appends a class fragment as ".value". Unlimited repetition.
func (s Selector) Class(value string) Selector {
	if s.err != nil {
		return s
	}
	if s.stage > stageClass {
		return s.fail(ErrOrderViolation)
	}
	s.text += "." + value
	s.stage = stageClass
	return s
}

// Attr appends an attribute fragment as "[value]". The value is not
// parsed or validated, so operators and quotes pass through untouched.
// Unlimited repetition.
func (s Selector) Attr(value string) Selector {
	if s.err != nil {
		return s
	}
	if s.stage > stageAttr {
		return s.fail(ErrOrderViolation)
	}
	s.text += "[" + value + "]"
	s.stage = stageAttr
	return s
}

// PseudoClass appends a pseudo-class fragment as ":value".
// Unlimited repetition.
func (s Selector) PseudoClass(value string) Selector {
	if s.err != nil {
		return s
	}
	if s.stage > stagePseudoClass {
		return s.fail(ErrOrderViolation)
	}
	s.text += ":" + value
	s.stage = stagePseudoClass
	return s
}

// PseudoElement appends a pseudo-element fragment as "::value".
// Allowed at most once per selector; as the last stage it has no
// ordering ceiling beyond its own uniqueness.
func (s Selector) PseudoElement(value string) Selector {
	if s.err != nil {
		return s
	}
	if s.hasPseudoElement {
		return s.fail(ErrDuplicateSlot)
	}
	s.text += "::" + value
	s.hasPseudoElement = true
	s.stage = stagePseudoElement
	return s
}

// Stringify returns the accumulated selector text, or the first
// validation error recorded on the chain. Calling it again before
// further appends returns the same text.
func (s Selector) Stringify() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

// String implements fmt.Stringer. It renders the text accumulated by
// the valid prefix of the chain and ignores any recorded error; use
// Stringify or Err when the error matters.
func (s Selector) String() string { return s.text }

// Err returns the first validation error recorded on the chain, if any.
func (s Selector) Err() error { return s.err }

// fail marks the selector with the first validation error. Later
// appends see err != nil and return the value unchanged.
func (s Selector) fail(err error) Selector {
	s.err = err
	return s
}
