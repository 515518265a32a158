package selector

// Combine joins two built selectors with a combinator token, producing
// "<left> <combinator> <right>" with single spaces around the token.
// The combinator passes through verbatim; it is not checked against the
// four CSS combinators. Combined selectors nest: either operand may
// itself be the result of a previous Combine, and the spacing rule
// applies recursively.
//
// Combine has no ordering or cardinality rules of its own, but it
// propagates a validation error recorded on either operand (left
// first), so a failed chain stays failed through combination.
func Combine(left Selector, combinator string, right Selector) Selector {
	if left.err != nil {
		return Selector{err: left.err}
	}
	if right.err != nil {
		return Selector{err: right.err}
	}
	return Selector{text: left.text + " " + combinator + " " + right.text}
}
