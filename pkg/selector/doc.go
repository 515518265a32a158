// Package selector builds CSS selector strings from typed fragments.
//
// # Overview
//
// A [Selector] accumulates fragments (element, id, class, attribute,
// pseudo-class, pseudo-element) through a fluent chain and renders the
// final string with [Selector.Stringify]. The package enforces the two
// structural rules of a compound selector:
//
//  1. Ordering: fragments must be appended in the fixed order
//     element, id, class, attribute, pseudo-class, pseudo-element.
//     Repeating the current kind is allowed (".a.b.c"), moving back
//     is not (".a" followed by "#main" is rejected).
//  2. Cardinality: element, id and pseudo-element may each appear at
//     most once per selector; the other kinds are unlimited.
//
// Fragment values are passed through verbatim. The package does not
// parse CSS, does not match selectors against documents, and does not
// validate identifier or attribute syntax.
//
// # Basic Usage
//
// Start a chain with any of the package-level constructors and append
// further fragments with the value methods:
//
//	s := selector.Element("a").ID("main").Class("btn").PseudoClass("hover")
//	text, err := s.Stringify()
//	// text == "a#main.btn:hover"
//
// Two built selectors combine with a combinator token, which is passed
// through unvalidated:
//
//	combined := selector.Combine(selector.Element("div").ID("main"), "+", selector.Element("span"))
//	// combined renders as "div#main + span"
//
// # Error Handling
//
// Selector is a value type with no exceptions, so validation failures
// are sticky: the first invalid append marks the returned value with
// [ErrDuplicateSlot] or [ErrOrderViolation], later appends on that
// value are no-ops, and [Selector.Stringify] or [Selector.Err] surface
// the error. Values branched off before the failure are unaffected.
//
// # Immutability
//
// Every operation returns a new Selector and never mutates its
// receiver. Branching from an intermediate value is therefore safe:
//
//	base := selector.ID("main")
//	a := base.Class("a") // "#main.a"
//	b := base.Class("b") // "#main.b", independent of a
package selector
