package cli

import (
	"fmt"
	"strings"

	"github.com/matzehuels/cssel/pkg/selector"
)

// fragmentKinds lists the accepted kind names in canonical order,
// used for help text and TUI hints.
var fragmentKinds = []string{"element", "id", "class", "attr", "pseudo-class", "pseudo-element"}

// applyFragment appends a single "kind=value" fragment to the chain.
// The value is everything after the first "=", so attribute values may
// themselves contain "=" (e.g. attr=href$=".png").
func applyFragment(sel selector.Selector, spec string) (selector.Selector, error) {
	kind, value, ok := strings.Cut(spec, "=")
	if !ok {
		return sel, fmt.Errorf("invalid fragment %q: expected kind=value", spec)
	}
	switch kind {
	case "element":
		return sel.Element(value), nil
	case "id":
		return sel.ID(value), nil
	case "class":
		return sel.Class(value), nil
	case "attr":
		return sel.Attr(value), nil
	case "pseudo-class":
		return sel.PseudoClass(value), nil
	case "pseudo-element":
		return sel.PseudoElement(value), nil
	default:
		return sel, fmt.Errorf("invalid fragment %q: unknown kind (expected one of %s)",
			spec, strings.Join(fragmentKinds, ", "))
	}
}

// parseFragments builds a selector chain by applying the fragment
// specs in argument order. Ordering and cardinality violations are
// recorded on the returned Selector, not returned here; rendering
// surfaces them.
func parseFragments(specs []string) (selector.Selector, error) {
	var sel selector.Selector
	for _, spec := range specs {
		var err error
		sel, err = applyFragment(sel, spec)
		if err != nil {
			return selector.Selector{}, err
		}
	}
	return sel, nil
}
