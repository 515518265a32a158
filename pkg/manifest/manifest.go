// Package manifest loads TOML manifests of named selectors and builds
// them into rendered selector strings.
//
// A manifest has two sections. [selectors.<name>] declares a compound
// selector by its fragments; fragments are applied in the canonical
// order (element, id, classes, attrs, pseudo_classes, pseudo_element):
//
//	[selectors.thumbnail]
//	element = "img"
//	classes = ["preview"]
//	attrs = ['src$=".png"']
//	pseudo_classes = ["hover"]
//
// [combinations.<name>] joins two previously named entries with a
// combinator; either side may reference a selector or another
// combination, so combined selectors nest:
//
//	[combinations.gallery-item]
//	left = "gallery"
//	combinator = ">"
//	right = "thumbnail"
package manifest

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cssel/pkg/selector"
)

var (
	// ErrUnknownReference is returned by [Manifest.Build] when a
	// combination references a name declared in neither section.
	ErrUnknownReference = errors.New("unknown selector reference")

	// ErrAmbiguousName is returned by [Manifest.Build] when the same
	// name appears in both the selectors and combinations sections.
	ErrAmbiguousName = errors.New("name declared as both selector and combination")

	// ErrReferenceCycle is returned by [Manifest.Build] when
	// combinations reference each other in a cycle.
	ErrReferenceCycle = errors.New("combination references form a cycle")
)

// Manifest is the decoded TOML manifest.
type Manifest struct {
	Selectors    map[string]Spec        `toml:"selectors"`
	Combinations map[string]Combination `toml:"combinations"`
}

// Spec declares the fragments of one compound selector.
// All fields are optional; an empty spec renders as an empty selector.
type Spec struct {
	Element       string   `toml:"element"`
	ID            string   `toml:"id"`
	Classes       []string `toml:"classes"`
	Attrs         []string `toml:"attrs"`
	PseudoClasses []string `toml:"pseudo_classes"`
	PseudoElement string   `toml:"pseudo_element"`
}

// Combination joins two named manifest entries with a combinator.
// The combinator is passed through to selector.Combine unvalidated.
type Combination struct {
	Left       string `toml:"left"`
	Combinator string `toml:"combinator"`
	Right      string `toml:"right"`
}

// Load reads and decodes a TOML manifest file.
func Load(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a TOML manifest from a string.
func Parse(data string) (Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// Selector assembles the spec into a selector chain, applying the
// fragments in canonical order. The returned value carries any
// validation error the chain produced (a duplicate id slot cannot
// happen here, but the fragment values themselves stay unvalidated).
func (s Spec) Selector() selector.Selector {
	var sel selector.Selector
	if s.Element != "" {
		sel = sel.Element(s.Element)
	}
	if s.ID != "" {
		sel = sel.ID(s.ID)
	}
	for _, c := range s.Classes {
		sel = sel.Class(c)
	}
	for _, a := range s.Attrs {
		sel = sel.Attr(a)
	}
	for _, p := range s.PseudoClasses {
		sel = sel.PseudoClass(p)
	}
	if s.PseudoElement != "" {
		sel = sel.PseudoElement(s.PseudoElement)
	}
	return sel
}

// Build renders every named selector and combination in the manifest.
// The result maps each name to its rendered text. Combinations may
// reference other combinations; Build resolves them recursively and
// reports ErrUnknownReference, ErrAmbiguousName or ErrReferenceCycle
// for malformed manifests.
func (m Manifest) Build() (map[string]string, error) {
	for name := range m.Combinations {
		if _, dup := m.Selectors[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousName, name)
		}
	}

	resolved := make(map[string]selector.Selector, len(m.Selectors)+len(m.Combinations))
	visiting := make(map[string]bool)

	var resolve func(name string) (selector.Selector, error)
	resolve = func(name string) (selector.Selector, error) {
		if sel, ok := resolved[name]; ok {
			return sel, nil
		}
		if spec, ok := m.Selectors[name]; ok {
			sel := spec.Selector()
			resolved[name] = sel
			return sel, nil
		}
		combo, ok := m.Combinations[name]
		if !ok {
			return selector.Selector{}, fmt.Errorf("%w: %q", ErrUnknownReference, name)
		}
		if visiting[name] {
			return selector.Selector{}, fmt.Errorf("%w: %q", ErrReferenceCycle, name)
		}
		visiting[name] = true
		defer delete(visiting, name)

		left, err := resolve(combo.Left)
		if err != nil {
			return selector.Selector{}, err
		}
		right, err := resolve(combo.Right)
		if err != nil {
			return selector.Selector{}, err
		}
		sel := selector.Combine(left, combo.Combinator, right)
		resolved[name] = sel
		return sel, nil
	}

	out := make(map[string]string, len(m.Selectors)+len(m.Combinations))
	for name := range m.Selectors {
		sel, err := resolve(name)
		if err != nil {
			return nil, err
		}
		text, err := sel.Stringify()
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", name, err)
		}
		out[name] = text
	}
	for name := range m.Combinations {
		sel, err := resolve(name)
		if err != nil {
			return nil, err
		}
		text, err := sel.Stringify()
		if err != nil {
			return nil, fmt.Errorf("combination %q: %w", name, err)
		}
		out[name] = text
	}
	return out, nil
}
