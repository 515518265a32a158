package manifest

import (
	"errors"
	"testing"
)

const sample = `
[selectors.gallery]
element = "div"
id = "gallery"
classes = ["grid"]

[selectors.thumbnail]
element = "img"
classes = ["preview"]
attrs = ['src$=".png"']
pseudo_classes = ["hover"]

[selectors.caption]
element = "figcaption"
pseudo_element = "first-line"

[combinations.gallery-item]
left = "gallery"
combinator = ">"
right = "thumbnail"

[combinations.captioned]
left = "gallery-item"
combinator = "+"
right = "caption"
`

func TestBuild(t *testing.T) {
	m, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	got, err := m.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	want := map[string]string{
		"gallery":      "div#gallery.grid",
		"thumbnail":    `img.preview[src$=".png"]:hover`,
		"caption":      "figcaption::first-line",
		"gallery-item": `div#gallery.grid > img.preview[src$=".png"]:hover`,
		"captioned":    `div#gallery.grid > img.preview[src$=".png"]:hover + figcaption::first-line`,
	}
	if len(got) != len(want) {
		t.Fatalf("Build produced %d entries, want %d: %v", len(got), len(want), got)
	}
	for name, text := range want {
		if got[name] != text {
			t.Errorf("%s = %q, want %q", name, got[name], text)
		}
	}
}

func TestSpecFragmentOrder(t *testing.T) {
	spec := Spec{
		Element:       "a",
		ID:            "b",
		Classes:       []string{"c"},
		Attrs:         []string{"d"},
		PseudoClasses: []string{"e"},
		PseudoElement: "f",
	}
	got, err := spec.Selector().Stringify()
	if err != nil {
		t.Fatalf("Stringify error: %v", err)
	}
	if want := "a#b.c[d]:e::f"; got != want {
		t.Errorf("Selector = %q, want %q", got, want)
	}
}

func TestBuildUnknownReference(t *testing.T) {
	m, err := Parse(`
[combinations.broken]
left = "missing"
combinator = "+"
right = "also-missing"
`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := m.Build(); !errors.Is(err, ErrUnknownReference) {
		t.Errorf("Build error = %v, want ErrUnknownReference", err)
	}
}

func TestBuildReferenceCycle(t *testing.T) {
	m, err := Parse(`
[combinations.a]
left = "b"
combinator = "+"
right = "b"

[combinations.b]
left = "a"
combinator = "+"
right = "a"
`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := m.Build(); !errors.Is(err, ErrReferenceCycle) {
		t.Errorf("Build error = %v, want ErrReferenceCycle", err)
	}
}

func TestBuildAmbiguousName(t *testing.T) {
	m, err := Parse(`
[selectors.card]
element = "div"

[combinations.card]
left = "card"
combinator = "+"
right = "card"
`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := m.Build(); !errors.Is(err, ErrAmbiguousName) {
		t.Errorf("Build error = %v, want ErrAmbiguousName", err)
	}
}
