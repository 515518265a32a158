// Package pkg provides the core libraries for the cssel selector toolkit.
//
// # Overview
//
// cssel assembles CSS selector strings from typed fragments, enforcing
// the fixed fragment order and the one-per-selector rules for element,
// id and pseudo-element. The pkg directory is organized into small,
// independent libraries:
//
//  1. [selector] - The selector builder (fragments, ordering, combine)
//  2. [manifest] - TOML manifests of named selectors and combinations
//  3. [transcode] - JSON round-trip helpers for values and streams
//  4. [geometry] - Plain rectangle records with an area accessor
//  5. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Build and render a selector:
//
//	import "github.com/matzehuels/cssel/pkg/selector"
//
//	s := selector.Element("div").ID("main").Class("container")
//	text, err := s.Stringify() // "div#main.container"
//
// The packages have no shared runtime: selector does not depend on
// manifest, transcode or geometry, and each can be used on its own.
package pkg
