// Package transcode round-trips plain values through JSON text.
//
// It wraps encoding/json with the small surface the CLI and HTTP API
// need: string-based [Encode] and [Decode] for in-memory round-trips,
// and [Write]/[Read] for streams. Output is indented with two spaces
// for stable, diff-friendly files.
//
//	text, err := transcode.Encode(map[string]string{"card": "div.card"})
//	...
//	m, err := transcode.Decode[map[string]string](text)
package transcode
