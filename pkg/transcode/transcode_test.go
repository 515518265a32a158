package transcode

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := map[string]string{"card": "div.card", "link": "a:hover"}

	text, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Error("Encode output should end with a newline")
	}
	if !strings.Contains(text, "  \"card\"") {
		t.Errorf("Encode output not indented:\n%s", text)
	}

	out, err := Decode[map[string]string](text)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(out) != len(in) || out["card"] != in["card"] || out["link"] != in["link"] {
		t.Errorf("round trip mismatch: %v != %v", out, in)
	}
}

func TestDecodeStruct(t *testing.T) {
	type payload struct {
		Selector string `json:"selector"`
		Count    int    `json:"count"`
	}
	got, err := Decode[payload](`{"selector": "#main.a", "count": 2}`)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.Selector != "#main.a" || got.Count != 2 {
		t.Errorf("Decode = %+v", got)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode[map[string]string]("{not json"); err == nil {
		t.Error("Decode should fail on malformed input")
	}
}

func TestEncodeUnsupported(t *testing.T) {
	if _, err := Encode(func() {}); err == nil {
		t.Error("Encode should fail on unsupported types")
	}
}
