package encode

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/construct/stone"
)

func encTree() *stone.Tree {
	t := stone.New()
	t.Add(-1, &stone.Stone{Tag: "!color(bg)", Value: "#000"})
	box := t.Add(-1, &stone.Stone{Kind: stone.MapKind, Name: "box"})
	t.Add(box, &stone.Stone{Name: "x", Value: "1"})
	t.Add(box, &stone.Stone{Kind: stone.SeqKind, Name: "l"})
	t.Add(-1, &stone.Stone{Tag: "!note", Value: "a<b"})
	return t
}

func TestEncodeXML(t *testing.T) {
	want := `<stones>
  <color tag="!color(bg)">#000</color>
  <map name="box">
    <scalar name="x">1</scalar>
    <seq name="l"/>
  </map>
  <note>a&lt;b</note>
</stones>
`
	if diff := cmp.Diff(want, MustString(encTree())); diff != "" {
		t.Errorf("xml mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeIndicesSkipsAbsent(t *testing.T) {
	tr := encTree()
	tr.Remove(1)
	want := `<stones>
  <color i="0" tag="!color(bg)">#000</color>
  <note i="4">a&lt;b</note>
</stones>
`
	if diff := cmp.Diff(want, MustString(tr, Indices(true))); diff != "" {
		t.Errorf("xml mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(encTree(), buf, EncodeFormat(JSONFormat)); err != nil {
		t.Fatal(err)
	}
	want := `[
  "#000",
  {
    "box": {
      "l": [],
      "x": "1"
    }
  },
  "a<b"
]
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"x": XMLFormat, "yaml": YAMLFormat, "j": JSONFormat} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}
