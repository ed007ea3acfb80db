package format

import (
	"testing"
	"time"

	"tala/internal/syncmap"
)

func TestJSONRoundTripNested(t *testing.T) {
	sm := syncmap.New(nil, nil)
	parent := syncmap.NewTree(syncmap.NewFragment(
		&syncmap.TextFragment{Identifier: "p001", Language: "en", Lines: []string{"paragraph"}},
		0, 3*time.Second,
	))
	parent.AddChild(syncmap.NewTree(syncmap.NewFragment(
		&syncmap.TextFragment{Identifier: "s001", Language: "en", Lines: []string{"sentence one"}},
		0, 1500*time.Millisecond,
	)), true)
	parent.AddChild(syncmap.NewTree(syncmap.NewFragment(
		&syncmap.TextFragment{Identifier: "s002", Language: "en", Lines: []string{"sentence two"}},
		1500*time.Millisecond, 3*time.Second,
	)), true)
	sm.Tree().AddChild(parent, true)

	formatter := newCodec(t, syncmap.FormatJSON, newJSONCodec, nil).(syncmap.Formatter)
	out, err := formatter.Format(sm)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	parsed := syncmap.New(nil, nil)
	parser := newCodec(t, syncmap.FormatJSON, newJSONCodec, nil).(syncmap.Parser)
	if err := parser.Parse(out, parsed); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if parsed.JSONString() != sm.JSONString() {
		t.Errorf("round trip changed the sync map:\n%s\nvs\n%s",
			sm.JSONString(), parsed.JSONString())
	}
	if parsed.IsSingleLevel() {
		t.Error("nested structure was flattened")
	}
}

func TestJSONParseNullLanguage(t *testing.T) {
	input := `{
 "fragments": [
  {
   "begin": "0.000",
   "children": [],
   "end": "1.000",
   "id": "f1",
   "language": null,
   "lines": ["text"]
  }
 ]
}`
	parser := newCodec(t, syncmap.FormatJSON, newJSONCodec, nil).(syncmap.Parser)
	sm := syncmap.New(nil, nil)
	if err := parser.Parse(input, sm); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if sm.Len() != 1 {
		t.Fatalf("expected 1 fragment, got %d", sm.Len())
	}
	if lang := sm.Fragments()[0].Text.Language; lang != "" {
		t.Errorf("expected empty language for null, got %q", lang)
	}
}

func TestJSONParseInvalid(t *testing.T) {
	parser := newCodec(t, syncmap.FormatJSON, newJSONCodec, nil).(syncmap.Parser)
	sm := syncmap.New(nil, nil)
	if err := parser.Parse("{not json", sm); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
