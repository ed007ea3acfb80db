package syncmap

import "encoding/json"

// JSONString returns the canonical JSON projection of the sync map:
// {"fragments": [...]}, each entry carrying id, language, lines,
// begin/end as seconds-with-milliseconds strings, and children built
// recursively over non-empty children. Keys are sorted and the
// indentation is stable, so the output is byte-for-byte reproducible
// for an unmodified tree.
func (s *SyncMap) JSONString() string {
	doc := map[string]any{
		"fragments": jsonFragments(s.tree),
	}
	// maps marshal with sorted keys; string and slice values cannot fail
	out, _ := json.MarshalIndent(doc, "", " ")
	return string(out)
}

func jsonFragments(node *Tree) []map[string]any {
	out := []map[string]any{}
	for _, child := range node.ChildrenNotEmpty() {
		fragment := child.Value()
		if fragment == nil || fragment.Text == nil {
			// payload-less structural node, nothing to project
			continue
		}
		text := fragment.Text

		var language any
		if text.Language != "" {
			language = text.Language
		}
		lines := text.Lines
		if lines == nil {
			lines = []string{}
		}

		out = append(out, map[string]any{
			"id":       text.Identifier,
			"language": language,
			"lines":    lines,
			"begin":    FormatSeconds(fragment.Begin),
			"end":      FormatSeconds(fragment.End),
			"children": jsonFragments(child),
		})
	}
	return out
}
