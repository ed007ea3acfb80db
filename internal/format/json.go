package format

import (
	"encoding/json"
	"fmt"

	"tala/internal/logging"
	"tala/internal/runconf"
	"tala/internal/syncmap"
)

// canonical JSON projection, including nested children
type jsonCodec struct {
	variant syncmap.Format
	log     *logging.Logger
}

type jsonFragment struct {
	ID       string         `json:"id"`
	Language *string        `json:"language"`
	Lines    []string       `json:"lines"`
	Begin    string         `json:"begin"`
	End      string         `json:"end"`
	Children []jsonFragment `json:"children"`
}

func newJSONCodec(variant syncmap.Format, _ syncmap.Parameters, _ *runconf.Config, log *logging.Logger) (syncmap.Codec, error) {
	return &jsonCodec{variant: variant, log: log}, nil
}

func (c *jsonCodec) Variant() syncmap.Format {
	return c.variant
}

func (c *jsonCodec) Parse(input string, sm *syncmap.SyncMap) error {
	var doc struct {
		Fragments []jsonFragment `json:"fragments"`
	}
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return fmt.Errorf("invalid JSON sync map: %w", err)
	}

	for _, jf := range doc.Fragments {
		node, err := buildNode(jf)
		if err != nil {
			return err
		}
		sm.Tree().AddChild(node, true)
	}
	return nil
}

func buildNode(jf jsonFragment) (*syncmap.Tree, error) {
	begin, err := syncmap.ParseSeconds(jf.Begin)
	if err != nil {
		return nil, fmt.Errorf("fragment %q: %w", jf.ID, err)
	}
	end, err := syncmap.ParseSeconds(jf.End)
	if err != nil {
		return nil, fmt.Errorf("fragment %q: %w", jf.ID, err)
	}

	text := &syncmap.TextFragment{
		Identifier: jf.ID,
		Lines:      jf.Lines,
	}
	if jf.Language != nil {
		text.Language = *jf.Language
	}

	node := syncmap.NewTree(syncmap.NewFragment(text, begin, end))
	for _, child := range jf.Children {
		childNode, err := buildNode(child)
		if err != nil {
			return nil, err
		}
		node.AddChild(childNode, true)
	}
	return node, nil
}

func (c *jsonCodec) Format(sm *syncmap.SyncMap) (string, error) {
	return sm.JSONString(), nil
}
