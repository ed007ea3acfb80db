package format

import (
	"bufio"
	"fmt"
	"strings"

	"tala/internal/logging"
	"tala/internal/runconf"
	"tala/internal/syncmap"
)

// plain text format: one fragment per line,
// identifier begin end "text"
type txtCodec struct {
	variant syncmap.Format
	log     *logging.Logger
}

func newTXTCodec(variant syncmap.Format, _ syncmap.Parameters, _ *runconf.Config, log *logging.Logger) (syncmap.Codec, error) {
	return &txtCodec{variant: variant, log: log}, nil
}

func (c *txtCodec) Variant() syncmap.Format {
	return c.variant
}

func (c *txtCodec) Parse(input string, sm *syncmap.SyncMap) error {
	scanner := bufio.NewScanner(strings.NewReader(input))
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(strings.TrimSpace(line), " ", 4)
		if len(parts) != 4 {
			return fmt.Errorf("malformed fragment at line %d: expected 'id begin end \"text\"'", lineNum)
		}

		begin, err := syncmap.ParseSeconds(parts[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		end, err := syncmap.ParseSeconds(parts[2])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		text := strings.Trim(parts[3], "\"")
		fragment := syncmap.NewFragment(
			&syncmap.TextFragment{
				Identifier: parts[0],
				Lines:      []string{text},
			},
			begin, end,
		)
		if err := sm.AddFragment(fragment, true); err != nil {
			return err
		}
	}
	return nil
}

func (c *txtCodec) Format(sm *syncmap.SyncMap) (string, error) {
	var sb strings.Builder
	for _, fragment := range sm.Fragments() {
		if fragment == nil || fragment.Text == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s %s %s \"%s\"\n",
			fragment.Text.Identifier,
			syncmap.FormatSeconds(fragment.Begin),
			syncmap.FormatSeconds(fragment.End),
			fragment.Text.Text()))
	}
	return sb.String(), nil
}
