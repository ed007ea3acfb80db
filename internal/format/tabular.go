package format

import (
	"encoding/csv"
	"fmt"
	"strings"

	"tala/internal/logging"
	"tala/internal/runconf"
	"tala/internal/syncmap"
)

// delimiter-separated formats: csv, tsv (tab), ssv (space); one
// record per fragment: identifier, begin, end, text
type tabularCodec struct {
	variant   syncmap.Format
	delimiter rune
	log       *logging.Logger
}

func newTabularCodec(variant syncmap.Format, _ syncmap.Parameters, _ *runconf.Config, log *logging.Logger) (syncmap.Codec, error) {
	var delimiter rune
	switch variant {
	case syncmap.FormatCSV:
		delimiter = ','
	case syncmap.FormatTSV:
		delimiter = '\t'
	case syncmap.FormatSSV:
		delimiter = ' '
	default:
		return nil, fmt.Errorf("unsupported tabular variant %q: %w", variant, syncmap.ErrInvalidFormat)
	}
	return &tabularCodec{variant: variant, delimiter: delimiter, log: log}, nil
}

func (c *tabularCodec) Variant() syncmap.Format {
	return c.variant
}

func (c *tabularCodec) Parse(input string, sm *syncmap.SyncMap) error {
	reader := csv.NewReader(strings.NewReader(input))
	reader.Comma = c.delimiter
	reader.FieldsPerRecord = 4

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("malformed %s input: %w", c.variant, err)
	}

	for i, record := range records {
		begin, err := syncmap.ParseSeconds(record[1])
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		end, err := syncmap.ParseSeconds(record[2])
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}

		fragment := syncmap.NewFragment(
			&syncmap.TextFragment{
				Identifier: record[0],
				Lines:      []string{record[3]},
			},
			begin, end,
		)
		if err := sm.AddFragment(fragment, true); err != nil {
			return err
		}
	}
	return nil
}

func (c *tabularCodec) Format(sm *syncmap.SyncMap) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)
	writer.Comma = c.delimiter

	for _, fragment := range sm.Fragments() {
		if fragment == nil || fragment.Text == nil {
			continue
		}
		record := []string{
			fragment.Text.Identifier,
			syncmap.FormatSeconds(fragment.Begin),
			syncmap.FormatSeconds(fragment.End),
			fragment.Text.Text(),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("cannot render %s record: %w", c.variant, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("cannot render %s output: %w", c.variant, err)
	}
	return sb.String(), nil
}
