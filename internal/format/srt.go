package format

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tala/internal/logging"
	"tala/internal/runconf"
	"tala/internal/syncmap"
)

var srtTimestampRegex = regexp.MustCompile(
	`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`,
)

// SubRip format
type srtCodec struct {
	variant syncmap.Format
	log     *logging.Logger
}

func newSRTCodec(variant syncmap.Format, _ syncmap.Parameters, _ *runconf.Config, log *logging.Logger) (syncmap.Codec, error) {
	return &srtCodec{variant: variant, log: log}, nil
}

func (c *srtCodec) Variant() syncmap.Format {
	return c.variant
}

func (c *srtCodec) Parse(input string, sm *syncmap.SyncMap) error {
	scanner := bufio.NewScanner(strings.NewReader(input))

	var current *syncmap.Fragment
	var textLines []string
	lineNum := 0
	count := 0

	flush := func() error {
		if current == nil || len(textLines) == 0 {
			return nil
		}
		current.Text.Lines = textLines
		if err := sm.AddFragment(current, true); err != nil {
			return err
		}
		current = nil
		textLines = nil
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return err
			}
			continue
		}

		if current == nil {
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				count++
				current = syncmap.NewFragment(
					&syncmap.TextFragment{Identifier: fragmentIdentifier(count)},
					0, 0,
				)
				continue
			}
		}

		if current != nil && current.Begin == 0 && current.End == 0 {
			matches := srtTimestampRegex.FindStringSubmatch(line)
			if len(matches) == 9 {
				begin, err := parseClockTime(matches[1], matches[2], matches[3], matches[4])
				if err != nil {
					return fmt.Errorf("invalid start timestamp at line %d: %w", lineNum, err)
				}
				end, err := parseClockTime(matches[5], matches[6], matches[7], matches[8])
				if err != nil {
					return fmt.Errorf("invalid end timestamp at line %d: %w", lineNum, err)
				}
				current.Begin = begin
				current.End = end
				continue
			}
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}

	return flush()
}

func (c *srtCodec) Format(sm *syncmap.SyncMap) (string, error) {
	var sb strings.Builder
	for i, fragment := range sm.Fragments() {
		if fragment == nil || fragment.Text == nil {
			continue
		}

		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatClockTime(fragment.Begin, ","),
			formatClockTime(fragment.End, ",")))

		// text
		sb.WriteString(strings.Join(fragment.Text.Lines, "\n"))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}
