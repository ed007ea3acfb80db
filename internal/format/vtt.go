package format

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"tala/internal/logging"
	"tala/internal/runconf"
	"tala/internal/syncmap"
)

var (
	vttTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})\.(\d{3})`,
	)
	vttShortTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2})\.(\d{3})`,
	)
)

// WebVTT format
type vttCodec struct {
	variant syncmap.Format
	log     *logging.Logger
}

func newVTTCodec(variant syncmap.Format, _ syncmap.Parameters, _ *runconf.Config, log *logging.Logger) (syncmap.Codec, error) {
	return &vttCodec{variant: variant, log: log}, nil
}

func (c *vttCodec) Variant() syncmap.Format {
	return c.variant
}

func (c *vttCodec) Parse(input string, sm *syncmap.SyncMap) error {
	scanner := bufio.NewScanner(strings.NewReader(input))

	var current *syncmap.Fragment
	var textLines []string
	lineNum := 0
	count := 0
	headerParsed := false

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

		trimmed := strings.TrimSpace(line)

		if !headerParsed && strings.HasPrefix(trimmed, "WEBVTT") {
			headerParsed = true
			continue
		}

		// skip NOTE and STYLE blocks up to the next blank line
		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
			for scanner.Scan() {
				lineNum++
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			if err := flush(); err != nil {
				return err
			}
			continue
		}

		matches := vttTimestampRegex.FindStringSubmatch(line)
		if len(matches) == 9 {
			if err := flush(); err != nil {
				return err
			}
			b, err := parseClockTime(matches[1], matches[2], matches[3], matches[4])
			if err != nil {
				return fmt.Errorf("invalid start timestamp at line %d: %w", lineNum, err)
			}
			e, err := parseClockTime(matches[5], matches[6], matches[7], matches[8])
			if err != nil {
				return fmt.Errorf("invalid end timestamp at line %d: %w", lineNum, err)
			}
			count++
			current = syncmap.NewFragment(
				&syncmap.TextFragment{Identifier: fragmentIdentifier(count)},
				b, e,
			)
			continue
		}

		if short := vttShortTimestampRegex.FindStringSubmatch(line); len(short) == 7 {
			if err := flush(); err != nil {
				return err
			}
			b, err := parseClockTime("00", short[1], short[2], short[3])
			if err != nil {
				return fmt.Errorf("invalid start timestamp at line %d: %w", lineNum, err)
			}
			e, err := parseClockTime("00", short[4], short[5], short[6])
			if err != nil {
				return fmt.Errorf("invalid end timestamp at line %d: %w", lineNum, err)
			}
			count++
			current = syncmap.NewFragment(
				&syncmap.TextFragment{Identifier: fragmentIdentifier(count)},
				b, e,
			)
			continue
		}

		// cue identifier lines before a timestamp are ignored
		if current != nil {
			textLines = append(textLines, line)
		}
	}

	return flush()
}

func (c *vttCodec) Format(sm *syncmap.SyncMap) (string, error) {
	var sb strings.Builder

	// VTT header
	sb.WriteString("WEBVTT\n\n")

	for i, fragment := range sm.Fragments() {
		if fragment == nil || fragment.Text == nil {
			continue
		}

		// cue identifier
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatClockTime(fragment.Begin, "."),
			formatClockTime(fragment.End, ".")))

		// text
		sb.WriteString(strings.Join(fragment.Text.Lines, "\n"))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}
