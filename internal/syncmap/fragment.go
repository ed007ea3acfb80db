package syncmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TextFragment pairs a text unit with its identifier and language.
type TextFragment struct {
	Identifier string
	Language   string
	Lines      []string
}

// Text returns the fragment text as a single line.
func (t *TextFragment) Text() string {
	return strings.Join(t.Lines, " ")
}

// Fragment connects a text fragment with begin and end time values.
// Times are trusted from the codec or caller; begin <= end is not
// re-validated here.
type Fragment struct {
	Text  *TextFragment
	Begin time.Duration
	End   time.Duration
}

func NewFragment(text *TextFragment, begin, end time.Duration) *Fragment {
	return &Fragment{Text: text, Begin: begin, End: end}
}

func (f *Fragment) String() string {
	return fmt.Sprintf(
		"%s %s => %s",
		f.Text.Identifier,
		FormatSeconds(f.Begin),
		FormatSeconds(f.End),
	)
}

// FormatSeconds renders a time value as seconds with millisecond
// precision, e.g. "1.500".
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}

// ParseSeconds parses a seconds-with-milliseconds string as produced
// by FormatSeconds.
func ParseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time value %q: %w", s, err)
	}
	return time.Duration(math.Round(f*1000)) * time.Millisecond, nil
}
