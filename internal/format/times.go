package format

import (
	"fmt"
	"strconv"
	"time"
)

// formatClockTime renders a duration as HH:MM:SS followed by
// milliseconds, with the given separator before the milliseconds
// ("," for SRT, "." for VTT and SMIL).
func formatClockTime(d time.Duration, msSeparator string) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, seconds, msSeparator, millis)
}

func parseClockTime(hours, minutes, seconds, millis string) (time.Duration, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

// fragmentIdentifier builds the synthetic identifier assigned to the
// n-th parsed fragment (1-based) in formats that carry no identifier
// of their own.
func fragmentIdentifier(n int) string {
	return fmt.Sprintf("f%06d", n)
}
