package prayer

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minMinute = 0
	maxMinute = 24*60 - 1
)

// FormatError reports a clock string that is not a valid 24-hour HH:MM.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time format: %q", e.Value)
}

// ToMinutes parses a 24-hour "HH:MM" string into minutes past midnight.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 || parts[0] == "" || len(parts[1]) != 2 {
		return 0, &FormatError{Value: hhmm}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, &FormatError{Value: hhmm}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, &FormatError{Value: hhmm}
	}
	return hour*60 + minute, nil
}

// ApplyOffsetClamped adds offset to minutes and clamps the result to a single
// day. It never rolls over into the previous or next day.
func ApplyOffsetClamped(minutes, offset int) int {
	return max(minMinute, min(minutes+offset, maxMinute))
}

// FormatMinutes renders minutes past midnight as a 24-hour "HH:MM" string.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatNoAmPm converts "HH:MM" to the 12-hour display form without a
// period marker ("13:05" -> "1:05"). Input that does not parse is returned
// as is.
func FormatNoAmPm(hhmm string) string {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return hhmm
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return hhmm
	}

	switch {
	case hour == 0:
		hour = 12
	case hour > 12:
		hour -= 12
	}
	return fmt.Sprintf("%d:%02d", hour, minute)
}
