package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// DateKeyLayout is the time layout of a DateKey such as "27-Aug-2025".
const DateKeyLayout = "02-Jan-2006"

var dateKeyPattern = regexp.MustCompile(`^\d{2}-[A-Z][a-z]{2}-\d{4}$`)

// ErrInvalidDate is wrapped by every ValidationError for a bad DateKey.
var ErrInvalidDate = errors.New("invalid date")

// ValidationError is a client input problem. It is never retried.
type ValidationError struct {
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v %q: expected DD-Mon-YYYY, e.g. 27-Aug-2025", e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ParseDateKey validates s as a DateKey and returns it as a UTC midnight.
func ParseDateKey(s string) (time.Time, error) {
	if !dateKeyPattern.MatchString(s) {
		return time.Time{}, &ValidationError{Value: s, Err: ErrInvalidDate}
	}
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Value: s, Err: ErrInvalidDate}
	}
	// Go month lookup ignores case; a DateKey must use the canonical form.
	if t.Format(DateKeyLayout) != s {
		return time.Time{}, &ValidationError{Value: s, Err: ErrInvalidDate}
	}
	return t, nil
}
