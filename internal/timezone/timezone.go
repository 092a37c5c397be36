// Package timezone formats and parses times for display in the terminal
// client. Stored times stay in UTC; only presentation is localized.
package timezone

import (
	"fmt"
	"time"
)

const (
	DisplayLayout = "Mon 02 Jan 2006 15:04"
	InputLayout   = "2006-01-02 15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves an IANA name, falling back to the machine's zone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// FormatRange renders an interval, omitting the date of end when both fall
// on the same day in loc.
func FormatRange(start, end time.Time, loc *time.Location) string {
	s, e := start.In(loc), end.In(loc)
	if s.Year() == e.Year() && s.YearDay() == e.YearDay() {
		return fmt.Sprintf("%s - %s", s.Format(DisplayLayout), e.Format("15:04"))
	}
	return fmt.Sprintf("%s - %s", s.Format(DisplayLayout), e.Format(DisplayLayout))
}

// Parse accepts RFC 3339 or "YYYY-MM-DD HH:MM" interpreted in loc.
func Parse(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(InputLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, use %q or RFC 3339", value, InputLayout)
	}
	return t.UTC(), nil
}
