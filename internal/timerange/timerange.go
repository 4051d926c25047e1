// Package timerange turns a calendar date plus a "HH:MM-HH:MM" slot string
// into a pair of absolute timestamps.
package timerange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrMissingSeparator = errors.New(`time range must contain a "-" separator`)

const layout = "2006-01-02 15:04"

// Build combines date ("2006-01-02") and rng ("HH:MM-HH:MM") into start and
// end timestamps in loc. Both halves of the range are parsed independently
// and either failure fails the whole build. A nil loc means local time.
func Build(date, rng string, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if !strings.Contains(rng, "-") {
		return time.Time{}, time.Time{}, ErrMissingSeparator
	}

	parts := strings.SplitN(rng, "-", 2)
	startClock := strings.TrimSpace(parts[0])
	endClock := strings.TrimSpace(parts[1])

	start, err := time.ParseInLocation(layout, date+" "+startClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time %q: %w", startClock, err)
	}
	end, err := time.ParseInLocation(layout, date+" "+endClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time %q: %w", endClock, err)
	}

	return start, end, nil
}
