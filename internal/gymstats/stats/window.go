package stats

import (
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Window is an inclusive time range. A nil bound is unbounded.
// From after To is kept as is and simply matches nothing.
type Window struct {
	From *time.Time
	To   *time.Time
}

// ParseWindow parses optional ISO-8601 bounds. Empty or blank strings are absent bounds.
// A date-only end bound covers the whole day.
func ParseWindow(start, end string) (Window, error) {
	var w Window

	from, err := parseBound(start, false)
	if err != nil {
		return Window{}, fmt.Errorf("%w: startDate %q", ErrInvalidDateFormat, start)
	}
	w.From = from

	to, err := parseBound(end, true)
	if err != nil {
		return Window{}, fmt.Errorf("%w: endDate %q", ErrInvalidDateFormat, end)
	}
	w.To = to

	return w, nil
}

func parseBound(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	t, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func (w Window) String() string {
	format := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format(time.RFC3339Nano)
	}
	return format(w.From) + ".." + format(w.To)
}
