package timefmt

import "time"

// TimeContext is the snapshot of calendar fields tokens are resolved against.
// Month is 1-based, Weekday is 0-based with Sunday as 0 and Offset is the
// signed distance from UTC in minutes.
type TimeContext struct {
	Year        int
	Month       int
	Day         int
	Weekday     int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Offset      int
}

// NewTimeContext reads the fields of t in t's own location.
func NewTimeContext(t time.Time) TimeContext {
	_, offset := t.Zone()
	return TimeContext{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Weekday:     int(t.Weekday()),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
		Offset:      offset / 60,
	}
}

// Hour12 converts Hour to the 12-hour clock: 0 becomes 12, 13..23 lose 12.
func (c TimeContext) Hour12() int {
	switch {
	case c.Hour == 0:
		return 12
	case c.Hour > 12:
		return c.Hour - 12
	default:
		return c.Hour
	}
}
