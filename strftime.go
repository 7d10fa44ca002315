package timefmt

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Strftime builds a formatter function from a strftime layout. Day names,
// month names and %p come from the engine's active language pack; every
// other verb behaves as in C strftime.
func Strftime(layout string) (FormatterFunc, error) {
	if _, err := strftime.New(layout); err != nil {
		return nil, fmt.Errorf("%w: strftime layout %q: %v", ErrInvalidArgument, layout, err)
	}

	return func(e *Engine, t time.Time) (string, error) {
		out, err := strftime.Format(layout, t.In(e.Location()), packSpecifications(e.languages.pack())...)
		if err != nil {
			return "", fmt.Errorf("timefmt: strftime %q: %w", layout, err)
		}
		return out, nil
	}, nil
}

func packSpecifications(pack *LanguagePack) []strftime.Option {
	name := func(lookup func(t time.Time) string) strftime.Appender {
		return strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			return append(b, lookup(t)...)
		})
	}

	monthShort := name(func(t time.Time) string { return pack.MonthsShort[t.Month()-1] })

	return []strftime.Option{
		strftime.WithSpecification('A', name(func(t time.Time) string { return pack.Days[t.Weekday()] })),
		strftime.WithSpecification('a', name(func(t time.Time) string { return pack.DaysShort[t.Weekday()] })),
		strftime.WithSpecification('B', name(func(t time.Time) string { return pack.Months[t.Month()-1] })),
		strftime.WithSpecification('b', monthShort),
		strftime.WithSpecification('h', monthShort),
		strftime.WithSpecification('p', name(func(t time.Time) string { return pack.meridiem(t.Hour(), false) })),
	}
}
