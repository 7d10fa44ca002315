package timefmt

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"
)

// toTime coerces a time-like value. nil means now; integers and floats are
// Unix milliseconds; strings without a zone are read in loc. Booleans and
// anything cast can not turn into an instant fail with ErrInvalidArgument.
func toTime(value any, loc *time.Location, now func() time.Time) (time.Time, error) {
	var (
		t   time.Time
		err error
	)

	switch v := value.(type) {
	case nil:
		return now(), nil
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil *time.Time", ErrInvalidArgument)
		}
		t = *v
	case bool:
		return time.Time{}, fmt.Errorf("%w: %v is not a time value", ErrInvalidArgument, v)
	case int:
		t = time.UnixMilli(int64(v))
	case int32:
		t = time.UnixMilli(int64(v))
	case int64:
		t = time.UnixMilli(v)
	case uint:
		t, err = uintMillis(uint64(v))
	case uint32:
		t = time.UnixMilli(int64(v))
	case uint64:
		t, err = uintMillis(v)
	case float32:
		t, err = floatMillis(float64(v))
	case float64:
		t, err = floatMillis(v)
	default:
		t, err = cast.ToTimeInDefaultLocationE(value, loc)
	}

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidArgument)
	}
	return t, nil
}

func uintMillis(v uint64) (time.Time, error) {
	if v > math.MaxInt64 {
		return time.Time{}, fmt.Errorf("%d ms is out of range", v)
	}
	return time.UnixMilli(int64(v)), nil
}

// floatMillis keeps the fractional millisecond. float64(math.MaxInt64)
// rounds up to 2^63, so the upper bound is exclusive.
func floatMillis(v float64) (time.Time, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, fmt.Errorf("%v is not a valid instant", v)
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return time.Time{}, fmt.Errorf("%g ms is out of range", v)
	}
	ms := int64(v)
	ns := int64((v - float64(ms)) * float64(time.Millisecond))
	return time.UnixMilli(ms).Add(time.Duration(ns)), nil
}
