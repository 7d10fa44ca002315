package timefmt

import (
	"sort"
	"strconv"
)

type tokenResolver func(ctx TimeContext, pack *LanguagePack) string

// tokenTable maps every recognized token to its resolver. It is never
// mutated after package initialization.
var tokenTable = map[string]tokenResolver{
	"YYYY": func(ctx TimeContext, _ *LanguagePack) string { return strconv.Itoa(ctx.Year) },
	"YY":   func(ctx TimeContext, _ *LanguagePack) string { return pad(abs(ctx.Year)%100, 2) },
	"MMMM": func(ctx TimeContext, pack *LanguagePack) string { return pack.Months[ctx.Month-1] },
	"MMM":  func(ctx TimeContext, pack *LanguagePack) string { return pack.MonthsShort[ctx.Month-1] },
	"MM":   func(ctx TimeContext, _ *LanguagePack) string { return pad(ctx.Month, 2) },
	"M":    func(ctx TimeContext, _ *LanguagePack) string { return strconv.Itoa(ctx.Month) },
	"DDD":  func(ctx TimeContext, pack *LanguagePack) string { return pack.Days[ctx.Weekday] },
	"DD":   func(ctx TimeContext, pack *LanguagePack) string { return pack.DaysShort[ctx.Weekday] },
	"D":    func(ctx TimeContext, pack *LanguagePack) string { return pack.DaysMin[ctx.Weekday] },
	"dd":   func(ctx TimeContext, _ *LanguagePack) string { return pad(ctx.Day, 2) },
	"d":    func(ctx TimeContext, _ *LanguagePack) string { return strconv.Itoa(ctx.Day) },
	"HH":   func(ctx TimeContext, _ *LanguagePack) string { return pad(ctx.Hour, 2) },
	"H":    func(ctx TimeContext, _ *LanguagePack) string { return strconv.Itoa(ctx.Hour) },
	"hh":   func(ctx TimeContext, _ *LanguagePack) string { return pad(ctx.Hour12(), 2) },
	"h":    func(ctx TimeContext, _ *LanguagePack) string { return strconv.Itoa(ctx.Hour12()) },
	"mm":   func(ctx TimeContext, _ *LanguagePack) string { return pad(ctx.Minute, 2) },
	"m":    func(ctx TimeContext, _ *LanguagePack) string { return strconv.Itoa(ctx.Minute) },
	"ss":   func(ctx TimeContext, _ *LanguagePack) string { return pad(ctx.Second, 2) },
	"s":    func(ctx TimeContext, _ *LanguagePack) string { return strconv.Itoa(ctx.Second) },
	"ff":   func(ctx TimeContext, _ *LanguagePack) string { return pad(ctx.Millisecond, 3) },
	"f":    func(ctx TimeContext, _ *LanguagePack) string { return strconv.Itoa(ctx.Millisecond) },
	"A":    func(ctx TimeContext, pack *LanguagePack) string { return pack.meridiem(ctx.Hour, false) },
	"a":    func(ctx TimeContext, pack *LanguagePack) string { return pack.meridiem(ctx.Hour, true) },
	"ZZ":   func(ctx TimeContext, _ *LanguagePack) string { return formatOffset(ctx.Offset, "") },
	"Z":    func(ctx TimeContext, _ *LanguagePack) string { return formatOffset(ctx.Offset, ":") },
}

// maxTokenLen is the length of the longest pattern in tokenTable.
var maxTokenLen = func() int {
	longest := 0
	for pattern := range tokenTable {
		if len(pattern) > longest {
			longest = len(pattern)
		}
	}
	return longest
}()

// IsToken reports whether s is a recognized token pattern.
func IsToken(s string) bool {
	_, ok := tokenTable[s]
	return ok
}

// Tokens returns every token pattern, longest first.
func Tokens() []string {
	out := make([]string, 0, len(tokenTable))
	for pattern := range tokenTable {
		out = append(out, pattern)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

func resolveToken(pattern string, ctx TimeContext, pack *LanguagePack) (string, bool) {
	fn, ok := tokenTable[pattern]
	if !ok {
		return "", false
	}
	return fn(ctx, pack), true
}

func formatOffset(minutes int, sep string) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
	}
	minutes = abs(minutes)
	return sign + pad(minutes/60, 2) + sep + pad(minutes%60, 2)
}

func pad(value, width int) string {
	s := strconv.Itoa(value)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
