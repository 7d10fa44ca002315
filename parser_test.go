package timefmt

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tok := func(s string) Segment { return Segment{Kind: SegmentToken, Text: s} }
	lit := func(s string) Segment { return Segment{Kind: SegmentLiteral, Text: s} }

	tests := []struct {
		pattern string
		want    []Segment
	}{
		{"", nil},
		{"MM", []Segment{tok("MM")}},
		{"MMMMM", []Segment{tok("MMMM"), tok("M")}},
		{"YYYYY", []Segment{tok("YYYY"), lit("Y")}},
		{"YYY", []Segment{tok("YY"), lit("Y")}},
		{"YYYY-MM-dd", []Segment{tok("YYYY"), lit("-"), tok("MM"), lit("-"), tok("dd")}},
		{"HH:mm:ssZ", []Segment{tok("HH"), lit(":"), tok("mm"), lit(":"), tok("ss"), tok("Z")}},
		{"ZZZ", []Segment{tok("ZZ"), tok("Z")}},
		{"hello", []Segment{tok("h"), lit("ello")}},
		{"T  T", []Segment{lit("T  T")}},
		{"[at] h", []Segment{lit("["), tok("a"), lit("t] "), tok("h")}},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			got := Parse(tc.pattern)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.pattern, got, tc.want)
			}
		})
	}
}

func TestParseLiteralOnlyPatterns(t *testing.T) {
	engine := newTestEngine(t)

	for _, pattern := range []string{"T", "--", "/ :", "xyz", "12345", "[]"} {
		for _, segment := range Parse(pattern) {
			if segment.Kind == SegmentToken {
				t.Fatalf("%q should hold no tokens, found %q", pattern, segment.Text)
			}
		}
		if got, _ := engine.Format(pattern, preloaded); got != pattern {
			t.Fatalf("Format(%q) = %q, want the pattern back", pattern, got)
		}
	}
}

func TestParseRoundTripsText(t *testing.T) {
	for _, pattern := range []string{"YYYY-MM-ddTHH:mm:ssZ", "DDD, MMMM d", "[week] ww", "ffff"} {
		var rebuilt strings.Builder
		for _, segment := range Parse(pattern) {
			rebuilt.WriteString(segment.Text)
		}
		if rebuilt.String() != pattern {
			t.Fatalf("segments of %q rebuild %q", pattern, rebuilt.String())
		}
	}
}

func TestSegmentKindString(t *testing.T) {
	if SegmentToken.String() != "token" || SegmentLiteral.String() != "literal" {
		t.Fatalf("unexpected kind names %q %q", SegmentToken, SegmentLiteral)
	}
}

func TestParseCache(t *testing.T) {
	cache := newParseCache(2)

	first := cache.parse("YYYY")
	second := cache.parse("YYYY")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached segments differ: %v vs %v", first, second)
	}
	if cache.len() != 1 {
		t.Fatalf("expected 1 cached pattern, got %d", cache.len())
	}

	cache.parse("MM")
	cache.parse("dd")
	if cache.len() != 2 {
		t.Fatalf("cache should stay bounded at 2, got %d", cache.len())
	}

	var disabled *parseCache
	if got := disabled.parse("MM"); len(got) != 1 || got[0].Text != "MM" {
		t.Fatalf("nil cache should parse directly, got %v", got)
	}
	if disabled.len() != 0 {
		t.Fatal("nil cache should report zero entries")
	}
	if newParseCache(0) != nil {
		t.Fatal("size 0 should disable the cache")
	}
}

func TestEngineWithoutParseCache(t *testing.T) {
	engine := newTestEngine(t, WithParseCacheSize(0))

	got, err := engine.Format(ISODate, preloaded)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got != "1995-09-05" {
		t.Fatalf("got %q", got)
	}

	if _, err := New(WithParseCacheSize(-1)); err == nil {
		t.Fatal("negative cache size should fail")
	}
}
