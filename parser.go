package timefmt

import (
	"strings"
	"sync"

	"github.com/golang/groupcache/lru"
)

// SegmentKind tells a token segment from a literal one.
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentToken
)

func (k SegmentKind) String() string {
	if k == SegmentToken {
		return "token"
	}
	return "literal"
}

// Segment is one piece of a parsed pattern. For tokens Text holds the
// matched token pattern, for literals the verbatim text.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Parse splits pattern into token and literal segments. At each position the
// longest token that prefixes the remaining input wins, so "MM" is one token
// and never two "M" tokens. Consecutive literal characters share a segment.
func Parse(pattern string) []Segment {
	var (
		segments []Segment
		literal  strings.Builder
	)

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Kind: SegmentLiteral, Text: literal.String()})
		literal.Reset()
	}

	for i := 0; i < len(pattern); {
		matched := 0
		for size := maxTokenLen; size > 0; size-- {
			if i+size > len(pattern) {
				continue
			}
			if IsToken(pattern[i : i+size]) {
				matched = size
				break
			}
		}

		if matched == 0 {
			literal.WriteByte(pattern[i])
			i++
			continue
		}

		flush()
		segments = append(segments, Segment{Kind: SegmentToken, Text: pattern[i : i+matched]})
		i += matched
	}
	flush()

	return segments
}

// parseCache memoizes Parse output per pattern. Parsing is deterministic and
// the token table is immutable, so cached segments never go stale.
type parseCache struct {
	mu    sync.Mutex
	cache *lru.Cache
}

func newParseCache(size int) *parseCache {
	if size <= 0 {
		return nil
	}
	return &parseCache{cache: lru.New(size)}
}

func (c *parseCache) parse(pattern string) []Segment {
	if c == nil {
		return Parse(pattern)
	}

	c.mu.Lock()
	if cached, ok := c.cache.Get(pattern); ok {
		c.mu.Unlock()
		return cached.([]Segment)
	}
	c.mu.Unlock()

	segments := Parse(pattern)

	c.mu.Lock()
	c.cache.Add(pattern, segments)
	c.mu.Unlock()

	return segments
}

func (c *parseCache) len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}
