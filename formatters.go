package timefmt

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Built-in formatter names, registered in this order.
const (
	ISODate       = "ISODate"
	ISOTime       = "ISOTime"
	ISODateTime   = "ISODateTime"
	ISODateTimeTZ = "ISODateTimeTZ"
)

var builtinFormatters = []struct {
	name    string
	pattern string
}{
	{ISODate, "YYYY-MM-dd"},
	{ISOTime, "HH:mm:ss"},
	{ISODateTime, "YYYY-MM-ddTHH:mm:ss"},
	{ISODateTimeTZ, "YYYY-MM-ddTHH:mm:ssZ"},
}

// FormatterFunc renders t through the engine, usually by composing other
// formatters or patterns.
type FormatterFunc func(e *Engine, t time.Time) (string, error)

type formatterEntry struct {
	pattern string
	fn      FormatterFunc
}

// FormatterRegistry maps preset names to token patterns or functions. Names
// are kept in registration order and can not be replaced once registered.
type FormatterRegistry struct {
	mu      sync.RWMutex
	entries map[string]formatterEntry
	order   []string
}

// NewFormatterRegistry seeds a registry with the ISO formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		entries: make(map[string]formatterEntry, len(builtinFormatters)),
	}
	for _, builtin := range builtinFormatters {
		registry.entries[builtin.name] = formatterEntry{pattern: builtin.pattern}
		registry.order = append(registry.order, builtin.name)
	}
	return registry
}

// Register adds a named token pattern
func (r *FormatterRegistry) Register(name, pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: empty pattern for formatter %q", ErrInvalidArgument, name)
	}
	return r.add(name, formatterEntry{pattern: pattern})
}

// RegisterFunc adds a named formatter function
func (r *FormatterRegistry) RegisterFunc(name string, fn FormatterFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: nil func for formatter %q", ErrInvalidArgument, name)
	}
	return r.add(name, formatterEntry{fn: fn})
}

func (r *FormatterRegistry) add(name string, entry formatterEntry) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty formatter name", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateFormatter, name)
	}
	r.entries[name] = entry
	r.order = append(r.order, name)
	return nil
}

// Names returns the registered names in registration order.
func (r *FormatterRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Expand returns the pattern behind a pattern formatter. Function formatters
// and unknown names report false.
func (r *FormatterRegistry) Expand(name string) (string, bool) {
	entry, ok := r.lookup(name)
	if !ok || entry.fn != nil {
		return "", false
	}
	return entry.pattern, true
}

// Has reports whether name is registered.
func (r *FormatterRegistry) Has(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

func (r *FormatterRegistry) lookup(name string) (formatterEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	return entry, ok
}
