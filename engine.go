package timefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// RenderFunc is the shape of Engine.Render.
type RenderFunc func(pattern any, args ...any) (string, error)

// Engine renders token patterns and named formatters. Each Engine owns its
// active language pack, so engines never observe each other's switches.
type Engine struct {
	languages  *languages
	formatters *FormatterRegistry
	cache      *parseCache
	location   *time.Location
	clock      clockwork.Clock

	// depth counts nested formatter function calls.
	depth int
}

// maxFormatterDepth bounds formatter functions calling Format on other
// formatter functions, so a formatter that reaches itself fails instead of
// overflowing the stack.
const maxFormatterDepth = 16

// New builds an Engine from options.
func New(opts ...Option) (*Engine, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildEngine()
}

// BuildEngine wires an Engine from the configuration.
func (cfg *Config) BuildEngine() (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidArgument)
	}

	engine := &Engine{
		languages:  newLanguages(cfg.Source, cfg.Logger),
		formatters: NewFormatterRegistry(),
		cache:      newParseCache(cfg.ParseCacheSize),
		location:   cfg.Location,
		clock:      cfg.Clock,
	}

	for _, seed := range cfg.formatters {
		var err error
		if seed.fn != nil {
			err = engine.formatters.RegisterFunc(seed.name, seed.fn)
		} else {
			err = engine.formatters.Register(seed.name, seed.pattern)
		}
		if err != nil {
			return nil, err
		}
	}

	if cfg.Language != "" {
		engine.languages.set(cfg.Language)
	}

	return engine, nil
}

// Format renders t with a registered formatter name or, when no formatter has
// that name, with patternOrName as a token pattern.
func (e *Engine) Format(patternOrName string, t time.Time) (string, error) {
	if entry, ok := e.formatters.lookup(patternOrName); ok {
		if entry.fn != nil {
			if e.depth >= maxFormatterDepth {
				return "", fmt.Errorf("%w: %q after %d nested formatter calls", ErrFormatterDepth, patternOrName, e.depth)
			}
			nested := *e
			nested.depth++
			return entry.fn(&nested, t)
		}
		patternOrName = entry.pattern
	}
	return e.render(patternOrName, t), nil
}

// Render is the loosely typed entry point. pattern must be a string. With no
// argument the current time is rendered, with one argument that value is
// coerced to a time. With more than one argument every argument is ignored
// and the current time is rendered; callers that pass extra arguments get
// "now", which keeps call sites written against the three argument form
// working unchanged.
func (e *Engine) Render(pattern any, args ...any) (string, error) {
	name, ok := pattern.(string)
	if !ok {
		return "", fmt.Errorf("%w: pattern must be a string, got %T", ErrInvalidArgument, pattern)
	}

	var value any
	if len(args) == 1 {
		value = args[0]
	}

	t, err := e.Time(value)
	if err != nil {
		return "", err
	}
	return e.Format(name, t)
}

// Time coerces a time-like value the way Render does: nil is now, integers
// and floats are Unix milliseconds, strings without a zone are read in the
// engine location. Other values fail with ErrInvalidArgument.
func (e *Engine) Time(value any) (time.Time, error) {
	return toTime(value, e.location, e.Now)
}

func (e *Engine) render(pattern string, t time.Time) string {
	ctx := NewTimeContext(t.In(e.location))
	pack := e.languages.pack()

	var out strings.Builder
	out.Grow(len(pattern) * 2)

	for _, segment := range e.cache.parse(pattern) {
		if segment.Kind == SegmentToken {
			if value, ok := resolveToken(segment.Text, ctx, pack); ok {
				out.WriteString(value)
				continue
			}
		}
		out.WriteString(segment.Text)
	}
	return out.String()
}

// NoConflict returns the engine's Render function, for callers that bind it
// under their own name.
func (e *Engine) NoConflict() RenderFunc {
	return e.Render
}

// Now returns the current time from the engine clock in the engine location.
func (e *Engine) Now() time.Time {
	return e.clock.Now().In(e.location)
}

// Location returns the zone tokens are rendered in.
func (e *Engine) Location() *time.Location {
	return e.location
}

// Language returns the active language code.
func (e *Engine) Language() string {
	return e.languages.code()
}

// SetLanguage switches the active language pack and returns code as given
// when the switch succeeds. Codes are normalized for lookup ("pt_BR" finds
// the "pt-BR" pack and Language then reports "pt-BR"). An empty code only
// reports the current language. When code can not be resolved the previous
// pack stays active and its code is returned, so a result different from
// code signals the miss.
func (e *Engine) SetLanguage(code string) string {
	return e.languages.set(code)
}

// Pack returns a copy of the active language pack.
func (e *Engine) Pack() *LanguagePack {
	return e.languages.pack().Clone()
}

// Formatters returns formatter names in registration order.
func (e *Engine) Formatters() []string {
	return e.formatters.Names()
}

// Expand returns the token pattern behind a pattern formatter.
func (e *Engine) Expand(name string) (string, bool) {
	return e.formatters.Expand(name)
}

// RegisterFormatter appends a named token pattern.
func (e *Engine) RegisterFormatter(name, pattern string) error {
	return e.formatters.Register(name, pattern)
}

// RegisterFormatterFunc appends a named formatter function. The function may
// call Format on the engine it receives; chains deeper than 16 formatter
// functions, such as a formatter that formats its own name, fail with
// ErrFormatterDepth.
func (e *Engine) RegisterFormatterFunc(name string, fn FormatterFunc) error {
	return e.formatters.RegisterFunc(name, fn)
}
