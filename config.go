package timefmt

import (
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// DefaultParseCacheSize is the number of parsed patterns an Engine memoizes.
const DefaultParseCacheSize = 256

// Config captures engine setup
type Config struct {
	Language       string
	Source         LanguagePackSource
	Location       *time.Location
	Clock          clockwork.Clock
	Logger         logrus.FieldLogger
	ParseCacheSize int

	formatters []formatterSeed
}

type formatterSeed struct {
	name    string
	pattern string
	fn      FormatterFunc
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		Language:       DefaultLanguage,
		ParseCacheSize: DefaultParseCacheSize,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Source == nil {
		cfg.Source = BuiltinSource()
	}

	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	if cfg.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		cfg.Logger = logger
	}

	return cfg, nil
}

// WithLanguage sets the language the engine starts with. A code the source
// can not resolve leaves the engine on the default language.
func WithLanguage(code string) Option {
	return func(c *Config) error {
		c.Language = code
		return nil
	}
}

// WithPackSource sets where language packs are resolved from. The built-in
// English pack stays available whatever the source.
func WithPackSource(source LanguagePackSource) Option {
	return func(c *Config) error {
		c.Source = source
		return nil
	}
}

// WithPackDir resolves packs from files in dir, then from the built-in table.
func WithPackDir(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return fmt.Errorf("%w: empty pack directory", ErrInvalidArgument)
		}
		c.Source = ChainSource(NewDirSource(dir), BuiltinSource())
		return nil
	}
}

// WithLocation sets the zone tokens are rendered in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Config) error {
		c.Location = loc
		return nil
	}
}

// WithClock sets the clock used when no time value is given.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

// WithLogger sets where language switches are logged. Defaults to a discarding logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithParseCacheSize bounds the parsed pattern cache; 0 disables it.
func WithParseCacheSize(size int) Option {
	return func(c *Config) error {
		if size < 0 {
			return fmt.Errorf("%w: negative parse cache size %d", ErrInvalidArgument, size)
		}
		c.ParseCacheSize = size
		return nil
	}
}

// WithFormatter registers a named pattern after the built-in formatters.
func WithFormatter(name, pattern string) Option {
	return func(c *Config) error {
		c.formatters = append(c.formatters, formatterSeed{name: name, pattern: pattern})
		return nil
	}
}

// WithFormatterFunc registers a named formatter function after the built-in formatters.
func WithFormatterFunc(name string, fn FormatterFunc) Option {
	return func(c *Config) error {
		c.formatters = append(c.formatters, formatterSeed{name: name, fn: fn})
		return nil
	}
}
