package timefmt

import (
	"sync"
	"time"
)

var (
	defaultMu     sync.RWMutex
	defaultEngine = mustDefaultEngine()
)

func mustDefaultEngine() *Engine {
	engine, err := New()
	if err != nil {
		panic("timefmt: build default engine: " + err.Error())
	}
	return engine
}

// Default returns the process-wide engine used by the package-level functions.
func Default() *Engine {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultEngine
}

// SetDefault replaces the process-wide engine and returns the previous one.
// A nil engine resets to a fresh default.
func SetDefault(engine *Engine) *Engine {
	if engine == nil {
		engine = mustDefaultEngine()
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	previous := defaultEngine
	defaultEngine = engine
	return previous
}

// Render renders with the default engine, see Engine.Render.
func Render(pattern any, args ...any) (string, error) {
	return Default().Render(pattern, args...)
}

// Format renders t with the default engine, see Engine.Format.
func Format(patternOrName string, t time.Time) (string, error) {
	return Default().Format(patternOrName, t)
}

// Language returns the default engine's active language code.
func Language() string {
	return Default().Language()
}

// SetLanguage switches the default engine's language, see Engine.SetLanguage.
func SetLanguage(code string) string {
	return Default().SetLanguage(code)
}

// Formatters lists the default engine's formatter names in registration order.
func Formatters() []string {
	return Default().Formatters()
}

// RegisterFormatter appends a named pattern to the default engine.
func RegisterFormatter(name, pattern string) error {
	return Default().RegisterFormatter(name, pattern)
}

// RegisterFormatterFunc appends a named formatter function to the default engine.
func RegisterFormatterFunc(name string, fn FormatterFunc) error {
	return Default().RegisterFormatterFunc(name, fn)
}

// NoConflict returns the default engine's Render function.
func NoConflict() RenderFunc {
	return Default().NoConflict()
}
