package timefmt

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// languages holds the active language pack of an Engine. Renders read it,
// only SetLanguage replaces it.
type languages struct {
	mu     sync.RWMutex
	source LanguagePackSource
	active *LanguagePack
	logger logrus.FieldLogger
}

func newLanguages(source LanguagePackSource, logger logrus.FieldLogger) *languages {
	if source == nil {
		source = BuiltinSource()
	}
	return &languages{
		source: source,
		active: builtinPack,
		logger: logger,
	}
}

func (l *languages) code() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active.Code
}

func (l *languages) pack() *LanguagePack {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// set switches to code and returns code when the switch succeeds. A code the
// source cannot resolve leaves the active pack in place and the previous code
// is returned, so callers detect a miss by comparing the result with what
// they asked for. The built-in English pack backs "en" whatever the source
// holds.
func (l *languages) set(code string) string {
	normalized := NormalizeLanguage(code)

	l.mu.Lock()
	defer l.mu.Unlock()

	if normalized == "" {
		return l.active.Code
	}

	log := l.logger.WithFields(logrus.Fields{
		"requested": normalized,
		"active":    l.active.Code,
	})

	pack, err := l.source.Resolve(normalized)
	switch {
	case err == nil && pack != nil:
		if err = pack.Validate(); err == nil {
			pack = pack.Clone()
			pack.Code = normalized
			l.active = pack
			log.Debug("timefmt: language switched")
			return code
		}
		log.WithError(err).Warn("timefmt: rejecting language pack")
	case err == nil:
		log.Debug("timefmt: language source returned no pack")
	case errors.Is(err, ErrPackNotFound):
		log.WithError(err).Debug("timefmt: language pack not found")
	default:
		log.WithError(err).Warn("timefmt: language pack failed to load")
	}

	if normalized == DefaultLanguage {
		l.active = builtinPack
		return code
	}
	return l.active.Code
}
