package timefmt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LanguagePackSource resolves a language code to a pack.
type LanguagePackSource interface {
	// Resolve returns the pack for code, or an error wrapping ErrPackNotFound
	// when the source has none.
	Resolve(code string) (*LanguagePack, error)
}

// SourceFunc adapters allow bare functions to implement LanguagePackSource
type SourceFunc func(code string) (*LanguagePack, error)

// Resolve implements LanguagePackSource for SourceFunc
func (fn SourceFunc) Resolve(code string) (*LanguagePack, error) {
	return fn(code)
}

// BuiltinSource returns the fixed table of packs compiled into the package.
// Only the English pack ships built in.
func BuiltinSource() LanguagePackSource {
	return NewMapSource(builtinPack)
}

// DefaultPack returns a copy of the built-in English pack.
func DefaultPack() *LanguagePack {
	return builtinPack.Clone()
}

// MapSource is an in memory source, read only after construction
type MapSource struct {
	packs map[string]*LanguagePack
	codes []string
}

var _ LanguagePackSource = &MapSource{}

// NewMapSource builds a source from the given packs, keyed by normalized code.
// Packs are copied; nil packs are skipped.
func NewMapSource(packs ...*LanguagePack) *MapSource {
	source := &MapSource{packs: make(map[string]*LanguagePack, len(packs))}
	for _, pack := range packs {
		if pack == nil {
			continue
		}
		clone := pack.Clone()
		clone.Code = NormalizeLanguage(clone.Code)
		if _, exists := source.packs[clone.Code]; !exists {
			source.codes = append(source.codes, clone.Code)
		}
		source.packs[clone.Code] = clone
	}
	sort.Strings(source.codes)
	return source
}

// Resolve returns a copy of the pack stored for code
func (s *MapSource) Resolve(code string) (*LanguagePack, error) {
	if s != nil {
		if pack, ok := s.packs[NormalizeLanguage(code)]; ok {
			return pack.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPackNotFound, code)
}

// Codes returns the codes known to the source, sorted.
func (s *MapSource) Codes() []string {
	if s == nil || len(s.codes) == 0 {
		return nil
	}
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// DirSource loads packs on demand from files named <code>.json, <code>.yaml,
// <code>.yml or <code>.toml inside a directory.
type DirSource struct {
	dir string
}

var _ LanguagePackSource = &DirSource{}

// NewDirSource returns a source reading packs from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Resolve loads the pack file for code. Read or decode failures are returned
// as is, a missing file wraps ErrPackNotFound.
func (s *DirSource) Resolve(code string) (*LanguagePack, error) {
	code = NormalizeLanguage(code)
	if s == nil || s.dir == "" || code == "" || code != filepath.Base(code) {
		return nil, fmt.Errorf("%w: %q", ErrPackNotFound, code)
	}

	for _, ext := range packExtensions {
		path := filepath.Join(s.dir, code+ext)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("timefmt: stat %s: %w", path, err)
		}

		pack, err := LoadPackFile(path)
		if err != nil {
			return nil, err
		}
		pack.Code = code
		return pack, nil
	}

	return nil, fmt.Errorf("%w: %q in %s", ErrPackNotFound, code, s.dir)
}

// Codes lists the pack files found in the directory, sorted.
func (s *DirSource) Codes() ([]string, error) {
	if s == nil || s.dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("timefmt: read %s: %w", s.dir, err)
	}

	seen := make(map[string]struct{}, len(entries))
	var codes []string
	for _, entry := range entries {
		if entry.IsDir() || !isPackFile(entry.Name()) {
			continue
		}
		code := NormalizeLanguage(entry.Name()[:len(entry.Name())-len(filepath.Ext(entry.Name()))])
		if _, exists := seen[code]; exists {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

func isPackFile(name string) bool {
	ext := filepath.Ext(name)
	for _, candidate := range packExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

type chainSource struct {
	sources []LanguagePackSource
}

// ChainSource asks each source in order and returns the first pack found.
// Errors other than ErrPackNotFound stop the search.
func ChainSource(sources ...LanguagePackSource) LanguagePackSource {
	flattened := make([]LanguagePackSource, 0, len(sources))
	for _, source := range sources {
		if source == nil {
			continue
		}
		if chain, ok := source.(*chainSource); ok {
			flattened = append(flattened, chain.sources...)
			continue
		}
		flattened = append(flattened, source)
	}
	return &chainSource{sources: flattened}
}

func (c *chainSource) Resolve(code string) (*LanguagePack, error) {
	for _, source := range c.sources {
		pack, err := source.Resolve(code)
		if err == nil && pack != nil {
			return pack, nil
		}
		if err != nil && !errors.Is(err, ErrPackNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPackNotFound, code)
}
