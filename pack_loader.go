package timefmt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/en.json
var defaultPackJSON []byte

// packFile is the on-disk shape of a language pack. Every table is optional;
// missing tables are inherited from the base pack.
type packFile struct {
	Code        string          `json:"code" yaml:"code" toml:"code"`
	Months      []string        `json:"months" yaml:"months" toml:"months"`
	MonthsShort []string        `json:"months_short" yaml:"months_short" toml:"months_short"`
	Days        []string        `json:"days" yaml:"days" toml:"days"`
	DaysShort   []string        `json:"days_short" yaml:"days_short" toml:"days_short"`
	DaysMin     []string        `json:"days_min" yaml:"days_min" toml:"days_min"`
	Meridiem    meridiemMarkers `json:"meridiem" yaml:"meridiem" toml:"meridiem"`
}

type meridiemMarkers struct {
	AM      string `json:"am" yaml:"am" toml:"am"`
	PM      string `json:"pm" yaml:"pm" toml:"pm"`
	AMLower string `json:"am_lower" yaml:"am_lower" toml:"am_lower"`
	PMLower string `json:"pm_lower" yaml:"pm_lower" toml:"pm_lower"`
}

var packExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// builtinPack is the embedded English pack every other pack inherits from.
var builtinPack = func() *LanguagePack {
	var file packFile
	if err := json.Unmarshal(defaultPackJSON, &file); err != nil {
		panic(fmt.Sprintf("timefmt: parse default language pack: %v", err))
	}
	pack, err := file.build(DefaultLanguage, nil)
	if err != nil {
		panic(fmt.Sprintf("timefmt: default language pack: %v", err))
	}
	return pack
}()

// LoadPackFile reads a pack from a .json, .yaml, .yml or .toml file. When the
// file names no code, the file name without extension is used.
func LoadPackFile(path string) (*LanguagePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("timefmt: read %s: %w", path, err)
	}

	code := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	pack, err := DecodePack(code, filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("timefmt: decode %s: %w", path, err)
	}
	return pack, nil
}

// DecodePack decodes a pack payload in the format named by ext. Missing
// tables inherit from the built-in English pack.
func DecodePack(code, ext string, data []byte) (*LanguagePack, error) {
	file, err := decodePackFile(ext, data)
	if err != nil {
		return nil, err
	}
	return file.build(code, builtinPack)
}

func decodePackFile(ext string, data []byte) (packFile, error) {
	var file packFile

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return file, fmt.Errorf("json parse error: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return file, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return file, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return file, fmt.Errorf("unsupported extension %s", ext)
	}

	return file, nil
}

func (f packFile) build(code string, base *LanguagePack) (*LanguagePack, error) {
	if f.Code != "" {
		code = f.Code
	}
	code = NormalizeLanguage(code)
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidPack)
	}

	pack := &LanguagePack{Code: code}
	if base != nil {
		pack.Months = base.Months
		pack.MonthsShort = base.MonthsShort
		pack.Days = base.Days
		pack.DaysShort = base.DaysShort
		pack.DaysMin = base.DaysMin
	}

	tables := []struct {
		name   string
		values []string
		target []string
	}{
		{"months", f.Months, pack.Months[:]},
		{"months_short", f.MonthsShort, pack.MonthsShort[:]},
		{"days", f.Days, pack.Days[:]},
		{"days_short", f.DaysShort, pack.DaysShort[:]},
		{"days_min", f.DaysMin, pack.DaysMin[:]},
	}
	for _, table := range tables {
		if len(table.values) == 0 {
			continue
		}
		if len(table.values) != len(table.target) {
			return nil, fmt.Errorf("%w: %s: %s has %d entries, want %d",
				ErrInvalidPack, code, table.name, len(table.values), len(table.target))
		}
		copy(table.target, table.values)
	}

	markers := f.Meridiem
	if markers.AM == "" {
		markers.AM = base.meridiem(0, false)
	}
	if markers.PM == "" {
		markers.PM = base.meridiem(12, false)
	}
	lower := cases.Lower(language.Make(code))
	if markers.AMLower == "" {
		markers.AMLower = lower.String(markers.AM)
	}
	if markers.PMLower == "" {
		markers.PMLower = lower.String(markers.PM)
	}
	pack.Meridiem = markerMeridiem(markers.AM, markers.PM, markers.AMLower, markers.PMLower)

	if err := pack.Validate(); err != nil {
		return nil, err
	}
	return pack, nil
}
