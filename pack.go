package timefmt

import (
	"fmt"
	"strings"

	"github.com/johngb/langreg"
	"golang.org/x/text/language"
)

// DefaultLanguage is the code of the built-in pack. It always resolves.
const DefaultLanguage = "en"

// MeridiemFunc returns the AM/PM marker for a 24-hour hour value.
type MeridiemFunc func(hour int, lower bool) string

// LanguagePack holds the locale specific names tokens render.
type LanguagePack struct {
	Code        string
	Months      [12]string
	MonthsShort [12]string
	Days        [7]string
	DaysShort   [7]string
	DaysMin     [7]string
	Meridiem    MeridiemFunc
}

// Validate reports missing names or a missing meridiem function.
func (p *LanguagePack) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil pack", ErrInvalidPack)
	}
	if strings.TrimSpace(p.Code) == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidPack)
	}
	if p.Meridiem == nil {
		return fmt.Errorf("%w: %s: missing meridiem", ErrInvalidPack, p.Code)
	}

	tables := []struct {
		name   string
		values []string
	}{
		{"months", p.Months[:]},
		{"months_short", p.MonthsShort[:]},
		{"days", p.Days[:]},
		{"days_short", p.DaysShort[:]},
		{"days_min", p.DaysMin[:]},
	}
	for _, table := range tables {
		for i, value := range table.values {
			if value == "" {
				return fmt.Errorf("%w: %s: empty %s[%d]", ErrInvalidPack, p.Code, table.name, i)
			}
		}
	}
	return nil
}

// DisplayName returns the English name of the pack's base language, falling
// back to the code when the language is not in the ISO 639-1 registry.
func (p *LanguagePack) DisplayName() string {
	if p == nil {
		return ""
	}
	base := p.Code
	if tag, err := language.Parse(p.Code); err == nil {
		b, _ := tag.Base()
		base = b.String()
	}
	if name, err := langreg.LangEnglishName(base); err == nil && name != "" {
		// multiple names are ';' separated, the first is the common one
		return strings.TrimSpace(strings.SplitN(name, ";", 2)[0])
	}
	return p.Code
}

// Clone returns a copy that can be changed without touching p.
func (p *LanguagePack) Clone() *LanguagePack {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

func (p *LanguagePack) meridiem(hour int, lower bool) string {
	if p == nil || p.Meridiem == nil {
		return englishMeridiem(hour, lower)
	}
	return p.Meridiem(hour, lower)
}

func englishMeridiem(hour int, lower bool) string {
	return markerMeridiem("AM", "PM", "am", "pm")(hour, lower)
}

// markerMeridiem builds a MeridiemFunc from fixed markers.
func markerMeridiem(am, pm, amLower, pmLower string) MeridiemFunc {
	return func(hour int, lower bool) string {
		switch {
		case hour < 12 && lower:
			return amLower
		case hour < 12:
			return am
		case lower:
			return pmLower
		default:
			return pm
		}
	}
}
