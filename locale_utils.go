package timefmt

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLanguage trims the code, swaps underscores for hyphens and applies
// BCP 47 canonical casing ("pt_br" becomes "pt-BR"). Codes x/text cannot
// parse are lowercased and otherwise kept as given.
func NormalizeLanguage(code string) string {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return ""
	}

	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	value := tag.String()
	if value == "" || value == "und" {
		return strings.ToLower(code)
	}
	return value
}
