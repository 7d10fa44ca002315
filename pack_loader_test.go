package timefmt

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadPackFileFormats(t *testing.T) {
	tests := []struct {
		path      string
		code      string
		september string
		tuesday   string
		am, amLow string
	}{
		{"testdata/packs/uk.yaml", "uk", "вересень", "вівторок", "ДП", "дп"},
		{"testdata/packs/es.toml", "es", "septiembre", "martes", "a. m.", "a. m."},
		{"testdata/packs/fr.json", "fr", "septembre", "Tuesday", "AM", "am"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			pack, err := LoadPackFile(tc.path)
			if err != nil {
				t.Fatalf("LoadPackFile: %v", err)
			}
			if pack.Code != tc.code {
				t.Fatalf("code = %q, want %q", pack.Code, tc.code)
			}
			if pack.Months[8] != tc.september {
				t.Fatalf("months[8] = %q", pack.Months[8])
			}
			if pack.Days[2] != tc.tuesday {
				t.Fatalf("days[2] = %q", pack.Days[2])
			}
			if got := pack.Meridiem(3, false); got != tc.am {
				t.Fatalf("meridiem upper = %q, want %q", got, tc.am)
			}
			if got := pack.Meridiem(3, true); got != tc.amLow {
				t.Fatalf("meridiem lower = %q, want %q", got, tc.amLow)
			}
			if err := pack.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestLoadPackFileErrors(t *testing.T) {
	if _, err := LoadPackFile("testdata/broken/de.json"); !errors.Is(err, ErrInvalidPack) {
		t.Fatalf("short table should be ErrInvalidPack, got %v", err)
	}

	_, err := LoadPackFile("testdata/broken/it.yaml")
	if err == nil || !strings.Contains(err.Error(), "yaml parse error") {
		t.Fatalf("expected yaml parse error, got %v", err)
	}

	if _, err := LoadPackFile("testdata/packs/missing.json"); err == nil {
		t.Fatal("expected read error")
	}
}

func TestDecodePack(t *testing.T) {
	pack, err := DecodePack("pt_br", ".json", []byte(`{"meridiem":{"am":"AM","pm":"PM","am_lower":"a.m.","pm_lower":"p.m."}}`))
	if err != nil {
		t.Fatalf("DecodePack: %v", err)
	}
	if pack.Code != "pt-BR" {
		t.Fatalf("code = %q", pack.Code)
	}
	if got := pack.Meridiem(15, true); got != "p.m." {
		t.Fatalf("explicit lower marker ignored: %q", got)
	}
	if pack.Months[0] != "January" {
		t.Fatalf("missing months should inherit English, got %q", pack.Months[0])
	}

	if _, err := DecodePack("xx", ".ini", []byte("a=b")); err == nil {
		t.Fatal("unsupported extension should fail")
	}
	if _, err := DecodePack("xx", ".json", []byte(`{"days":[""]}`)); !errors.Is(err, ErrInvalidPack) {
		t.Fatalf("expected ErrInvalidPack, got %v", err)
	}
	if _, err := DecodePack("xx", ".json", []byte(`{"days":["a","","c","d","e","f","g"]}`)); !errors.Is(err, ErrInvalidPack) {
		t.Fatalf("empty day name should fail validation, got %v", err)
	}
}

func TestDefaultPack(t *testing.T) {
	pack := DefaultPack()
	if pack.Code != DefaultLanguage {
		t.Fatalf("code = %q", pack.Code)
	}
	if pack.DaysMin[0] != "Su" || pack.MonthsShort[11] != "Dec" {
		t.Fatalf("unexpected tables %v %v", pack.DaysMin, pack.MonthsShort)
	}

	pack.Months[0] = "changed"
	if DefaultPack().Months[0] != "January" {
		t.Fatal("DefaultPack should return a copy")
	}
}

func TestLanguagePackValidate(t *testing.T) {
	var nilPack *LanguagePack
	if err := nilPack.Validate(); !errors.Is(err, ErrInvalidPack) {
		t.Fatalf("nil pack: %v", err)
	}

	pack := DefaultPack()
	pack.Meridiem = nil
	if err := pack.Validate(); !errors.Is(err, ErrInvalidPack) {
		t.Fatalf("missing meridiem: %v", err)
	}
	if got := pack.meridiem(13, true); got != "pm" {
		t.Fatalf("missing meridiem should fall back to English, got %q", got)
	}

	pack = DefaultPack()
	pack.Code = " "
	if err := pack.Validate(); !errors.Is(err, ErrInvalidPack) {
		t.Fatalf("blank code: %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"en":    "English",
		"uk":    "Ukrainian",
		"pt-BR": "Portuguese",
		"iu":    "Inuktitut",
		"zz":    "zz",
	}
	for code, want := range tests {
		pack := &LanguagePack{Code: code}
		if got := pack.DisplayName(); got != want {
			t.Fatalf("DisplayName(%s) = %q, want %q", code, got, want)
		}
	}
}
