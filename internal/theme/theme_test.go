package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glowfolio-backend/internal/models"
)

var allThemes = map[string]Func{
	"default":   DefaultTheme,
	"aesthetic": AestheticTheme,
	"luxury":    LuxuryTheme,
	"elegant":   ElegantTheme,
	"v1":        V1Theme,
}

func TestThemesAreCompleteForEmptyScheme(t *testing.T) {
	for name, fn := range allThemes {
		for _, scheme := range []*models.ColorScheme{nil, {}} {
			got := fn(scheme)
			if !got.Complete() {
				t.Errorf("%s: expected every field populated, got %+v", name, got)
			}
		}
	}
}

func TestThemesAreDeterministic(t *testing.T) {
	scheme := &models.ColorScheme{Accent: "#112233", Background: "#FAFAFA"}
	for name, fn := range allThemes {
		first := fn(scheme)
		second := fn(scheme)
		if first != second {
			t.Errorf("%s: expected identical themes, got %+v and %+v", name, first, second)
		}
	}
}

func TestDefaultThemeUsesSchemeColours(t *testing.T) {
	got := DefaultTheme(&models.ColorScheme{
		Background: "#000000",
		Text:       "#EEEEEE",
		Primary:    "#123456",
	})

	if got.Background != "#000000" || got.Foreground != "#EEEEEE" {
		t.Fatalf("expected background/text from scheme, got %+v", got)
	}
	if got.Primary != "#123456" {
		t.Fatalf("expected primary #123456, got %s", got.Primary)
	}
	if got.Border != "#12345633" {
		t.Fatalf("expected border with 33 alpha, got %s", got.Border)
	}
}

func TestElegantBorderUsesColorMix(t *testing.T) {
	got := ElegantTheme(&models.ColorScheme{Accent: "#AA5500"})
	if got.Border != "color-mix(in srgb, #AA5500 20%, transparent)" {
		t.Fatalf("unexpected elegant border %q", got.Border)
	}
}

func TestLuxuryPrimaryFollowsAccent(t *testing.T) {
	got := LuxuryTheme(&models.ColorScheme{Accent: "#C0C0C0"})
	if got.Primary != "#C0C0C0" {
		t.Fatalf("expected primary to follow accent, got %s", got.Primary)
	}
}

func TestMixAndAlpha(t *testing.T) {
	if got := Mix("#000000", "#FFFFFF", 0.5, "x"); got != "#808080" {
		t.Errorf("expected #808080, got %s", got)
	}
	if got := Mix("#9333EA", "#FFFFFF", 0.85, "x"); got != "#EFE0FC" {
		t.Errorf("expected #EFE0FC, got %s", got)
	}
	if got := Mix("#123", "#000000", 2, "x"); got != "#000000" {
		t.Errorf("expected weight clamped to target, got %s", got)
	}
	if got := Mix("nope", "#FFFFFF", 0.5, "#ABCDEF"); got != "#ABCDEF" {
		t.Errorf("expected fallback, got %s", got)
	}
	if got := WithAlpha("#fff", "33"); got != "#FFFFFF33" {
		t.Errorf("expected expanded shorthand, got %s", got)
	}
	if got := WithAlpha("red", "33"); got != "red" {
		t.Errorf("expected non-hex untouched, got %s", got)
	}
}

func TestStyleAttribute(t *testing.T) {
	style := StyleAttribute(DefaultTheme(nil))
	for _, name := range []string{"--kit-background:", "--kit-primary-light:", "--kit-border:", "--kit-font:"} {
		if !strings.Contains(style, name) {
			t.Errorf("expected %s in %q", name, style)
		}
	}

	injected := DefaultTheme(&models.ColorScheme{Background: `#fff;}</style><script>`})
	style = StyleAttribute(injected)
	for _, bad := range []string{";}", "<", ">"} {
		if strings.Contains(style, bad) {
			t.Errorf("style attribute should not contain %q: %s", bad, style)
		}
	}
}

func TestLoadPresetsMissingFileUsesDefaults(t *testing.T) {
	presets, err := LoadPresets(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(presets) != len(defaultPresets()) {
		t.Fatalf("expected built-in presets, got %d", len(presets))
	}
}

func TestLoadPresetsMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	content := `{"presets":[
		{"name":" Noir ","label":"Midnight","colors":{"accent":"#FFFFFF"}},
		{"name":"mint","order":99,"colors":{"primary":"#10B981"}}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write presets: %v", err)
	}

	catalog, err := NewCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noir, ok := catalog.Get("noir")
	if !ok {
		t.Fatalf("expected noir preset")
	}
	if noir.Label != "Midnight" || noir.Colors.Accent != "#FFFFFF" {
		t.Fatalf("expected overrides applied, got %+v", noir)
	}
	if noir.Colors.Background != "#0B0B0C" {
		t.Fatalf("expected untouched fields kept, got %s", noir.Colors.Background)
	}

	list := catalog.List()
	if list[0].Name != "classic" || list[len(list)-1].Name != "mint" {
		t.Fatalf("unexpected preset order: first=%s last=%s", list[0].Name, list[len(list)-1].Name)
	}
}

func TestLoadPresetsSkipsInvalidColours(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	content := `{"presets":[
		{"name":"ocean","colors":{"accent":"red"}},
		{"name":"brick","colors":{"primary":"#B91C1C","background":"url(x)"}},
		{"name":"fern","colors":{"primary":"#15803D"}}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write presets: %v", err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if presets["ocean"].Colors != defaultPresets()["ocean"].Colors {
		t.Fatalf("invalid override should leave the built-in, got %+v", presets["ocean"].Colors)
	}
	if _, ok := presets["brick"]; ok {
		t.Fatalf("preset with an invalid colour should be skipped")
	}
	if presets["fern"].Colors.Primary != "#15803D" {
		t.Fatalf("valid preset should load, got %+v", presets["fern"])
	}
}

func TestLoadPresetsRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write presets: %v", err)
	}
	if _, err := LoadPresets(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestResolveScheme(t *testing.T) {
	presets := DefaultPresets()

	if got := ResolveScheme(nil, "", presets); got != nil {
		t.Fatalf("expected nil scheme, got %+v", got)
	}

	got := ResolveScheme(nil, "ocean", presets)
	if got == nil || got.Primary != "#1D4ED8" {
		t.Fatalf("expected ocean preset, got %+v", got)
	}

	got = ResolveScheme(&models.ColorScheme{Primary: "#FF0000"}, "ocean", presets)
	if got.Primary != "#FF0000" || got.Background != "#F8FAFC" {
		t.Fatalf("expected stored colours over preset, got %+v", got)
	}
}
