// Package theme turns a creator's ColorScheme into the TemplateTheme each
// template renders with. Every template owns its own mapping and defaults.
package theme

import (
	"glowfolio-backend/internal/models"
)

// Func maps a possibly partial colour scheme to a complete theme.
type Func func(scheme *models.ColorScheme) models.TemplateTheme

const (
	FontSans    = "Inter, ui-sans-serif, system-ui, sans-serif"
	FontSerif   = "'Playfair Display', Georgia, serif"
	FontElegant = "'Cormorant Garamond', Georgia, serif"
	FontV1      = "Poppins, ui-sans-serif, system-ui, sans-serif"
	FontRounded = "'DM Sans', ui-sans-serif, system-ui, sans-serif"
)

const white = "#FFFFFF"

func schemeOrEmpty(scheme *models.ColorScheme) models.ColorScheme {
	if scheme == nil {
		return models.ColorScheme{}
	}
	return *scheme
}

// DefaultTheme is the palette of the Default template: white canvas, purple primary.
func DefaultTheme(scheme *models.ColorScheme) models.TemplateTheme {
	cs := schemeOrEmpty(scheme)

	primary := pick(cs.Primary, cs.Accent, "#9333EA")
	return models.TemplateTheme{
		Background:   pick(cs.Background, "#FFFFFF"),
		Foreground:   pick(cs.Text, "#1F2937"),
		Primary:      primary,
		PrimaryLight: pick(cs.AccentLight, Mix(primary, white, 0.85, "#F3E8FF")),
		Secondary:    pick(cs.Secondary, "#6B7280"),
		Accent:       pick(cs.Accent, "#EC4899"),
		Neutral:      "#F9FAFB",
		Border:       WithAlpha(primary, "33"),
		Font:         FontSans,
	}
}

// AestheticTheme is a soft pastel palette; the accent drives both border and highlight.
func AestheticTheme(scheme *models.ColorScheme) models.TemplateTheme {
	cs := schemeOrEmpty(scheme)

	accent := pick(cs.Accent, "#F472B6")
	primary := pick(cs.Primary, "#DB2777")
	return models.TemplateTheme{
		Background:   pick(cs.Background, "#FDF8F5"),
		Foreground:   pick(cs.Text, "#3F3F46"),
		Primary:      primary,
		PrimaryLight: pick(cs.AccentLight, Mix(accent, white, 0.8, "#FCE7F3")),
		Secondary:    pick(cs.Secondary, "#A1A1AA"),
		Accent:       accent,
		Neutral:      "#FFF7F2",
		Border:       WithAlpha(accent, "33"),
		Font:         FontRounded,
	}
}

// LuxuryTheme is a dark canvas with a gold accent. Primary follows the accent
// unless the creator picked one explicitly.
func LuxuryTheme(scheme *models.ColorScheme) models.TemplateTheme {
	cs := schemeOrEmpty(scheme)

	accent := pick(cs.Accent, "#D4AF37")
	primary := pick(cs.Primary, accent)
	return models.TemplateTheme{
		Background:   pick(cs.Background, "#0B0B0C"),
		Foreground:   pick(cs.Text, "#F5F5F4"),
		Primary:      primary,
		PrimaryLight: pick(cs.AccentLight, Mix(primary, white, 0.6, "#FDE68A")),
		Secondary:    pick(cs.Secondary, "#A8A29E"),
		Accent:       accent,
		Neutral:      "#1C1917",
		Border:       WithAlpha(accent, "33"),
		Font:         FontSerif,
	}
}

// ElegantTheme uses warm neutrals and expresses the border as a color-mix().
func ElegantTheme(scheme *models.ColorScheme) models.TemplateTheme {
	cs := schemeOrEmpty(scheme)

	accent := pick(cs.Accent, "#B08968")
	primary := pick(cs.Primary, "#7F5539")
	return models.TemplateTheme{
		Background:   pick(cs.Background, "#FAF7F2"),
		Foreground:   pick(cs.Text, "#2D2A26"),
		Primary:      primary,
		PrimaryLight: pick(cs.AccentLight, Mix(primary, white, 0.85, "#E8DCCB")),
		Secondary:    pick(cs.Secondary, "#8C857B"),
		Accent:       accent,
		Neutral:      "#F1ECE4",
		Border:       ColorMix(accent, 20),
		Font:         FontElegant,
	}
}

// V1Theme is the original media kit palette: slate text with a blue primary.
func V1Theme(scheme *models.ColorScheme) models.TemplateTheme {
	cs := schemeOrEmpty(scheme)

	primary := pick(cs.Primary, "#1D4ED8")
	accent := pick(cs.Accent, "#3B82F6")
	return models.TemplateTheme{
		Background:   pick(cs.Background, "#F8FAFC"),
		Foreground:   pick(cs.Text, "#0F172A"),
		Primary:      primary,
		PrimaryLight: pick(cs.AccentLight, "#DBEAFE"),
		Secondary:    pick(cs.Secondary, "#64748B"),
		Accent:       accent,
		Neutral:      "#F1F5F9",
		Border:       WithAlpha(primary, "33"),
		Font:         FontV1,
	}
}

// WithFont returns t with the font replaced when font is not blank.
func WithFont(t models.TemplateTheme, font string) models.TemplateTheme {
	if value := pick(font); value != "" {
		t.Font = value
	}
	return t
}
