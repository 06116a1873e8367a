package theme

import (
	"strings"

	"glowfolio-backend/internal/models"
)

// CSSVariable is one custom property bound on a template root.
type CSSVariable struct {
	Name  string
	Value string
}

// CSSVariables maps a theme onto the --kit-* custom properties templates style against.
func CSSVariables(t models.TemplateTheme) []CSSVariable {
	return []CSSVariable{
		{Name: "--kit-background", Value: cssValue(t.Background)},
		{Name: "--kit-foreground", Value: cssValue(t.Foreground)},
		{Name: "--kit-primary", Value: cssValue(t.Primary)},
		{Name: "--kit-primary-light", Value: cssValue(t.PrimaryLight)},
		{Name: "--kit-secondary", Value: cssValue(t.Secondary)},
		{Name: "--kit-accent", Value: cssValue(t.Accent)},
		{Name: "--kit-neutral", Value: cssValue(t.Neutral)},
		{Name: "--kit-border", Value: cssValue(t.Border)},
		{Name: "--kit-font", Value: cssValue(t.Font)},
	}
}

// StyleAttribute renders the theme variables plus extra declarations as the
// value of a style attribute.
func StyleAttribute(t models.TemplateTheme, extra ...CSSVariable) string {
	vars := append(CSSVariables(t), extra...)

	var sb strings.Builder
	for _, v := range vars {
		if v.Value == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(v.Name)
		sb.WriteString(":")
		sb.WriteString(cssValue(v.Value))
	}
	return sb.String()
}

// cssValue drops characters that could terminate a declaration or break out of
// the attribute. Theme values are colours, color-mix() calls and font stacks.
func cssValue(value string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case strings.ContainsRune("#(),.%-' ", r):
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
