// Package blocks holds the reusable content blocks templates are composed of.
// Every block is a pure function of its props and returns HTML; an empty
// string means the block renders nothing.
package blocks

import (
	"fmt"
	"html/template"
	"strings"

	"glowfolio-backend/pkg/validator"
)

// RenderContext exposes the capabilities blocks need from the host.
type RenderContext interface {
	// SanitizeHTML cleans user-supplied rich text before it is embedded.
	SanitizeHTML(input string) string
}

// Context is the default RenderContext.
type Context struct {
	Sanitizer func(string) string
}

// NewContext returns a context sanitizing with the shared bluemonday UGC policy.
func NewContext() *Context {
	return &Context{Sanitizer: validator.SanitizeHTML}
}

func (c *Context) SanitizeHTML(input string) string {
	if c == nil || c.Sanitizer == nil {
		return template.HTMLEscapeString(input)
	}
	return c.Sanitizer(input)
}

func sanitize(ctx RenderContext, input string) string {
	if ctx == nil {
		return template.HTMLEscapeString(input)
	}
	return ctx.SanitizeHTML(input)
}

func esc(value string) string {
	return template.HTMLEscapeString(strings.TrimSpace(value))
}

func class(prefix, element string) string {
	return fmt.Sprintf("%s__%s", prefix, element)
}

func modifier(prefix, element, mod string) string {
	base := class(prefix, element)
	return base + " " + base + "--" + mod
}

// safeURL drops javascript: and other non-web schemes from link targets.
func safeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	switch {
	case trimmed == "":
		return ""
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "mailto:"), strings.HasPrefix(lower, "tel:"),
		strings.HasPrefix(lower, "/"), strings.HasPrefix(lower, "#"):
		return trimmed
	case strings.Contains(lower, ":"):
		return ""
	default:
		return trimmed
	}
}

// SectionTitleProps configures a section heading.
type SectionTitleProps struct {
	Title    string
	Subtitle string
	Level    string
}

// SectionTitle renders a heading with an optional subtitle.
func SectionTitle(ctx RenderContext, prefix string, props SectionTitleProps) string {
	title := strings.TrimSpace(props.Title)
	if title == "" {
		return ""
	}

	level := strings.ToLower(strings.TrimSpace(props.Level))
	switch level {
	case "h1", "h2", "h3", "h4":
	default:
		level = "h2"
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + class(prefix, "section-title") + `">`)
	sb.WriteString(`<` + level + ` class="` + class(prefix, "section-heading") + `">` + esc(title) + `</` + level + `>`)
	if subtitle := strings.TrimSpace(props.Subtitle); subtitle != "" {
		sb.WriteString(`<p class="` + class(prefix, "section-subtitle") + `">` + esc(subtitle) + `</p>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// EmptyState renders the muted message a section shows when it has no content.
func EmptyState(prefix, message string) string {
	if strings.TrimSpace(message) == "" {
		return ""
	}
	return `<p class="` + modifier(prefix, "empty", "section") + `">` + esc(message) + `</p>`
}
