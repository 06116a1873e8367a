// Package templates composes blocks into the full-page media kit layouts.
package templates

import (
	"strings"

	"glowfolio-backend/internal/blocks"
	"glowfolio-backend/internal/models"
	"glowfolio-backend/internal/theme"
	"glowfolio-backend/pkg/utils"
)

// Input is everything a template renders from.
type Input struct {
	Data       *models.EditorPreviewData
	Theme      models.TemplateTheme
	Visibility models.SectionVisibilityState
	Loading    bool
	// Preview disables interactive elements (library previews and thumbnails).
	Preview bool
}

// RenderFunc renders a complete template.
type RenderFunc func(ctx blocks.RenderContext, in Input) string

const (
	loadingMarkup = `<div class="kit-state kit-state--loading" role="status" aria-busy="true"><span class="kit-state__spinner"></span><p>Loading media kit…</p></div>`
	noDataMarkup  = `<div class="kit-state kit-state--empty"><p>No media kit data available</p></div>`
)

// sectionRow is one entry of a template's ordered section table. A row renders
// when its flag is visible; has decides between render and the empty text.
// Rows with a nil has always render, leaving fallbacks to the block. A row with
// a has whose render still comes back empty falls back to the empty text.
type sectionRow[V any] struct {
	id     string
	title  string
	flag   models.SectionFlag
	has    func(v V) bool
	render func(ctx blocks.RenderContext, prefix string, v V) string
	empty  string
}

func renderSections[V any](ctx blocks.RenderContext, prefix string, view V, vis models.SectionVisibilityState, rows []sectionRow[V]) string {
	var sb strings.Builder
	for _, row := range rows {
		if !vis.Visible(row.flag) {
			continue
		}

		var body string
		if row.has == nil || row.has(view) {
			body = row.render(ctx, prefix, view)
		} else {
			body = blocks.EmptyState(prefix, row.empty)
		}
		if body == "" && row.has != nil {
			body = blocks.EmptyState(prefix, row.empty)
		}
		if body == "" {
			continue
		}

		sb.WriteString(`<section class="` + prefix + `__section ` + prefix + `__section--` + row.id + `" data-section="` + row.id + `" data-reveal>`)
		sb.WriteString(blocks.SectionTitle(ctx, prefix, blocks.SectionTitleProps{Title: row.title}))
		sb.WriteString(body)
		sb.WriteString(`</section>`)
	}
	return sb.String()
}

// guard handles the loading and missing-data states every template shares.
func guard(in Input) (string, bool) {
	if in.Loading {
		return loadingMarkup, true
	}
	if in.Data == nil {
		return noDataMarkup, true
	}
	return "", false
}

// frame binds the theme as CSS custom properties on the template root.
func frame(prefix string, t models.TemplateTheme, body string) string {
	style := theme.StyleAttribute(t,
		theme.CSSVariable{Name: "background", Value: "var(--kit-background)"},
		theme.CSSVariable{Name: "color", Value: "var(--kit-foreground)"},
		theme.CSSVariable{Name: "font-family", Value: "var(--kit-font)"},
	)
	return `<div class="kit ` + prefix + `" data-template="` + strings.TrimPrefix(prefix, "kit-") + `" style="` + style + `">` + body + `</div>`
}

// resolveFont applies the data font (top-level, then legacy) over the theme font.
func resolveFont(t models.TemplateTheme, data *models.EditorPreviewData, legacy models.MediaKitData) models.TemplateTheme {
	return theme.WithFont(t, models.ResolveString(data.Font, legacy.Font, ""))
}

func hasText(values ...string) bool {
	return models.FirstNonBlank(values...) != ""
}

func mergedVisibility(in Input) models.SectionVisibilityState {
	if in.Visibility != nil {
		return in.Visibility
	}
	if in.Data != nil {
		return in.Data.SectionVisibility
	}
	return nil
}

func ensureContext(ctx blocks.RenderContext) blocks.RenderContext {
	if ctx == nil {
		return blocks.NewContext()
	}
	return ctx
}

// totalFollowers sums follower counts across platform snapshots.
func totalFollowers(stats []models.MediaKitStats) models.Metric {
	var total int64
	for _, s := range stats {
		total += s.FollowerCount
	}
	if total == 0 {
		return ""
	}
	return models.MetricOf(total)
}

// averageEngagement is the mean engagement rate of snapshots that report one.
func averageEngagement(stats []models.MediaKitStats) models.Metric {
	var sum float64
	var count int
	for _, s := range stats {
		if s.EngagementRate > 0 {
			sum += s.EngagementRate
			count++
		}
	}
	if count == 0 {
		return ""
	}
	return models.MetricOf(sum / float64(count))
}

func platformLabel(platform string) string {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "instagram":
		return "Instagram"
	case "tiktok":
		return "TikTok"
	case "youtube":
		return "YouTube"
	case "":
		return "Platform"
	default:
		return utils.Capitalize(strings.TrimSpace(platform))
	}
}
