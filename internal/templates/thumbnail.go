package templates

import (
	"strconv"

	"glowfolio-backend/internal/blocks"
	"glowfolio-backend/internal/models"
)

const (
	// ThumbnailWidth is the width the full-size template is laid out at before scaling.
	ThumbnailWidth = 1280
	// ThumbnailHeight is the visible height of the unscaled frame.
	ThumbnailHeight = 1600
	// ThumbnailScale shrinks the frame into the library card.
	ThumbnailScale = 0.25
)

// ThumbnailOptions overrides the frame geometry. Zero values use the defaults.
type ThumbnailOptions struct {
	Scale float64
}

// Thumbnail renders the template registered under id at full size and wraps it
// in a scale transform. Unknown ids render the default template.
func Thumbnail(ctx blocks.RenderContext, reg *Registry, id string, data *models.EditorPreviewData, t models.TemplateTheme, vis models.SectionVisibilityState) string {
	return ThumbnailWithOptions(ctx, reg, id, data, t, vis, ThumbnailOptions{})
}

// ThumbnailWithOptions is Thumbnail with an explicit scale.
func ThumbnailWithOptions(ctx blocks.RenderContext, reg *Registry, id string, data *models.EditorPreviewData, t models.TemplateTheme, vis models.SectionVisibilityState, opts ThumbnailOptions) string {
	if reg == nil {
		reg = DefaultRegistry()
	}
	entry, _ := reg.Resolve(id)
	if entry.Render == nil {
		return noDataMarkup
	}

	scale := opts.Scale
	if scale <= 0 || scale > 1 {
		scale = ThumbnailScale
	}

	body := entry.Render(ctx, Input{Data: data, Theme: t, Visibility: vis, Preview: true})

	outerWidth := strconv.Itoa(int(ThumbnailWidth * scale))
	outerHeight := strconv.Itoa(int(ThumbnailHeight * scale))
	scaleText := strconv.FormatFloat(scale, 'f', -1, 64)

	return `<div class="kit-thumbnail" data-template="` + entry.ID + `" style="width:` + outerWidth + `px;height:` + outerHeight + `px;overflow:hidden;position:relative">` +
		`<div class="kit-thumbnail__frame" aria-hidden="true" style="width:` + strconv.Itoa(ThumbnailWidth) + `px;height:` + strconv.Itoa(ThumbnailHeight) + `px;transform:scale(` + scaleText + `);transform-origin:top left;pointer-events:none">` +
		body +
		`</div></div>`
}
