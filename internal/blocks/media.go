package blocks

import (
	"strconv"
	"strings"
)

type PortfolioGridProps struct {
	Images []string
	Alt    string
	// Limit caps the number of images; zero shows all of them.
	Limit int
}

// PortfolioGrid renders portfolio images in a grid. No images renders nothing.
func PortfolioGrid(ctx RenderContext, prefix string, props PortfolioGridProps) string {
	images := usableImages(props.Images, props.Limit)
	if len(images) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + class(prefix, "portfolio") + `">`)
	for i, src := range images {
		sb.WriteString(`<figure class="` + class(prefix, "portfolio-item") + `">`)
		sb.WriteString(`<img class="` + class(prefix, "portfolio-img") + `" src="` + esc(src) + `" alt="` + esc(imageAlt(props.Alt, "Portfolio image", i)) + `" loading="lazy" />`)
		sb.WriteString(`</figure>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

type ShowcaseImagesProps struct {
	Images []string
	Title  string
	Limit  int
}

// ShowcaseImages renders a featured image strip, or a fallback line when there is nothing to show.
func ShowcaseImages(ctx RenderContext, prefix string, props ShowcaseImagesProps) string {
	images := usableImages(props.Images, props.Limit)
	if len(images) == 0 {
		return `<p class="` + modifier(prefix, "showcase", "empty") + `">No showcase images available</p>`
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + class(prefix, "showcase") + `">`)
	for i, src := range images {
		sb.WriteString(`<img class="` + class(prefix, "showcase-img") + `" src="` + esc(src) + `" alt="` + esc(imageAlt(props.Title, "Showcase image", i)) + `" loading="lazy" />`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// UsableImages returns the sanitised image URLs the image blocks would render.
func UsableImages(images []string) []string {
	return usableImages(images, 0)
}

func usableImages(images []string, limit int) []string {
	result := make([]string, 0, len(images))
	for _, raw := range images {
		if src := safeURL(raw); src != "" {
			result = append(result, src)
		}
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

func imageAlt(base, fallback string, index int) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = fallback
	}
	return base + " " + strconv.Itoa(index+1)
}
