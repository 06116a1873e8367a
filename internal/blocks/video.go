package blocks

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"glowfolio-backend/internal/models"
)

// VideoShowcaseScript toggles inline embeds in the browser. One embed plays at
// a time: clicking the same thumbnail again closes it and opening another
// closes the previous one.
const VideoShowcaseScript = "/static/js/video-showcase.js"

const tiktokEmbedURL = "https://www.tiktok.com/embed/v2/%s?autoplay=1&loop=1"

var tiktokVideoID = regexp.MustCompile(`video/(\d+)`)

// VideoActionKind says what clicking a video does.
type VideoActionKind string

const (
	VideoActionEmbed    VideoActionKind = "embed"
	VideoActionExternal VideoActionKind = "external"
)

// VideoAction is the resolved click behaviour of a video.
type VideoAction struct {
	Kind VideoActionKind
	// URL is the embed source for VideoActionEmbed, the original link otherwise.
	URL    string
	PostID string
}

// TikTokPostID extracts the numeric post id from a TikTok video URL.
func TikTokPostID(url string) (string, bool) {
	match := tiktokVideoID.FindStringSubmatch(url)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}

// ResolveVideoAction embeds TikTok videos whose post id can be read from the
// URL and opens everything else in a new tab.
func ResolveVideoAction(video models.VideoItem) VideoAction {
	url := strings.TrimSpace(video.URL)
	if strings.EqualFold(strings.TrimSpace(video.ProviderName), "tiktok") {
		if id, ok := TikTokPostID(url); ok {
			return VideoAction{Kind: VideoActionEmbed, URL: fmt.Sprintf(tiktokEmbedURL, id), PostID: id}
		}
	}
	return VideoAction{Kind: VideoActionExternal, URL: url}
}

type VideoShowcaseProps struct {
	Videos    []models.VideoItem
	IsPreview bool
	Limit     int
}

// VideoShowcase renders video thumbnails. Preview mode disables interaction
// and, with no videos, shows instructions instead of nothing.
func VideoShowcase(ctx RenderContext, prefix string, props VideoShowcaseProps) string {
	videos := usableVideos(props.Videos, props.Limit)
	if len(videos) == 0 {
		if props.IsPreview {
			return `<p class="` + modifier(prefix, "videos", "empty") + `">Add TikTok or YouTube links to showcase your videos here</p>`
		}
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + class(prefix, "videos") + `" data-video-showcase>`)
	for i, video := range videos {
		action := ResolveVideoAction(video)
		title := strings.TrimSpace(video.Title)
		if title == "" {
			title = "Video " + strconv.Itoa(i+1)
		}

		sb.WriteString(`<div class="` + class(prefix, "video") + `">`)
		if props.IsPreview {
			sb.WriteString(`<div class="` + modifier(prefix, "video-thumb", "preview") + `">`)
			writeVideoThumbnail(&sb, prefix, video, title)
			sb.WriteString(`<span class="` + class(prefix, "video-badge") + `">Preview</span>`)
			sb.WriteString(`</div>`)
		} else if action.Kind == VideoActionEmbed {
			sb.WriteString(`<button type="button" class="` + class(prefix, "video-thumb") + `" data-video-embed="` + esc(action.URL) + `" aria-pressed="false" aria-label="Play ` + esc(title) + `">`)
			writeVideoThumbnail(&sb, prefix, video, title)
			sb.WriteString(`<span class="` + class(prefix, "video-play") + `" aria-hidden="true">▶</span>`)
			sb.WriteString(`</button>`)
		} else {
			href := safeURL(action.URL)
			sb.WriteString(`<a class="` + class(prefix, "video-thumb") + `" href="` + esc(href) + `" target="_blank" rel="noopener noreferrer">`)
			writeVideoThumbnail(&sb, prefix, video, title)
			sb.WriteString(`<span class="` + class(prefix, "video-play") + `" aria-hidden="true">▶</span>`)
			sb.WriteString(`</a>`)
		}
		if provider := strings.TrimSpace(video.ProviderName); provider != "" {
			sb.WriteString(`<span class="` + class(prefix, "video-provider") + `">` + esc(socialLabel(strings.ToLower(provider))) + `</span>`)
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	if !props.IsPreview {
		sb.WriteString(`<script src="` + VideoShowcaseScript + `" defer></script>`)
	}
	return sb.String()
}

// UsableVideos returns the videos VideoShowcase would render.
func UsableVideos(videos []models.VideoItem) []models.VideoItem {
	return usableVideos(videos, 0)
}

func usableVideos(videos []models.VideoItem, limit int) []models.VideoItem {
	result := make([]models.VideoItem, 0, len(videos))
	for _, video := range videos {
		if strings.TrimSpace(video.URL) == "" {
			continue
		}
		result = append(result, video)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

func writeVideoThumbnail(sb *strings.Builder, prefix string, video models.VideoItem, title string) {
	if thumb := safeURL(video.ThumbnailURL); thumb != "" {
		sb.WriteString(`<img class="` + class(prefix, "video-img") + `" src="` + esc(thumb) + `" alt="` + esc(title) + `" loading="lazy" />`)
		return
	}
	sb.WriteString(`<span class="` + modifier(prefix, "video-img", "empty") + `">` + esc(title) + `</span>`)
}
