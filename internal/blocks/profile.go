package blocks

import (
	"strings"

	"glowfolio-backend/internal/models"
	"glowfolio-backend/pkg/utils"
)

// HeaderVariant selects the header layout.
type HeaderVariant string

const (
	HeaderDefault  HeaderVariant = "default"
	HeaderCentered HeaderVariant = "centered"
	HeaderHero     HeaderVariant = "hero"
)

func (v HeaderVariant) layoutClass() string {
	switch v {
	case HeaderCentered:
		return "centered"
	case HeaderHero:
		return "hero"
	default:
		return "grid"
	}
}

type ProfileHeaderProps struct {
	AvatarURL   string
	Name        string
	Subheading  string
	Bio         string
	Location    string
	SocialLinks []models.SocialLink
	Visibility  models.SectionVisibilityState
	Variant     HeaderVariant
}

// ProfileHeader renders avatar, identity and social links. It renders nothing
// when the picture, details and social flags are all off.
func ProfileHeader(ctx RenderContext, prefix string, props ProfileHeaderProps) string {
	vis := props.Visibility
	showAvatar := vis.Visible(models.FlagProfilePicture)
	showDetails := vis.Visible(models.FlagProfileDetails)
	showSocial := vis.Visible(models.FlagSocialMedia)

	if !showAvatar && !showDetails && !showSocial {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<header class="` + modifier(prefix, "header", props.Variant.layoutClass()) + `">`)

	if showAvatar {
		if avatar := safeURL(props.AvatarURL); avatar != "" {
			sb.WriteString(`<img class="` + class(prefix, "avatar") + `" src="` + esc(avatar) + `" alt="` + esc(props.Name) + `" loading="lazy" />`)
		} else {
			sb.WriteString(`<div class="` + modifier(prefix, "avatar", "empty") + `">No Photo</div>`)
		}
	}

	if showDetails {
		sb.WriteString(`<div class="` + class(prefix, "identity") + `">`)
		if name := strings.TrimSpace(props.Name); name != "" {
			sb.WriteString(`<h1 class="` + class(prefix, "name") + `">` + esc(name) + `</h1>`)
		}
		if sub := strings.TrimSpace(props.Subheading); sub != "" {
			sb.WriteString(`<p class="` + class(prefix, "subheading") + `">` + esc(sub) + `</p>`)
		}
		if location := strings.TrimSpace(props.Location); location != "" {
			sb.WriteString(`<p class="` + class(prefix, "location") + `">` + esc(location) + `</p>`)
		}
		if bio := strings.TrimSpace(props.Bio); bio != "" {
			sb.WriteString(`<div class="` + class(prefix, "bio") + `">` + sanitize(ctx, bio) + `</div>`)
		}
		sb.WriteString(`</div>`)
	}

	if showSocial {
		sb.WriteString(SocialLinks(ctx, prefix, SocialLinksProps{Links: props.SocialLinks}))
	}

	sb.WriteString(`</header>`)
	return sb.String()
}

type SocialLinksProps struct {
	Links []models.SocialLink
}

// SocialLinks renders outbound profile links. Links without a usable URL are skipped.
func SocialLinks(ctx RenderContext, prefix string, props SocialLinksProps) string {
	var items []string
	for _, link := range props.Links {
		href := linkHref(link)
		if href == "" {
			continue
		}
		kind := strings.ToLower(strings.TrimSpace(link.Type))
		if kind == "" {
			kind = "link"
		}
		label := strings.TrimSpace(link.Label)
		if label == "" {
			label = socialLabel(kind)
		}
		items = append(items, `<li class="`+modifier(prefix, "social-item", esc(kind))+`"><a class="`+class(prefix, "social-link")+`" href="`+esc(href)+`" target="_blank" rel="noopener noreferrer">`+esc(label)+`</a></li>`)
	}

	if len(items) == 0 {
		return ""
	}
	return `<ul class="` + class(prefix, "social") + `">` + strings.Join(items, "") + `</ul>`
}

func linkHref(link models.SocialLink) string {
	raw := strings.TrimSpace(link.URL)
	if raw == "" {
		return ""
	}
	switch strings.ToLower(strings.TrimSpace(link.Type)) {
	case "email":
		if !strings.HasPrefix(strings.ToLower(raw), "mailto:") {
			raw = "mailto:" + raw
		}
	case "phone":
		if !strings.HasPrefix(strings.ToLower(raw), "tel:") {
			raw = "tel:" + raw
		}
	default:
		raw = ensureScheme(raw)
	}
	return safeURL(raw)
}

func ensureScheme(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "https://" + raw
}

func socialLabel(kind string) string {
	switch kind {
	case "instagram":
		return "Instagram"
	case "tiktok":
		return "TikTok"
	case "youtube":
		return "YouTube"
	case "twitter", "x":
		return "X"
	case "linkedin":
		return "LinkedIn"
	case "email":
		return "Email"
	case "website":
		return "Website"
	case "phone":
		return "Phone"
	default:
		return utils.Capitalize(kind)
	}
}
