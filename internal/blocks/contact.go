package blocks

import (
	"strings"

	"glowfolio-backend/internal/models"
	"glowfolio-backend/pkg/utils"
)

type ContactInfoProps struct {
	Email       string
	Phone       string
	Website     string
	SocialLinks []models.SocialLink
	// Accent colours the call-to-action; its text colour is picked for contrast.
	Accent string
}

// ContactCard is one rendered contact entry.
type ContactCard struct {
	Type  string
	Label string
	Value string
	Href  string
}

// ContactCards lists the cards ContactInfo renders: dedicated email, phone and
// website fields first, then social links. A social link of type email or
// website is skipped when the dedicated field is already set.
func ContactCards(props ContactInfoProps) []ContactCard {
	var cards []ContactCard

	email := strings.TrimSpace(props.Email)
	phone := strings.TrimSpace(props.Phone)
	website := strings.TrimSpace(props.Website)

	if email != "" {
		cards = append(cards, ContactCard{Type: "email", Label: "Email", Value: email, Href: "mailto:" + email})
	}
	if phone != "" {
		cards = append(cards, ContactCard{Type: "phone", Label: "Phone", Value: phone, Href: "tel:" + strings.ReplaceAll(phone, " ", "")})
	}
	if website != "" {
		cards = append(cards, ContactCard{Type: "website", Label: "Website", Value: website, Href: WebsiteHref(website)})
	}

	for _, link := range props.SocialLinks {
		kind := strings.ToLower(strings.TrimSpace(link.Type))
		if kind == "email" && email != "" {
			continue
		}
		if kind == "website" && website != "" {
			continue
		}
		href := linkHref(link)
		if href == "" {
			continue
		}
		if kind == "" {
			kind = "link"
		}
		label := strings.TrimSpace(link.Label)
		if label == "" {
			label = socialLabel(kind)
		}
		cards = append(cards, ContactCard{Type: kind, Label: label, Value: strings.TrimSpace(link.URL), Href: href})
	}

	return cards
}

// WebsiteHref prefixes https:// onto addresses entered without a scheme.
func WebsiteHref(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	return safeURL(ensureScheme(website))
}

// ContactInfo renders one card per contact method. No contact data renders nothing.
func ContactInfo(ctx RenderContext, prefix string, props ContactInfoProps) string {
	cards := ContactCards(props)
	if len(cards) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + class(prefix, "contact") + `">`)
	for _, card := range cards {
		sb.WriteString(`<a class="` + modifier(prefix, "contact-card", esc(card.Type)) + `" href="` + esc(card.Href) + `"`)
		if card.Type != "email" && card.Type != "phone" {
			sb.WriteString(` target="_blank" rel="noopener noreferrer"`)
		}
		sb.WriteString(`>`)
		sb.WriteString(`<span class="` + class(prefix, "contact-label") + `">` + esc(card.Label) + `</span>`)
		sb.WriteString(`<span class="` + class(prefix, "contact-value") + `">` + esc(card.Value) + `</span>`)
		sb.WriteString(`</a>`)
	}

	if email := strings.TrimSpace(props.Email); email != "" {
		accent := strings.TrimSpace(props.Accent)
		style := ""
		if _, _, _, ok := utils.ParseHexColor(accent); ok {
			style = ` style="background-color:` + esc(accent) + `;color:` + utils.ContrastColor(accent) + `"`
		}
		sb.WriteString(`<a class="` + class(prefix, "contact-cta") + `" href="mailto:` + esc(email) + `"` + style + `>Contact</a>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}
